package repositories

import (
	"context"

	"github.com/creative-studio/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ImageRepo struct {
	pool *pgxpool.Pool
}

func NewImageRepo(pool *pgxpool.Pool) *ImageRepo {
	return &ImageRepo{pool: pool}
}

// CreateBatch inserts every image of one generation request inside a single
// transaction. All images from one request share the same prompt.
func (r *ImageRepo) CreateBatch(ctx context.Context, campaignID uuid.UUID, imageURLs []string, prompt string) ([]models.Image, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	images := make([]models.Image, 0, len(imageURLs))
	for _, url := range imageURLs {
		img := models.Image{ImageURL: url, Prompt: prompt, CampaignID: campaignID}
		err := tx.QueryRow(ctx, `
			INSERT INTO images (image_url, prompt, campaign_id)
			VALUES ($1, $2, $3)
			RETURNING id, status, created_at
		`, url, prompt, campaignID).Scan(&img.ID, &img.Status, &img.CreatedAt)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	var img models.Image
	err := r.pool.QueryRow(ctx, `
		SELECT id, image_url, prompt, campaign_id, status, created_at
		FROM images WHERE id = $1
	`, id).Scan(&img.ID, &img.ImageURL, &img.Prompt, &img.CampaignID, &img.Status, &img.CreatedAt)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &img, nil
}

func (r *ImageRepo) ListActive(ctx context.Context, campaignID uuid.UUID) ([]models.Image, error) {
	return r.list(ctx, `
		SELECT id, image_url, prompt, campaign_id, status, created_at
		FROM images WHERE campaign_id = $1 AND status = $2
		ORDER BY created_at DESC
	`, campaignID, models.StatusActive)
}

func (r *ImageRepo) ListByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) ([]models.Image, error) {
	return r.list(ctx, `
		SELECT id, image_url, prompt, campaign_id, status, created_at
		FROM images WHERE campaign_id = ANY($1)
		ORDER BY created_at DESC
	`, campaignIDs)
}

func (r *ImageRepo) list(ctx context.Context, query string, args ...any) ([]models.Image, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.ImageURL, &img.Prompt, &img.CampaignID, &img.Status, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
