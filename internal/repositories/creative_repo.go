package repositories

import (
	"context"
	"errors"

	"github.com/creative-studio/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreativeRepo struct {
	pool *pgxpool.Pool
}

func NewCreativeRepo(pool *pgxpool.Pool) *CreativeRepo {
	return &CreativeRepo{pool: pool}
}

// Create inserts a pairing. A unique-constraint violation on the
// (headline, image, campaign) triple comes back as ErrDuplicate, so a
// concurrent insert racing past the service's existence check still surfaces
// as a conflict.
func (r *CreativeRepo) Create(ctx context.Context, c *models.Creative) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO creatives (campaign_id, headline_id, image_id)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at
	`, c.CampaignID, c.HeadlineID, c.ImageID).Scan(&c.ID, &c.Status, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *CreativeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Creative, error) {
	var c models.Creative
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, headline_id, image_id, status, created_at
		FROM creatives WHERE id = $1
	`, id).Scan(&c.ID, &c.CampaignID, &c.HeadlineID, &c.ImageID, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &c, nil
}

// FindByTriple looks up an existing pairing for the exact triple. Returns
// ErrNotFound when no pairing exists.
func (r *CreativeRepo) FindByTriple(ctx context.Context, campaignID, headlineID, imageID uuid.UUID) (*models.Creative, error) {
	var c models.Creative
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, headline_id, image_id, status, created_at
		FROM creatives
		WHERE headline_id = $1 AND image_id = $2 AND campaign_id = $3
	`, headlineID, imageID, campaignID).Scan(&c.ID, &c.CampaignID, &c.HeadlineID, &c.ImageID, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &c, nil
}

func (r *CreativeRepo) ListActiveWithContent(ctx context.Context, campaignID uuid.UUID) ([]models.Creative, error) {
	return r.listWithContent(ctx, `
		WHERE c.campaign_id = $1 AND c.status = $2
	`, campaignID, models.StatusActive)
}

func (r *CreativeRepo) ListByCampaignsWithContent(ctx context.Context, campaignIDs []uuid.UUID) ([]models.Creative, error) {
	return r.listWithContent(ctx, `
		WHERE c.campaign_id = ANY($1)
	`, campaignIDs)
}

func (r *CreativeRepo) listWithContent(ctx context.Context, where string, args ...any) ([]models.Creative, error) {
	query := `
		SELECT c.id, c.campaign_id, c.headline_id, c.image_id, c.status, c.created_at,
		       h.id, h.text, h.campaign_id, h.status, h.created_at,
		       i.id, i.image_url, i.prompt, i.campaign_id, i.status, i.created_at
		FROM creatives c
		JOIN headlines h ON h.id = c.headline_id
		JOIN images i ON i.id = c.image_id
	` + where + `
		ORDER BY c.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creatives []models.Creative
	for rows.Next() {
		var c models.Creative
		var h models.Headline
		var img models.Image
		err := rows.Scan(
			&c.ID, &c.CampaignID, &c.HeadlineID, &c.ImageID, &c.Status, &c.CreatedAt,
			&h.ID, &h.Text, &h.CampaignID, &h.Status, &h.CreatedAt,
			&img.ID, &img.ImageURL, &img.Prompt, &img.CampaignID, &img.Status, &img.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		c.Headline = &h
		c.Image = &img
		creatives = append(creatives, c)
	}
	return creatives, rows.Err()
}

// Delete removes the pairing only; the referenced headline and image are
// never touched.
func (r *CreativeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM creatives WHERE id = $1`, id)
	return err
}
