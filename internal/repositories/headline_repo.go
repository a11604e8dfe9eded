package repositories

import (
	"context"

	"github.com/creative-studio/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HeadlineRepo struct {
	pool *pgxpool.Pool
}

func NewHeadlineRepo(pool *pgxpool.Pool) *HeadlineRepo {
	return &HeadlineRepo{pool: pool}
}

// CreateBatch inserts every headline of one generation request inside a
// single transaction; a request either commits all of its headlines or none.
func (r *HeadlineRepo) CreateBatch(ctx context.Context, campaignID uuid.UUID, texts []string) ([]models.Headline, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	headlines := make([]models.Headline, 0, len(texts))
	for _, text := range texts {
		h := models.Headline{Text: text, CampaignID: campaignID}
		err := tx.QueryRow(ctx, `
			INSERT INTO headlines (text, campaign_id)
			VALUES ($1, $2)
			RETURNING id, status, created_at
		`, text, campaignID).Scan(&h.ID, &h.Status, &h.CreatedAt)
		if err != nil {
			return nil, err
		}
		headlines = append(headlines, h)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return headlines, nil
}

func (r *HeadlineRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Headline, error) {
	var h models.Headline
	err := r.pool.QueryRow(ctx, `
		SELECT id, text, campaign_id, status, created_at
		FROM headlines WHERE id = $1
	`, id).Scan(&h.ID, &h.Text, &h.CampaignID, &h.Status, &h.CreatedAt)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &h, nil
}

func (r *HeadlineRepo) ListActive(ctx context.Context, campaignID uuid.UUID) ([]models.Headline, error) {
	return r.list(ctx, `
		SELECT id, text, campaign_id, status, created_at
		FROM headlines WHERE campaign_id = $1 AND status = $2
		ORDER BY created_at DESC
	`, campaignID, models.StatusActive)
}

// ListByCampaigns loads headlines for a set of campaigns in one query, for
// the nested campaign listing.
func (r *HeadlineRepo) ListByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) ([]models.Headline, error) {
	return r.list(ctx, `
		SELECT id, text, campaign_id, status, created_at
		FROM headlines WHERE campaign_id = ANY($1)
		ORDER BY created_at DESC
	`, campaignIDs)
}

func (r *HeadlineRepo) list(ctx context.Context, query string, args ...any) ([]models.Headline, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var headlines []models.Headline
	for rows.Next() {
		var h models.Headline
		if err := rows.Scan(&h.ID, &h.Text, &h.CampaignID, &h.Status, &h.CreatedAt); err != nil {
			return nil, err
		}
		headlines = append(headlines, h)
	}
	return headlines, rows.Err()
}
