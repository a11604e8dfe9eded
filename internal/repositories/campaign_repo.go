package repositories

import (
	"context"

	"github.com/creative-studio/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (name, industry, audience, tone, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, c.Name, c.Industry, c.Audience, c.Tone, c.Description,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, industry, audience, tone, description, created_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Industry, &c.Audience, &c.Tone, &c.Description, &c.CreatedAt)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &c, nil
}

// List returns every campaign, newest first. The listing surface is
// unbounded; there is no pagination in the API contract.
func (r *CampaignRepo) List(ctx context.Context) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, industry, audience, tone, description, created_at
		FROM campaigns ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.Audience, &c.Tone, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}
