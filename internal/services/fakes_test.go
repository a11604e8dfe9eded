package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/creative-studio/backend/internal/models"
	"github.com/creative-studio/backend/internal/repositories"
	"github.com/google/uuid"
)

var errNoImage = errors.New("no image URL in response")

// In-memory stores standing in for the pgx repositories. They return the
// repository sentinels so services exercise the same error paths as in
// production.

type fakeCampaignStore struct {
	campaigns map[uuid.UUID]models.Campaign
	order     []uuid.UUID
	createErr error
	getErr    error
	listErr   error
}

func newFakeCampaignStore() *fakeCampaignStore {
	return &fakeCampaignStore{campaigns: make(map[uuid.UUID]models.Campaign)}
}

func (f *fakeCampaignStore) Create(_ context.Context, c *models.Campaign) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = uuid.New()
	f.campaigns[c.ID] = *c
	f.order = append(f.order, c.ID)
	return nil
}

func (f *fakeCampaignStore) GetByID(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c, ok := f.campaigns[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCampaignStore) List(_ context.Context) ([]models.Campaign, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Campaign, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, f.campaigns[f.order[i]])
	}
	return out, nil
}

type fakeHeadlineStore struct {
	headlines []models.Headline
	batchErr  error
	listErr   error
}

func (f *fakeHeadlineStore) CreateBatch(_ context.Context, campaignID uuid.UUID, texts []string) ([]models.Headline, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	created := make([]models.Headline, 0, len(texts))
	for _, text := range texts {
		h := models.Headline{
			ID:         uuid.New(),
			Text:       text,
			CampaignID: campaignID,
			Status:     models.StatusActive,
		}
		f.headlines = append(f.headlines, h)
		created = append(created, h)
	}
	return created, nil
}

func (f *fakeHeadlineStore) GetByID(_ context.Context, id uuid.UUID) (*models.Headline, error) {
	for _, h := range f.headlines {
		if h.ID == id {
			return &h, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeHeadlineStore) ListActive(_ context.Context, campaignID uuid.UUID) ([]models.Headline, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Headline
	for _, h := range f.headlines {
		if h.CampaignID == campaignID && h.Status == models.StatusActive {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHeadlineStore) ListByCampaigns(_ context.Context, campaignIDs []uuid.UUID) ([]models.Headline, error) {
	var out []models.Headline
	for _, h := range f.headlines {
		for _, id := range campaignIDs {
			if h.CampaignID == id {
				out = append(out, h)
				break
			}
		}
	}
	return out, nil
}

type fakeImageStore struct {
	images   []models.Image
	batchErr error
	listErr  error
}

func (f *fakeImageStore) CreateBatch(_ context.Context, campaignID uuid.UUID, imageURLs []string, prompt string) ([]models.Image, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	created := make([]models.Image, 0, len(imageURLs))
	for _, url := range imageURLs {
		img := models.Image{
			ID:         uuid.New(),
			ImageURL:   url,
			Prompt:     prompt,
			CampaignID: campaignID,
			Status:     models.StatusActive,
		}
		f.images = append(f.images, img)
		created = append(created, img)
	}
	return created, nil
}

func (f *fakeImageStore) GetByID(_ context.Context, id uuid.UUID) (*models.Image, error) {
	for _, img := range f.images {
		if img.ID == id {
			return &img, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeImageStore) ListActive(_ context.Context, campaignID uuid.UUID) ([]models.Image, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Image
	for _, img := range f.images {
		if img.CampaignID == campaignID && img.Status == models.StatusActive {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImageStore) ListByCampaigns(_ context.Context, campaignIDs []uuid.UUID) ([]models.Image, error) {
	var out []models.Image
	for _, img := range f.images {
		for _, id := range campaignIDs {
			if img.CampaignID == id {
				out = append(out, img)
				break
			}
		}
	}
	return out, nil
}

type fakeCreativeStore struct {
	creatives []models.Creative
	headlines *fakeHeadlineStore
	images    *fakeImageStore
	createErr error
}

func (f *fakeCreativeStore) Create(_ context.Context, c *models.Creative) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.creatives {
		if existing.HeadlineID == c.HeadlineID && existing.ImageID == c.ImageID && existing.CampaignID == c.CampaignID {
			return repositories.ErrDuplicate
		}
	}
	c.ID = uuid.New()
	c.Status = models.StatusActive
	f.creatives = append(f.creatives, *c)
	return nil
}

func (f *fakeCreativeStore) GetByID(_ context.Context, id uuid.UUID) (*models.Creative, error) {
	for _, c := range f.creatives {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCreativeStore) FindByTriple(_ context.Context, campaignID, headlineID, imageID uuid.UUID) (*models.Creative, error) {
	for _, c := range f.creatives {
		if c.CampaignID == campaignID && c.HeadlineID == headlineID && c.ImageID == imageID {
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCreativeStore) ListActiveWithContent(ctx context.Context, campaignID uuid.UUID) ([]models.Creative, error) {
	var out []models.Creative
	for _, c := range f.creatives {
		if c.CampaignID != campaignID || c.Status != models.StatusActive {
			continue
		}
		out = append(out, f.expand(ctx, c))
	}
	return out, nil
}

func (f *fakeCreativeStore) ListByCampaignsWithContent(ctx context.Context, campaignIDs []uuid.UUID) ([]models.Creative, error) {
	var out []models.Creative
	for _, c := range f.creatives {
		for _, id := range campaignIDs {
			if c.CampaignID == id {
				out = append(out, f.expand(ctx, c))
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCreativeStore) expand(ctx context.Context, c models.Creative) models.Creative {
	if f.headlines != nil {
		c.Headline, _ = f.headlines.GetByID(ctx, c.HeadlineID)
	}
	if f.images != nil {
		c.Image, _ = f.images.GetByID(ctx, c.ImageID)
	}
	return c
}

func (f *fakeCreativeStore) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range f.creatives {
		if c.ID == id {
			f.creatives = append(f.creatives[:i], f.creatives[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeOracle scripts completion text and per-call image outcomes. Image
// calls run concurrently, so the counter is guarded.
type fakeOracle struct {
	completion    string
	completionErr error

	imageErrAt int // 1-based call index that fails; 0 means never

	mu         sync.Mutex
	imageCalls int
}

func (f *fakeOracle) Complete(_ context.Context, _, _ string, _ float64) (string, error) {
	if f.completionErr != nil {
		return "", f.completionErr
	}
	return f.completion, nil
}

func (f *fakeOracle) GenerateImage(_ context.Context, _, _, _ string) (string, error) {
	f.mu.Lock()
	f.imageCalls++
	n := f.imageCalls
	f.mu.Unlock()

	if f.imageErrAt != 0 && n == f.imageErrAt {
		return "", errNoImage
	}
	return fmt.Sprintf("https://img.example.com/generated-%d.png", n), nil
}
