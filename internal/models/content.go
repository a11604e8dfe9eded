package models

import (
	"time"

	"github.com/google/uuid"
)

// Content records carry a status so they can be retired without deletion.
// Today nothing transitions out of "active"; the list endpoints already
// filter on it so a soft-delete only needs a write path.
const StatusActive = "active"

func ValidStatus(status string) bool {
	return status == StatusActive
}

type Headline struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	CampaignID uuid.UUID `json:"campaignId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Image struct {
	ID         uuid.UUID `json:"id"`
	ImageURL   string    `json:"imageUrl"`
	Prompt     string    `json:"prompt"`
	CampaignID uuid.UUID `json:"campaignId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Creative pairs one headline with one image inside a campaign. The triple
// (headline, image, campaign) is unique; deleting a creative never touches
// the headline or image it references.
type Creative struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaignId"`
	HeadlineID uuid.UUID `json:"headlineId"`
	ImageID    uuid.UUID `json:"imageId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`

	Headline *Headline `json:"headline,omitempty"`
	Image    *Image    `json:"image,omitempty"`
}
