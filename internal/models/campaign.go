package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign tones accepted from the creation form.
const (
	ToneProfessional = "professional"
	ToneCasual       = "casual"
	ToneExciting     = "exciting"
	ToneTrustworthy  = "trustworthy"
)

var Tones = []string{ToneProfessional, ToneCasual, ToneExciting, ToneTrustworthy}

func ValidTone(tone string) bool {
	for _, t := range Tones {
		if t == tone {
			return true
		}
	}
	return false
}

type Campaign struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Audience    string    `json:"audience"`
	Tone        string    `json:"tone"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CampaignWithContent is the campaign listing shape: the campaign plus all of
// its generated content and pairings, creatives expanded with their headline
// and image.
type CampaignWithContent struct {
	Campaign
	Headlines []Headline `json:"headlines"`
	Images    []Image    `json:"images"`
	Creatives []Creative `json:"creatives"`
}
