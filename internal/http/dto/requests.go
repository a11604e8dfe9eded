package dto

type CreateCampaignRequest struct {
	Name        string  `json:"name"`
	Industry    string  `json:"industry"`
	Audience    string  `json:"audience"`
	Tone        string  `json:"tone"`
	Description *string `json:"description,omitempty"`
}

// HeadlineContext mirrors the campaign fields the copywriter prompt needs.
// Required on headline generation; the client sends the campaign it has.
type HeadlineContext struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Audience    string `json:"audience"`
	Tone        string `json:"tone"`
	Description string `json:"description,omitempty"`
}

type GenerateHeadlinesRequest struct {
	CampaignID string          `json:"campaignId"`
	Count      int             `json:"count"`
	Context    HeadlineContext `json:"context"`
}

// ImageContext is fully optional; omitted fields fall back to the stored
// campaign.
type ImageContext struct {
	Name        string `json:"name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Audience    string `json:"audience,omitempty"`
	Tone        string `json:"tone,omitempty"`
	Description string `json:"description,omitempty"`
}

type GenerateImagesRequest struct {
	CampaignID string        `json:"campaignId"`
	Count      int           `json:"count"`
	Context    *ImageContext `json:"context,omitempty"`
}

type CreatePairRequest struct {
	CampaignID string `json:"campaignId"`
	HeadlineID string `json:"headlineId"`
	ImageID    string `json:"imageId"`
}
