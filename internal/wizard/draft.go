package wizard

import "unicode/utf8"

const minDescriptionLength = 10

// ProductDetails is the content of the first step
type ProductDetails struct {
	Category Category `json:"category"`
}

// CampaignObjectives is the content of the second step
type CampaignObjectives struct {
	Objective      Objective `json:"objective"`
	TargetAudience string    `json:"target_audience"`
	Budget         string    `json:"budget"`
}

// Image is an uploaded product image awaiting submission
type Image struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	Description string `json:"description"`
}

func (i Image) described() bool {
	return utf8.RuneCountInString(i.Description) >= minDescriptionLength
}

// Draft accumulates validated step data. A step's section is nil until
// that step has been submitted successfully.
type Draft struct {
	ProductDetails     *ProductDetails     `json:"product_details,omitempty"`
	CampaignObjectives *CampaignObjectives `json:"campaign_objectives,omitempty"`
	Images             []Image             `json:"images"`
	ClientID           string              `json:"client_id,omitempty"`
}

func (d Draft) imageIndex(id string) int {
	for i, img := range d.Images {
		if img.ID == id {
			return i
		}
	}
	return -1
}
