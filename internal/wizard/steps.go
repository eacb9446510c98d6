package wizard

// Step is a stage of the intake form
type Step string

const (
	StepProductDetails     Step = "product-details"
	StepCampaignObjectives Step = "campaign-objectives"
	StepImageUpload        Step = "image-upload"
	StepReview             Step = "review"
)

var stepOrder = []Step{StepProductDetails, StepCampaignObjectives, StepImageUpload, StepReview}

func (s Step) index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// next returns the following step, or false on the last one
func (s Step) next() (Step, bool) {
	i := s.index()
	if i < 0 || i == len(stepOrder)-1 {
		return s, false
	}
	return stepOrder[i+1], true
}

// previous returns the preceding step, or false on the first one
func (s Step) previous() (Step, bool) {
	i := s.index()
	if i <= 0 {
		return s, false
	}
	return stepOrder[i-1], true
}
