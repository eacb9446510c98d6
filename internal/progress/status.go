package progress

// StatusKey is the normalized lifecycle stage of a campaign task
type StatusKey string

const (
	StatusRequested   StatusKey = "requested"
	StatusInReview    StatusKey = "in_review"
	StatusApproved    StatusKey = "approved"
	StatusInProgress  StatusKey = "in_progress"
	StatusCompleted   StatusKey = "completed"
	StatusUnspecified StatusKey = "unspecified"
)

// Tone is the color family a status badge is drawn with
type Tone string

const (
	ToneYellow Tone = "yellow"
	ToneBlue   Tone = "blue"
	ToneGreen  Tone = "green"
	TonePurple Tone = "purple"
	ToneGray   Tone = "gray"
)

// Icon names the glyph shown next to a status
type Icon string

const (
	IconClock       Icon = "clock"
	IconTimer       Icon = "timer"
	IconCheckCircle Icon = "check-circle"
)

// knownStatuses matches tracker status text exactly, case included.
var knownStatuses = map[string]StatusKey{
	"SOLICITAÇÃO":  StatusRequested,
	"EM ANÁLISE":   StatusInReview,
	"APROVADO":     StatusApproved,
	"EM ANDAMENTO": StatusInProgress,
	"CONCLUÍDO":    StatusCompleted,
	"request":      StatusRequested,
	"in review":    StatusInReview,
	"approved":     StatusApproved,
	"in progress":  StatusInProgress,
	"complete":     StatusCompleted,
	"done":         StatusCompleted,
}

// ClassifyStatus maps raw tracker status text to a StatusKey.
func ClassifyStatus(raw string) StatusKey {
	if key, ok := knownStatuses[raw]; ok {
		return key
	}
	return StatusUnspecified
}

// Tone returns the badge color of the status
func (k StatusKey) Tone() Tone {
	switch k {
	case StatusRequested:
		return ToneYellow
	case StatusInReview:
		return ToneBlue
	case StatusApproved:
		return ToneGreen
	case StatusInProgress:
		return TonePurple
	case StatusCompleted:
		return ToneGray
	default:
		return ToneYellow
	}
}

// Icon returns the glyph of the status
func (k StatusKey) Icon() Icon {
	switch k {
	case StatusInReview, StatusInProgress:
		return IconTimer
	case StatusApproved, StatusCompleted:
		return IconCheckCircle
	default:
		return IconClock
	}
}

// Status is the presentation of one campaign status
type Status struct {
	Key   StatusKey `json:"key"`
	Label string    `json:"label"`
	Tone  Tone      `json:"tone"`
	Icon  Icon      `json:"icon"`
}
