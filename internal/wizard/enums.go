package wizard

// UnspecifiedLabel is shown for values outside the known sets
const UnspecifiedLabel = "Unspecified"

// Category is the product category of a campaign
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryHome        Category = "home"
	CategoryBeauty      Category = "beauty"
)

// Categories lists every category in display order
var Categories = []Category{CategoryElectronics, CategoryFashion, CategoryHome, CategoryBeauty}

// Label returns the display name of the category
func (c Category) Label() string {
	switch c {
	case CategoryElectronics:
		return "Electronics"
	case CategoryFashion:
		return "Fashion"
	case CategoryHome:
		return "Home & Living"
	case CategoryBeauty:
		return "Beauty & Personal Care"
	default:
		return UnspecifiedLabel
	}
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	return c.Label() != UnspecifiedLabel
}

// Objective is the marketing goal of a campaign
type Objective string

const (
	ObjectiveAwareness  Objective = "awareness"
	ObjectiveTraffic    Objective = "traffic"
	ObjectiveEngagement Objective = "engagement"
	ObjectiveLeads      Objective = "leads"
	ObjectiveSales      Objective = "sales"
)

// Objectives lists every objective in display order
var Objectives = []Objective{ObjectiveAwareness, ObjectiveTraffic, ObjectiveEngagement, ObjectiveLeads, ObjectiveSales}

// Label returns the display name of the objective
func (o Objective) Label() string {
	switch o {
	case ObjectiveAwareness:
		return "Brand Awareness"
	case ObjectiveTraffic:
		return "Website Traffic"
	case ObjectiveEngagement:
		return "Post Engagement"
	case ObjectiveLeads:
		return "Lead Generation"
	case ObjectiveSales:
		return "Sales"
	default:
		return UnspecifiedLabel
	}
}

// Valid reports whether o is a known objective
func (o Objective) Valid() bool {
	return o.Label() != UnspecifiedLabel
}

// CategoryLabel renders any stored value, known or not
func CategoryLabel(value string) string {
	return Category(value).Label()
}

// ObjectiveLabel renders any stored value, known or not
func ObjectiveLabel(value string) string {
	return Objective(value).Label()
}

// Option is a selectable value with its label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryOptions returns the category choices of the first step
func CategoryOptions() []Option {
	options := make([]Option, 0, len(Categories))
	for _, c := range Categories {
		options = append(options, Option{Value: string(c), Label: c.Label()})
	}
	return options
}

// ObjectiveOptions returns the objective choices of the second step
func ObjectiveOptions() []Option {
	options := make([]Option, 0, len(Objectives))
	for _, o := range Objectives {
		options = append(options, Option{Value: string(o), Label: o.Label()})
	}
	return options
}
