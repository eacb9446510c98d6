package wizard

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	msgCategory       = "Please select a product category"
	msgObjective      = "Please select a campaign objective"
	msgTargetAudience = "Target audience description must be at least 10 characters"
	msgBudget         = "Budget must be a number"
	msgDescription    = "Description must be at least 10 characters"
)

var digitsPattern = regexp.MustCompile(`^\d+$`)

// fieldMessages maps a json field name to its user-facing message
var fieldMessages = map[string]string{
	"category":        msgCategory,
	"objective":       msgObjective,
	"target_audience": msgTargetAudience,
	"budget":          msgBudget,
}

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
	Err    error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, e.Fields[k])
	}
	return strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ProductDetailsInput is the raw first-step submission
type ProductDetailsInput struct {
	Category string `json:"category" validate:"required,category"`
}

// CampaignObjectivesInput is the raw second-step submission
type CampaignObjectivesInput struct {
	Objective      string `json:"objective" validate:"required,objective"`
	TargetAudience string `json:"target_audience" validate:"min=10"`
	Budget         string `json:"budget" validate:"digits"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("objective", func(fl validator.FieldLevel) bool {
		return Objective(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	return v
}

var validate = newValidator()

// validateInput runs struct validation and converts failures to a ValidationError.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			fields[fe.Field()] = msg
			continue
		}
		fields[fe.Field()] = fe.Error()
	}
	return &ValidationError{Fields: fields}
}

func imageDescriptionField(id string) string {
	return "descriptions." + id
}
