package req

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// EditFeatureRequest is the edit form. An empty reference means no selection.
type EditFeatureRequest struct {
	ID               string `json:"id" form:"id" validate:"required,uuid"`
	Name             string `json:"name" form:"name" validate:"required"`
	Description      string `json:"description" form:"description"`
	StatusID         string `json:"status_id" form:"status_id" validate:"omitempty,uuid"`
	TeamID           string `json:"team_id" form:"team_id" validate:"omitempty,uuid"`
	MoscowPriorityID string `json:"moscow_priority_id" form:"moscow_priority_id" validate:"omitempty,uuid"`
	FeatureTypeID    string `json:"feature_type_id" form:"feature_type_id" validate:"omitempty,uuid"`
	BusinessValueID  string `json:"business_value_id" form:"business_value_id" validate:"omitempty,uuid"`
}

func (r *EditFeatureRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return check(r)
}

// CreateFeatureRequest is the add form.
type CreateFeatureRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
}

func (r *CreateFeatureRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return check(r)
}

// Ref returns nil for an empty value.
func Ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FieldErrors maps form field names to the message shown next to the field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var fieldNames = map[string]string{
	"ID":               "id",
	"Name":             "name",
	"Description":      "description",
	"StatusID":         "status_id",
	"TeamID":           "team_id",
	"MoscowPriorityID": "moscow_priority_id",
	"FeatureTypeID":    "feature_type_id",
	"BusinessValueID":  "business_value_id",
}

func message(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Name" && fe.Tag() == "required":
		return "Feature Name Required"
	case fe.Tag() == "required":
		return "Required"
	case fe.Tag() == "uuid":
		return "Invalid selection"
	}
	return "Invalid value"
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := make(FieldErrors, len(ves))
	for _, fe := range ves {
		name, ok := fieldNames[fe.StructField()]
		if !ok {
			name = fe.Field()
		}
		out[name] = message(fe)
	}
	return out
}
