// Package v1 holds the JSON shapes of the /v1 API for Go callers.
package v1

import (
	"fmt"

	"featureboard/internal/grid"
)

// Feature is the read-only projection of one feature. Unset values are "".
type Feature struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Team           string   `json:"team"`
	MoscowPriority string   `json:"moscow_priority"`
	FeatureType    string   `json:"feature_type"`
	BusinessValue  string   `json:"business_value"`
	Dependencies   []string `json:"dependencies"`
}

// The table shapes are the ones the server encodes, so the JSON tags have a
// single definition.
type (
	Option     = grid.Option
	Options    = grid.Options
	Row        = grid.RowView
	Pagination = grid.Pagination
	Toolbar    = grid.Toolbar
)

// Table is one page of the feature table with its toolbar.
type Table struct {
	grid.View
	Toolbar Toolbar `json:"toolbar"`
}

// EditFeature is the body of PUT /v1/features/:id. Empty references clear
// the attribute.
type EditFeature struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	StatusID         string `json:"status_id"`
	TeamID           string `json:"team_id"`
	MoscowPriorityID string `json:"moscow_priority_id"`
	FeatureTypeID    string `json:"feature_type_id"`
	BusinessValueID  string `json:"business_value_id"`
}

type CreateFeature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Created struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Error is a non-2xx answer. Fields is set for validation failures.
type Error struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"error"`
	Fields     map[string]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("featureboard: %d %s %v", e.StatusCode, e.Message, e.Fields)
	}
	return fmt.Sprintf("featureboard: %d %s", e.StatusCode, e.Message)
}
