// Package grid is the feature table: column definitions, filter predicates,
// sort comparators and the per-request table state that drives them.
//
// Everything here is pure and synchronous. The full record set is loaded once
// per page view; filtering, sorting and pagination are recomputed from it on
// every request.
package grid

import "strconv"

// Option is one entry of a dropdown or faceted filter.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Options are the lookup lists shared by the toolbar facets and the row action forms.
type Options struct {
	Status        []Option `json:"status_options"`
	Priority      []Option `json:"priority_options"`
	Team          []Option `json:"team_options"`
	FeatureType   []Option `json:"feature_type_options"`
	BusinessValue []Option `json:"business_value_options"`
}

// LabelOf returns the label of value in list, or "" when it is not listed.
func LabelOf(list []Option, value string) string {
	for _, o := range list {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}

// ValueLabel is the display label of a business value.
func ValueLabel(v int) string {
	return strconv.Itoa(v)
}
