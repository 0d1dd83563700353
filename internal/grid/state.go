package grid

import (
	"maps"
	"slices"
)

const DefaultPageSize = 10

// SortSpec is one sort key. Earlier specs take precedence.
type SortSpec struct {
	Column string `json:"column"`
	Desc   bool   `json:"desc"`
}

// State is the view state of one rendered table: search text, faceted
// filters, sorting, hidden columns, selected rows and the current page.
// It is built fresh for every request and never shared.
type State struct {
	Search    string              `json:"search"`
	Filters   map[string][]string `json:"filters"`
	Sorting   []SortSpec          `json:"sorting"`
	Hidden    map[string]bool     `json:"hidden"`
	Selected  map[string]bool     `json:"selected"`
	PageIndex int                 `json:"page_index"`
	PageSize  int                 `json:"page_size"`
}

func NewState(pageSize int) *State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &State{
		Filters:  make(map[string][]string),
		Hidden:   make(map[string]bool),
		Selected: make(map[string]bool),
		PageSize: pageSize,
	}
}

func (s *State) Clone() *State {
	c := &State{
		Search:    s.Search,
		Filters:   make(map[string][]string, len(s.Filters)),
		Sorting:   slices.Clone(s.Sorting),
		Hidden:    maps.Clone(s.Hidden),
		Selected:  maps.Clone(s.Selected),
		PageIndex: s.PageIndex,
		PageSize:  s.PageSize,
	}
	for k, v := range s.Filters {
		c.Filters[k] = slices.Clone(v)
	}
	if c.Hidden == nil {
		c.Hidden = make(map[string]bool)
	}
	if c.Selected == nil {
		c.Selected = make(map[string]bool)
	}
	return c
}

// SetSearch changes the free-text filter and returns to the first page.
func (s *State) SetSearch(q string) {
	s.Search = q
	s.PageIndex = 0
}

// SetFilter replaces the selected values of a column filter. An empty
// selection removes the filter.
func (s *State) SetFilter(column string, values []string) {
	if len(values) == 0 {
		delete(s.Filters, column)
	} else {
		s.Filters[column] = slices.Clone(values)
	}
	s.PageIndex = 0
}

// ToggleFilterValue adds value to the column filter, or removes it when present.
func (s *State) ToggleFilterValue(column, value string) {
	current := s.Filters[column]
	if i := slices.Index(current, value); i >= 0 {
		s.SetFilter(column, slices.Delete(slices.Clone(current), i, i+1))
		return
	}
	s.SetFilter(column, append(slices.Clone(current), value))
}

func (s *State) FilterValues(column string) []string {
	return s.Filters[column]
}

// IsFiltered reports whether the search box or any faceted filter is active.
func (s *State) IsFiltered() bool {
	return s.Search != "" || len(s.Filters) > 0
}

// ResetFilters clears the search text and every faceted filter. Sorting and
// column visibility are kept.
func (s *State) ResetFilters() {
	s.Search = ""
	s.Filters = make(map[string][]string)
	s.PageIndex = 0
}

// SortDirection returns "asc", "desc" or "" for the column.
func (s *State) SortDirection(column string) string {
	for _, spec := range s.Sorting {
		if spec.Column == column {
			if spec.Desc {
				return "desc"
			}
			return "asc"
		}
	}
	return ""
}

// ToggleSort cycles a column through ascending, descending and unsorted,
// making it the only sort key.
func (s *State) ToggleSort(column string) {
	switch s.SortDirection(column) {
	case "":
		s.Sorting = []SortSpec{{Column: column}}
	case "asc":
		s.Sorting = []SortSpec{{Column: column, Desc: true}}
	default:
		s.Sorting = nil
	}
}

func (s *State) SetSorting(specs ...SortSpec) {
	s.Sorting = slices.Clone(specs)
}

func (s *State) IsHidden(column string) bool {
	return s.Hidden[column]
}

func (s *State) SetHidden(column string, hidden bool) {
	if hidden {
		s.Hidden[column] = true
	} else {
		delete(s.Hidden, column)
	}
}

func (s *State) IsSelected(id string) bool {
	return s.Selected[id]
}

func (s *State) SetSelected(id string, selected bool) {
	if selected {
		s.Selected[id] = true
	} else {
		delete(s.Selected, id)
	}
}

func (s *State) SetPage(index int) {
	if index < 0 {
		index = 0
	}
	s.PageIndex = index
}
