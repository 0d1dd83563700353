package grid

import (
	"net/url"
	"slices"
	"sort"

	"featureboard/internal/model"
)

// Table binds the column model to one loaded record set and one State.
// Filtering, sorting and pagination are recomputed from the full set on
// every call.
type Table struct {
	columns []Column
	index   map[string]int
	rows    []model.Feature
	options Options
	state   *State
}

func New(rows []model.Feature, options Options, state *State) *Table {
	if state == nil {
		state = NewState(DefaultPageSize)
	}
	columns := Columns(NewActionMenu(options))
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c.ID] = i
	}
	return &Table{
		columns: columns,
		index:   index,
		rows:    rows,
		options: options,
		state:   state,
	}
}

func (t *Table) Columns() []Column { return t.columns }
func (t *Table) State() *State     { return t.state }
func (t *Table) Options() Options  { return t.options }

// IsFiltered reports whether the search box or a filter on a filterable
// column is active. Filters naming other columns never narrow the rows.
func (t *Table) IsFiltered() bool {
	if t.state.Search != "" {
		return true
	}
	for column, values := range t.state.Filters {
		if c, ok := t.Column(column); ok && c.Filterable() && len(values) > 0 {
			return true
		}
	}
	return false
}

func (t *Table) Column(id string) (Column, bool) {
	i, ok := t.index[id]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// ToggleSort cycles the sort of a sortable column. It reports false and
// leaves the state untouched for unknown or unsortable columns.
func (t *Table) ToggleSort(column string) bool {
	c, ok := t.Column(column)
	if !ok || !c.Sortable() {
		return false
	}
	t.state.ToggleSort(column)
	return true
}

// ToggleVisibility shows or hides a hideable column.
func (t *Table) ToggleVisibility(column string) bool {
	c, ok := t.Column(column)
	if !ok || !c.Hideable {
		return false
	}
	t.state.SetHidden(column, !t.state.IsHidden(column))
	return true
}

func (t *Table) IsVisible(c Column) bool {
	return !c.Hideable || !t.state.IsHidden(c.ID)
}

func (t *Table) VisibleColumns() []Column {
	out := make([]Column, 0, len(t.columns))
	for _, c := range t.columns {
		if t.IsVisible(c) {
			out = append(out, c)
		}
	}
	return out
}

// FilteredRows applies the search text and every active column filter.
func (t *Table) FilteredRows() []*model.Feature {
	return t.filter("")
}

// filter skips the filter of the except column, which is how facet counts
// are computed.
func (t *Table) filter(except string) []*model.Feature {
	out := make([]*model.Feature, 0, len(t.rows))
rows:
	for i := range t.rows {
		f := &t.rows[i]
		if !MatchText(f.Name, t.state.Search) {
			continue
		}
		for column, selected := range t.state.Filters {
			if column == except {
				continue
			}
			c, ok := t.Column(column)
			if !ok || !c.Filterable() {
				continue
			}
			if !c.Filter(f, selected) {
				continue rows
			}
		}
		out = append(out, f)
	}
	return out
}

// sortSpecs drops specs naming unknown or unsortable columns.
func (t *Table) sortSpecs() []SortSpec {
	specs := make([]SortSpec, 0, len(t.state.Sorting))
	for _, spec := range t.state.Sorting {
		if c, ok := t.Column(spec.Column); ok && c.Sortable() {
			specs = append(specs, spec)
		}
	}
	return specs
}

// SortedRows returns the filtered rows in sort order. The sort is stable,
// so rows with equal keys keep their fetch order.
func (t *Table) SortedRows() []*model.Feature {
	rows := t.FilteredRows()
	specs := t.sortSpecs()
	if len(specs) == 0 {
		return rows
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, spec := range specs {
			c, _ := t.Column(spec.Column)
			n := c.Compare(rows[i], rows[j])
			if spec.Desc {
				n = -n
			}
			if n != 0 {
				return n < 0
			}
		}
		return false
	})
	return rows
}

func pageCount(total, size int) int {
	if total == 0 || size <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

func (t *Table) PageCount() int {
	return pageCount(len(t.FilteredRows()), t.state.PageSize)
}

// pageIndex clamps the requested page to the last available page.
func (t *Table) pageIndex(total int) int {
	last := pageCount(total, t.state.PageSize) - 1
	return max(0, min(t.state.PageIndex, last))
}

func (t *Table) PageRows() []*model.Feature {
	return t.page(t.SortedRows())
}

func (t *Table) page(sorted []*model.Feature) []*model.Feature {
	size := t.state.PageSize
	if size <= 0 {
		return sorted
	}
	start := t.pageIndex(len(sorted)) * size
	end := min(start+size, len(sorted))
	return sorted[start:end]
}

func (t *Table) ToggleRowSelected(id string) {
	t.state.SetSelected(id, !t.state.IsSelected(id))
}

// ToggleAllPageRowsSelected selects or clears the rows of the current page
// only. Selections on other pages are untouched.
func (t *Table) ToggleAllPageRowsSelected(selected bool) {
	for _, f := range t.PageRows() {
		t.state.SetSelected(f.ID, selected)
	}
}

func (t *Table) IsAllPageRowsSelected() bool {
	rows := t.PageRows()
	if len(rows) == 0 {
		return false
	}
	for _, f := range rows {
		if !t.state.IsSelected(f.ID) {
			return false
		}
	}
	return true
}

func (t *Table) IsSomePageRowsSelected() bool {
	for _, f := range t.PageRows() {
		if t.state.IsSelected(f.ID) {
			return true
		}
	}
	return false
}

// SelectedCount counts selected rows among the loaded records.
func (t *Table) SelectedCount() int {
	n := 0
	for i := range t.rows {
		if t.state.IsSelected(t.rows[i].ID) {
			n++
		}
	}
	return n
}

// link renders the query string of the state after mutate has been applied
// to a copy of it.
func (t *Table) link(mutate func(*State)) string {
	s := t.state.Clone()
	mutate(s)
	return "?" + s.Encode()
}

type Header struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Sortable  bool   `json:"sortable"`
	Sorted    string `json:"sorted,omitempty"`
	SortQuery string `json:"sort_query,omitempty"`
}

type RowView struct {
	ID          string         `json:"id"`
	Selected    bool           `json:"selected"`
	SelectQuery string         `json:"-"`
	Cells       map[string]any `json:"cells"`
}

type Pagination struct {
	Page      int    `json:"page"`
	PageCount int    `json:"page_count"`
	PageSize  int    `json:"page_size"`
	Total     int    `json:"total"`
	Filtered  int    `json:"filtered"`
	Selected  int    `json:"selected"`
	HasPrev   bool   `json:"has_prev"`
	HasNext   bool   `json:"has_next"`
	PrevQuery string `json:"-"`
	NextQuery string `json:"-"`
}

type View struct {
	Headers        []Header   `json:"headers"`
	Rows           []RowView  `json:"rows"`
	Pagination     Pagination `json:"pagination"`
	AllSelected    bool       `json:"all_selected"`
	SomeSelected   bool       `json:"some_selected"`
	SelectAllQuery string     `json:"-"`
	Query          string     `json:"query"`
}

// View projects the current page into header and row cells of the visible
// columns, with the links that move the table to its next states.
func (t *Table) View() View {
	query := t.state.Encode()
	visible := t.VisibleColumns()

	headers := make([]Header, 0, len(visible))
	for _, c := range visible {
		h := Header{ID: c.ID, Title: c.Title, Sortable: c.Sortable()}
		if h.Sortable {
			h.Sorted = t.state.SortDirection(c.ID)
			id := c.ID
			h.SortQuery = t.link(func(s *State) { s.ToggleSort(id) })
		}
		headers = append(headers, h)
	}

	sorted := t.SortedRows()
	page := t.page(sorted)
	index := t.pageIndex(len(sorted))
	count := pageCount(len(sorted), t.state.PageSize)

	rows := make([]RowView, 0, len(page))
	for _, f := range page {
		id := f.ID
		rv := RowView{
			ID:          id,
			Selected:    t.state.IsSelected(id),
			SelectQuery: t.link(func(s *State) { s.SetSelected(id, !s.IsSelected(id)) }),
			Cells:       make(map[string]any, len(visible)),
		}
		for _, c := range visible {
			switch {
			case c.ID == ColSelect:
				rv.Cells[c.ID] = SelectCell{Checked: rv.Selected}
			case c.Cell != nil:
				cell := c.Cell(f)
				if a, ok := cell.(RowActions); ok {
					cell = a.withQuery(query)
				}
				rv.Cells[c.ID] = cell
			}
		}
		rows = append(rows, rv)
	}

	all := t.IsAllPageRowsSelected()
	return View{
		Headers: headers,
		Rows:    rows,
		Pagination: Pagination{
			Page:      index + 1,
			PageCount: count,
			PageSize:  t.state.PageSize,
			Total:     len(t.rows),
			Filtered:  len(sorted),
			Selected:  t.SelectedCount(),
			HasPrev:   index > 0,
			HasNext:   index < count-1,
			PrevQuery: t.link(func(s *State) { s.SetPage(index - 1) }),
			NextQuery: t.link(func(s *State) { s.SetPage(index + 1) }),
		},
		AllSelected:  all,
		SomeSelected: !all && t.IsSomePageRowsSelected(),
		SelectAllQuery: t.link(func(s *State) {
			for _, f := range page {
				s.SetSelected(f.ID, !all)
			}
		}),
		Query: query,
	}
}

type FacetOption struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Selected    bool   `json:"selected"`
	Count       int    `json:"count"`
	ToggleQuery string `json:"-"`
}

type Facet struct {
	Column     string        `json:"column"`
	Title      string        `json:"title"`
	Options    []FacetOption `json:"options"`
	Selected   int           `json:"selected"`
	ClearQuery string        `json:"-"`
}

type VisibilityToggle struct {
	Column      string `json:"column"`
	Title       string `json:"title"`
	Visible     bool   `json:"visible"`
	ToggleQuery string `json:"-"`
}

// Param is a name/value pair for hidden form inputs.
type Param struct {
	Name  string
	Value string
}

type Toolbar struct {
	Search     string             `json:"search"`
	Facets     []Facet            `json:"facets"`
	Filtered   bool               `json:"filtered"`
	ResetQuery string             `json:"-"`
	Columns    []VisibilityToggle `json:"columns"`
	NewPath    string             `json:"-"`
	// Hidden carries the rest of the state through the search form.
	Hidden []Param `json:"-"`
}

// Toolbar describes the search box, one faceted filter per filterable
// column, the reset control and the column visibility menu. Facet counts
// are taken over the rows passing every other active filter.
func (t *Table) Toolbar() Toolbar {
	tb := Toolbar{
		Search:     t.state.Search,
		Filtered:   t.IsFiltered(),
		ResetQuery: t.link(func(s *State) { s.ResetFilters() }),
		NewPath:    "/features/new?" + t.state.Encode(),
	}

	for _, fc := range facets {
		c, ok := t.Column(fc.column)
		if !ok || !c.Filterable() {
			continue
		}
		counts := make(map[string]int)
		for _, f := range t.filter(fc.column) {
			if id := facetValue(fc.column, f); id != nil {
				counts[*id]++
			}
		}

		selected := t.state.FilterValues(fc.column)
		column := fc.column
		facet := Facet{
			Column:     column,
			Title:      fc.title,
			Selected:   len(selected),
			ClearQuery: t.link(func(s *State) { s.SetFilter(column, nil) }),
		}
		for _, o := range fc.options(t.options) {
			value := o.Value
			facet.Options = append(facet.Options, FacetOption{
				Label:       o.Label,
				Value:       value,
				Selected:    slices.Contains(selected, value),
				Count:       counts[value],
				ToggleQuery: t.link(func(s *State) { s.ToggleFilterValue(column, value) }),
			})
		}
		tb.Facets = append(tb.Facets, facet)
	}

	for _, c := range t.columns {
		if !c.Hideable {
			continue
		}
		id := c.ID
		tb.Columns = append(tb.Columns, VisibilityToggle{
			Column:      id,
			Title:       c.Title,
			Visible:     t.IsVisible(c),
			ToggleQuery: t.link(func(s *State) { s.SetHidden(id, !s.IsHidden(id)) }),
		})
	}

	rest := t.state.Clone()
	rest.SetSearch("")
	for name, values := range rest.Values() {
		for _, v := range values {
			tb.Hidden = append(tb.Hidden, Param{Name: name, Value: v})
		}
	}
	sort.SliceStable(tb.Hidden, func(i, j int) bool { return tb.Hidden[i].Name < tb.Hidden[j].Name })

	return tb
}

// Values is a convenience for handlers that need the raw query of the state.
func (t *Table) Values() url.Values {
	return t.state.Values()
}
