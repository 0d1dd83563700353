package grid

import "featureboard/internal/model"

// Column ids. They double as query parameter keys.
const (
	ColSelect        = "select"
	ColName          = "name"
	ColDescription   = "description"
	ColStatus        = "status"
	ColTeam          = "team"
	ColDependencies  = "dependencies"
	ColMoscow        = "moscow"
	ColBusinessValue = "business_value"
	ColActions       = "actions"
)

// FilterFunc decides whether a row passes the column's faceted filter.
type FilterFunc func(f *model.Feature, selected []string) bool

// CompareFunc orders two rows for the column, ascending.
type CompareFunc func(a, b *model.Feature) int

// CellFunc projects a row into the column's cell value.
type CellFunc func(f *model.Feature) any

type Column struct {
	ID       string
	Title    string
	Hideable bool
	Filter   FilterFunc
	Compare  CompareFunc
	Cell     CellFunc
}

func (c Column) Sortable() bool   { return c.Compare != nil }
func (c Column) Filterable() bool { return c.Filter != nil }

// Columns returns the feature table's columns in display order. The
// actions column renders menus from the given ActionMenu.
func Columns(menu *ActionMenu) []Column {
	return []Column{
		{
			ID: ColSelect,
		},
		{
			ID:       ColName,
			Title:    "Feature Name",
			Hideable: true,
			Filter: func(f *model.Feature, selected []string) bool {
				return MatchIDSet(f.FeatureTypeID(), selected)
			},
			Compare: compareName,
			Cell:    func(f *model.Feature) any { return nameCell(f) },
		},
		{
			ID:       ColDescription,
			Title:    "Description",
			Hideable: true,
			Cell:     func(f *model.Feature) any { return TextCell{Text: f.DescriptionText()} },
		},
		{
			ID:       ColStatus,
			Title:    "Status",
			Hideable: true,
			Filter: func(f *model.Feature, selected []string) bool {
				return MatchIDSet(f.StatusID(), selected)
			},
			Compare: compareStatus,
			Cell: func(f *model.Feature) any {
				return LabelCell{Label: f.StatusName(), Color: f.StatusColor()}
			},
		},
		{
			ID:       ColTeam,
			Title:    "Team",
			Hideable: true,
			Filter: func(f *model.Feature, selected []string) bool {
				return MatchIDSet(f.TeamID(), selected)
			},
			Compare: compareTeam,
			Cell:    func(f *model.Feature) any { return LabelCell{Label: f.TeamName()} },
		},
		{
			ID:    ColDependencies,
			Title: "Dependencies",
			Cell:  func(f *model.Feature) any { return Dependencies(f.Dependencies) },
		},
		{
			ID:       ColMoscow,
			Title:    "MoSCoW",
			Hideable: true,
			Filter: func(f *model.Feature, selected []string) bool {
				return MatchIDSet(f.MoscowPriorityID(), selected)
			},
			Compare: compareMoscow,
			Cell:    func(f *model.Feature) any { return LabelCell{Label: f.MoscowPriorityName()} },
		},
		{
			ID:       ColBusinessValue,
			Title:    "Business Value",
			Hideable: true,
			Compare:  CompareBusinessValue,
			Cell:     func(f *model.Feature) any { return businessValueCell(f) },
		},
		{
			ID:   ColActions,
			Cell: func(f *model.Feature) any { return menu.For(f) },
		},
	}
}

// facet describes a toolbar faceted filter bound to a column.
type facet struct {
	column  string
	title   string
	options func(Options) []Option
}

var facets = []facet{
	{column: ColName, title: "Type", options: func(o Options) []Option { return o.FeatureType }},
	{column: ColStatus, title: "Status", options: func(o Options) []Option { return o.Status }},
	{column: ColTeam, title: "Team", options: func(o Options) []Option { return o.Team }},
	{column: ColMoscow, title: "MoSCoW", options: func(o Options) []Option { return o.Priority }},
}

// facetValue is the reference a facet counts rows by.
func facetValue(column string, f *model.Feature) *string {
	switch column {
	case ColName:
		return f.FeatureTypeID()
	case ColStatus:
		return f.StatusID()
	case ColTeam:
		return f.TeamID()
	case ColMoscow:
		return f.MoscowPriorityID()
	}
	return nil
}
