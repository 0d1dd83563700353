package grid

import (
	"strings"

	"featureboard/internal/model"
)

// MaxDependencyBadges is the number of dependency slots shown in a cell.
const MaxDependencyBadges = 3

// Badge is a small label with an optional hex color.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

type SelectCell struct {
	Checked bool `json:"checked"`
}

type NameCell struct {
	Name string `json:"name"`
	Type *Badge `json:"type,omitempty"`
}

// LabelCell renders nothing when Label is empty.
type LabelCell struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

type TextCell struct {
	Text string `json:"text"`
}

type ValueCell struct {
	Value int  `json:"value"`
	Set   bool `json:"set"`
}

// DependencyCell is the truncated dependency list of a row.
type DependencyCell struct {
	Badges   []string `json:"badges"`
	Overflow int      `json:"overflow"`
	Tooltip  string   `json:"tooltip"`
	Empty    bool     `json:"empty"`
}

// Dependencies projects deps into a cell. The first MaxDependencyBadges
// dependencies take the display slots; a slot whose team is unresolved shows
// no badge but still counts as used, so Overflow is len(deps) minus the slots.
// The tooltip lists every resolvable team name in fetch order.
func Dependencies(deps []model.FeatureDependency) DependencyCell {
	if len(deps) == 0 {
		return DependencyCell{Empty: true, Badges: []string{}}
	}

	shown := deps
	if len(shown) > MaxDependencyBadges {
		shown = shown[:MaxDependencyBadges]
	}

	cell := DependencyCell{
		Badges:   make([]string, 0, len(shown)),
		Overflow: len(deps) - len(shown),
	}
	for _, d := range shown {
		if name := d.TeamName(); name != "" {
			cell.Badges = append(cell.Badges, name)
		}
	}

	names := make([]string, 0, len(deps))
	for _, d := range deps {
		if name := d.TeamName(); name != "" {
			names = append(names, name)
		}
	}
	cell.Tooltip = strings.Join(names, ", ")

	return cell
}

func nameCell(f *model.Feature) NameCell {
	cell := NameCell{Name: f.Name}
	if typeName := f.FeatureTypeName(); typeName != "" {
		cell.Type = &Badge{Label: typeName, Color: f.FeatureTypeColor()}
	}
	return cell
}

func businessValueCell(f *model.Feature) ValueCell {
	v, ok := f.BusinessValue()
	return ValueCell{Value: v, Set: ok}
}
