package grid

import (
	"fmt"
	"testing"

	"featureboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependenciesBadges(t *testing.T) {
	for n := 0; n <= 6; n++ {
		t.Run(fmt.Sprintf("%d named", n), func(t *testing.T) {
			teams := make([]*model.Team, n)
			for i := range teams {
				teams[i] = &model.Team{Name: fmt.Sprintf("team-%d", i)}
			}
			cell := Dependencies(deps(teams...))

			assert.Len(t, cell.Badges, min(n, MaxDependencyBadges))
			assert.Equal(t, n == 0, cell.Empty)
			if n > MaxDependencyBadges {
				assert.Equal(t, n-MaxDependencyBadges, cell.Overflow)
			} else {
				assert.Zero(t, cell.Overflow)
			}
		})
	}
}

func TestDependenciesUnnamedSlot(t *testing.T) {
	cell := Dependencies(deps(teamPayments, nil, teamSearch, teamPlatform, teamIdentity))

	assert.Equal(t, []string{"Payments", "Search"}, cell.Badges)
	assert.Equal(t, 2, cell.Overflow, "the unnamed dependency still uses a slot")
	assert.Equal(t, "Payments, Search, Platform, Identity", cell.Tooltip)
	assert.False(t, cell.Empty)
}

func TestLoginFlowWithoutAttributes(t *testing.T) {
	f := &model.Feature{Base: model.Base{ID: "f-login"}, Name: "Login flow"}
	columns := Columns(NewActionMenu(Options{}))

	cells := map[string]any{}
	for _, c := range columns {
		if c.Cell != nil {
			cells[c.ID] = c.Cell(f)
		}
	}

	name, ok := cells[ColName].(NameCell)
	require.True(t, ok)
	assert.Equal(t, "Login flow", name.Name)
	assert.Nil(t, name.Type)

	assert.Equal(t, LabelCell{}, cells[ColStatus])
	assert.Equal(t, LabelCell{}, cells[ColTeam])
	assert.Equal(t, LabelCell{}, cells[ColMoscow])
	assert.Equal(t, ValueCell{}, cells[ColBusinessValue])
	assert.Equal(t, TextCell{}, cells[ColDescription])
	assert.True(t, cells[ColDependencies].(DependencyCell).Empty)
}

func TestNameCellTypeBadge(t *testing.T) {
	rows := sampleFeatures()
	cell := nameCell(&rows[1])

	require.NotNil(t, cell.Type)
	assert.Equal(t, Badge{Label: "Epic", Color: "#a855f7"}, *cell.Type)
}

func TestActionMenuCarriesOptions(t *testing.T) {
	opts := sampleOptions()
	menu := NewActionMenu(opts)
	rows := sampleFeatures()

	a := menu.For(&rows[1])
	assert.Equal(t, "f-checkout", a.FeatureID)
	assert.True(t, a.CanCopyID)
	assert.Equal(t, "/features/f-checkout", a.ViewPath)
	assert.Equal(t, "/features/f-checkout/edit", a.EditPath)
	assert.Equal(t, "/features/f-checkout/delete", a.DeletePath)
	assert.Equal(t, opts, a.Options)
	assert.Equal(t, opts, menu.Options())
}
