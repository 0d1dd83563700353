package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleSortCycle(t *testing.T) {
	s := NewState(DefaultPageSize)

	s.ToggleSort(ColName)
	assert.Equal(t, "asc", s.SortDirection(ColName))
	s.ToggleSort(ColName)
	assert.Equal(t, "desc", s.SortDirection(ColName))
	s.ToggleSort(ColName)
	assert.Equal(t, "", s.SortDirection(ColName))
	assert.Empty(t, s.Sorting)
}

func TestToggleSortReplacesOtherColumns(t *testing.T) {
	s := NewState(DefaultPageSize)
	s.SetSorting(SortSpec{Column: ColStatus}, SortSpec{Column: ColTeam, Desc: true})

	s.ToggleSort(ColName)
	assert.Equal(t, []SortSpec{{Column: ColName}}, s.Sorting)
}

func TestToggleFilterValue(t *testing.T) {
	s := NewState(DefaultPageSize)
	s.SetPage(3)

	s.ToggleFilterValue(ColStatus, "a")
	s.ToggleFilterValue(ColStatus, "b")
	assert.Equal(t, []string{"a", "b"}, s.FilterValues(ColStatus))
	assert.Zero(t, s.PageIndex, "filter changes return to the first page")

	s.ToggleFilterValue(ColStatus, "a")
	assert.Equal(t, []string{"b"}, s.FilterValues(ColStatus))

	s.ToggleFilterValue(ColStatus, "b")
	_, active := s.Filters[ColStatus]
	assert.False(t, active, "an empty selection removes the filter")
}

func TestResetFiltersKeepsSortingAndVisibility(t *testing.T) {
	s := NewState(DefaultPageSize)
	s.SetSearch("log")
	s.SetFilter(ColStatus, []string{"s-done"})
	s.SetSorting(SortSpec{Column: ColName})
	s.SetHidden(ColTeam, true)
	assert.True(t, s.IsFiltered())

	s.ResetFilters()

	assert.False(t, s.IsFiltered())
	assert.Equal(t, "", s.Search)
	assert.Empty(t, s.Filters)
	assert.Equal(t, "asc", s.SortDirection(ColName))
	assert.True(t, s.IsHidden(ColTeam))
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewState(DefaultPageSize)
	s.SetFilter(ColStatus, []string{"a"})
	s.SetSelected("f-1", true)

	c := s.Clone()
	c.ToggleFilterValue(ColStatus, "b")
	c.SetSelected("f-2", true)
	c.SetHidden(ColTeam, true)

	assert.Equal(t, []string{"a"}, s.FilterValues(ColStatus))
	assert.False(t, s.IsSelected("f-2"))
	assert.False(t, s.IsHidden(ColTeam))
}
