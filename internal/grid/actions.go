package grid

import (
	"net/url"

	"featureboard/internal/model"
)

// RowActions is the view/edit/delete menu of one row.
type RowActions struct {
	FeatureID  string  `json:"feature_id"`
	CanCopyID  bool    `json:"can_copy_id"`
	ViewPath   string  `json:"view_path"`
	EditPath   string  `json:"edit_path"`
	DeletePath string  `json:"delete_path"`
	Options    Options `json:"-"`
}

// ActionMenu builds row menus. The lookup lists the edit form needs are
// handed in at construction instead of being read from shared table state.
type ActionMenu struct {
	options Options
}

func NewActionMenu(options Options) *ActionMenu {
	return &ActionMenu{options: options}
}

func (m *ActionMenu) Options() Options {
	return m.options
}

func (m *ActionMenu) For(f *model.Feature) RowActions {
	base := "/features/" + url.PathEscape(f.ID)
	return RowActions{
		FeatureID:  f.ID,
		CanCopyID:  f.ID != "",
		ViewPath:   base,
		EditPath:   base + "/edit",
		DeletePath: base + "/delete",
		Options:    m.options,
	}
}

// withQuery carries the table state into the menu links so the modal can
// return to the same view.
func (a RowActions) withQuery(query string) RowActions {
	if query == "" {
		return a
	}
	a.ViewPath += "?" + query
	a.EditPath += "?" + query
	a.DeletePath += "?" + query
	return a
}
