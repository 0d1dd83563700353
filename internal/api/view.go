package api

import (
	"slices"

	"featureboard/internal/dto/req"
	"featureboard/internal/dto/resp"
	"featureboard/internal/grid"
	"featureboard/internal/modal"
	"featureboard/internal/model"
)

type toast struct {
	Level   string
	Message string
}

type pageData struct {
	View    grid.View
	Toolbar grid.Toolbar
	Toast   *toast
	Modal   *modalView
}

type errorData struct {
	Status  int
	Message string
	BackURL string
}

type selectField struct {
	Name        string
	Label       string
	Placeholder string
	Options     []grid.Option
	Value       string
	Error       string
}

type modalView struct {
	Kind        modal.Kind
	Title       string
	Action      string
	CancelURL   string
	SubmitLabel string
	BusyLabel   string
	Error       string

	Detail      resp.FeatureDetail
	Name        string
	Description string
	NameError   string
	Selects     []selectField
}

func viewModal(f *model.Feature, cancel string) *modalView {
	return &modalView{
		Kind:      modal.KindView,
		Title:     "Feature Details: " + f.Name,
		CancelURL: cancel,
		Detail:    resp.NewFeatureDetail(f),
	}
}

func deleteModal(f *model.Feature, action, cancel string, d *modal.Dialog) *modalView {
	return &modalView{
		Kind:        modal.KindDelete,
		Title:       "Are you absolutely sure?",
		Action:      action,
		CancelURL:   cancel,
		SubmitLabel: d.SubmitLabel("Delete", "Deleting..."),
		BusyLabel:   "Deleting...",
		Name:        f.Name,
	}
}

// editForm returns the form values of f as the edit dialog first shows them.
func editForm(f *model.Feature) req.EditFeatureRequest {
	return req.EditFeatureRequest{
		ID:               f.ID,
		Name:             f.Name,
		Description:      f.DescriptionText(),
		StatusID:         deref(f.StatusID()),
		TeamID:           deref(f.TeamID()),
		MoscowPriorityID: deref(f.MoscowPriorityID()),
		FeatureTypeID:    deref(f.FeatureTypeID()),
		BusinessValueID:  deref(f.BusinessValueID()),
	}
}

// editModal builds the edit form. current is the stored feature, or nil when
// it is not on the loaded page; its labels name references that the option
// lists do not carry.
func editModal(form req.EditFeatureRequest, current *model.Feature, opts grid.Options, action, cancel string, d *modal.Dialog, errs req.FieldErrors) *modalView {
	if current == nil {
		current = &model.Feature{}
	}
	value, _ := current.BusinessValue()
	valueLabel := ""
	if current.BusinessValueID() != nil {
		valueLabel = grid.ValueLabel(value)
	}
	return &modalView{
		Kind:        modal.KindEdit,
		Title:       "Edit Feature Details",
		Action:      action,
		CancelURL:   cancel,
		SubmitLabel: d.SubmitLabel("Save and Close", "Saving..."),
		BusyLabel:   "Saving...",
		Name:        form.Name,
		Description: form.Description,
		NameError:   errs["name"],
		Selects: []selectField{
			{Name: "status_id", Label: "Status", Placeholder: "Select Status", Value: form.StatusID, Error: errs["status_id"],
				Options: keepSelected(opts.Status, form.StatusID, current.StatusID(), current.StatusName())},
			{Name: "team_id", Label: "Team", Placeholder: "Select Team", Value: form.TeamID, Error: errs["team_id"],
				Options: keepSelected(opts.Team, form.TeamID, current.TeamID(), current.TeamName())},
			{Name: "moscow_priority_id", Label: "MoSCoW Priority", Placeholder: "Select Priority", Value: form.MoscowPriorityID, Error: errs["moscow_priority_id"],
				Options: keepSelected(opts.Priority, form.MoscowPriorityID, current.MoscowPriorityID(), current.MoscowPriorityName())},
			{Name: "feature_type_id", Label: "Feature Type", Placeholder: "Select Type", Value: form.FeatureTypeID, Error: errs["feature_type_id"],
				Options: keepSelected(opts.FeatureType, form.FeatureTypeID, current.FeatureTypeID(), current.FeatureTypeName())},
			{Name: "business_value_id", Label: "Business Value", Placeholder: "Select Value", Value: form.BusinessValueID, Error: errs["business_value_id"],
				Options: keepSelected(opts.BusinessValue, form.BusinessValueID, current.BusinessValueID(), valueLabel)},
		},
	}
}

func addModal(form req.CreateFeatureRequest, action, cancel string, d *modal.Dialog, errs req.FieldErrors) *modalView {
	return &modalView{
		Kind:        modal.KindAdd,
		Title:       "Add New Feature",
		Action:      action,
		CancelURL:   cancel,
		SubmitLabel: d.SubmitLabel("Create feature", "Saving..."),
		BusyLabel:   "Saving...",
		Name:        form.Name,
		Description: form.Description,
		NameError:   errs["name"],
	}
}

// keepSelected returns opts with value added in front when the list does not
// carry it, so a failed or stale lookup list never turns a stored reference
// into "no selection" on the next save. The stored label names it when value
// is the stored id; otherwise the id stands in.
func keepSelected(opts []grid.Option, value string, storedID *string, storedLabel string) []grid.Option {
	if value == "" || slices.ContainsFunc(opts, func(o grid.Option) bool { return o.Value == value }) {
		return opts
	}
	label := value
	if storedLabel != "" && deref(storedID) == value {
		label = storedLabel
	}
	out := make([]grid.Option, 0, len(opts)+1)
	out = append(out, grid.Option{Label: label, Value: value})
	return append(out, opts...)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
