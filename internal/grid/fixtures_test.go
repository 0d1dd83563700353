package grid

import (
	"featureboard/internal/model"
)

func ptr(s string) *string { return &s }

var (
	statusPlanned  = &model.Status{Base: model.Base{ID: "s-planned"}, Name: "Planned", ColorHex: ptr("#3b82f6")}
	statusProgress = &model.Status{Base: model.Base{ID: "s-progress"}, Name: "In Progress"}
	statusDone     = &model.Status{Base: model.Base{ID: "s-done"}, Name: "Done"}

	teamPayments = &model.Team{Base: model.Base{ID: "t-payments"}, Name: "Payments"}
	teamIdentity = &model.Team{Base: model.Base{ID: "t-identity"}, Name: "Identity"}
	teamSearch   = &model.Team{Base: model.Base{ID: "t-search"}, Name: "Search"}
	teamPlatform = &model.Team{Base: model.Base{ID: "t-platform"}, Name: "Platform"}

	prioMust   = &model.MoscowPriority{Base: model.Base{ID: "p-must"}, Name: "Must"}
	prioShould = &model.MoscowPriority{Base: model.Base{ID: "p-should"}, Name: "Should"}

	typeEpic = &model.FeatureType{Base: model.Base{ID: "ty-epic"}, Name: "Epic", ColorHex: ptr("#a855f7")}

	valueZero     = &model.BusinessValue{Base: model.Base{ID: "b-0"}, Value: 0}
	valueFive     = &model.BusinessValue{Base: model.Base{ID: "b-5"}, Value: 5}
	valueThirteen = &model.BusinessValue{Base: model.Base{ID: "b-13"}, Value: 13}
)

type attrs struct {
	status   *model.Status
	team     *model.Team
	priority *model.MoscowPriority
	kind     *model.FeatureType
	value    *model.BusinessValue
}

func withAttributes(id string, a attrs) *model.FeatureAttributes {
	fa := &model.FeatureAttributes{Base: model.Base{ID: "fa-" + id}, FeatureID: ptr(id)}
	if a.status != nil {
		fa.StatusID, fa.Status = ptr(a.status.ID), a.status
	}
	if a.team != nil {
		fa.TeamID, fa.Team = ptr(a.team.ID), a.team
	}
	if a.priority != nil {
		fa.MoscowPriorityID, fa.MoscowPriority = ptr(a.priority.ID), a.priority
	}
	if a.kind != nil {
		fa.FeatureTypeID, fa.FeatureType = ptr(a.kind.ID), a.kind
	}
	if a.value != nil {
		fa.BusinessValueID, fa.BusinessValue = ptr(a.value.ID), a.value
	}
	return fa
}

func deps(teams ...*model.Team) []model.FeatureDependency {
	out := make([]model.FeatureDependency, 0, len(teams))
	for _, t := range teams {
		d := model.FeatureDependency{DependentTeam: t}
		if t != nil {
			d.DependentTeamID = ptr(t.ID)
		}
		out = append(out, d)
	}
	return out
}

// sampleFeatures returns, in fetch order:
//
//	f-login    "Login flow"   no attributes
//	f-checkout "Checkout"     In Progress, Payments, Must, Epic, 13, deps Identity+Search
//	f-search   "search index" Planned, Search, Should, 0
//	f-audit    "Audit log"    Done, Identity, Must, 5, five deps, one without team
func sampleFeatures() []model.Feature {
	return []model.Feature{
		{
			Base: model.Base{ID: "f-login"},
			Name: "Login flow",
		},
		{
			Base:        model.Base{ID: "f-checkout"},
			Name:        "Checkout",
			Description: ptr("One page checkout"),
			Attributes: withAttributes("f-checkout", attrs{
				status: statusProgress, team: teamPayments, priority: prioMust, kind: typeEpic, value: valueThirteen,
			}),
			Dependencies: deps(teamIdentity, teamSearch),
		},
		{
			Base: model.Base{ID: "f-search"},
			Name: "search index",
			Attributes: withAttributes("f-search", attrs{
				status: statusPlanned, team: teamSearch, priority: prioShould, value: valueZero,
			}),
		},
		{
			Base: model.Base{ID: "f-audit"},
			Name: "Audit log",
			Attributes: withAttributes("f-audit", attrs{
				status: statusDone, team: teamIdentity, priority: prioMust, value: valueFive,
			}),
			Dependencies: deps(teamPayments, nil, teamSearch, teamPlatform, teamIdentity),
		},
	}
}

func sampleOptions() Options {
	return Options{
		Status: []Option{
			{Label: "Done", Value: statusDone.ID},
			{Label: "In Progress", Value: statusProgress.ID},
			{Label: "Planned", Value: statusPlanned.ID},
		},
		Priority: []Option{
			{Label: "Must", Value: prioMust.ID},
			{Label: "Should", Value: prioShould.ID},
		},
		Team: []Option{
			{Label: "Identity", Value: teamIdentity.ID},
			{Label: "Payments", Value: teamPayments.ID},
			{Label: "Platform", Value: teamPlatform.ID},
			{Label: "Search", Value: teamSearch.ID},
		},
		FeatureType: []Option{
			{Label: "Epic", Value: typeEpic.ID},
		},
		BusinessValue: []Option{
			{Label: "0", Value: valueZero.ID},
			{Label: "5", Value: valueFive.ID},
			{Label: "13", Value: valueThirteen.ID},
		},
	}
}

func ids(rows []*model.Feature) []string {
	out := make([]string, 0, len(rows))
	for _, f := range rows {
		out = append(out, f.ID)
	}
	return out
}
