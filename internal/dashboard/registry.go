// Package dashboard holds the fixed set of published Tableau dashboards and
// the selection rule that decides which one a page render shows.
package dashboard

import (
	"sort"
)

// Column places a dashboard card in the left or right column of the gallery
type Column int

const (
	LeftColumn Column = iota
	RightColumn
)

// Dashboard is one published visualization
type Dashboard struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Column Column `json:"column"`
	Embed  string `json:"-"`
}

// Heading is the title shown above the rendered embed
func (d Dashboard) Heading() string {
	return d.Name + " Dashboard"
}

// Registry is the read-only dashboard set, in selection priority order
type Registry struct {
	dashboards []Dashboard
	byKey      map[string]int
	byName     map[string]int
}

func newRegistry(dashboards []Dashboard) *Registry {
	r := &Registry{
		dashboards: dashboards,
		byKey:      make(map[string]int, len(dashboards)),
		byName:     make(map[string]int, len(dashboards)),
	}
	for i, d := range dashboards {
		r.byKey[d.Key] = i
		r.byName[d.Name] = i
	}
	return r
}

// Default is the registry built at process start
var Default = newRegistry([]Dashboard{
	{Key: "db1", Name: "Trade Flows by Country", Image: "changes by country.png", Column: LeftColumn, Embed: tradeFlowsEmbed},
	{Key: "db2", Name: "USD Exchange Rate", Image: "USD exchange rate according to IMF.png", Column: RightColumn, Embed: usdExchangeEmbed},
	{Key: "db3", Name: "Per Capita GNI Map", Image: "Per Capita GNI, Monitoring on the World Map.png", Column: LeftColumn, Embed: gniMapEmbed},
	{Key: "db4", Name: "Sectors by Decades", Image: "the values of sectors by decades.png", Column: RightColumn, Embed: sectorsByDecadesEmbed},
	{Key: "db5", Name: "Sectoral Spending Distribution", Image: "Sectoral Expenditure Analysis.png", Column: LeftColumn, Embed: sectoralSpendingEmbed},
})

// Len returns the number of dashboards
func (r *Registry) Len() int { return len(r.dashboards) }

// All returns the dashboards in priority order
func (r *Registry) All() []Dashboard {
	out := make([]Dashboard, len(r.dashboards))
	copy(out, r.dashboards)
	return out
}

// ByKey finds a dashboard by its button key
func (r *Registry) ByKey(key string) (Dashboard, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return Dashboard{}, false
	}
	return r.dashboards[i], true
}

// ByName finds a dashboard by its display name
func (r *Registry) ByName(name string) (Dashboard, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Dashboard{}, false
	}
	return r.dashboards[i], true
}

// Names returns the dashboard names sorted alphabetically
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.dashboards))
	for _, d := range r.dashboards {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// Columns splits the gallery into its left and right card columns.
// Left holds db1, db3, db5; right holds db2, db4.
func (r *Registry) Columns() (left, right []Dashboard) {
	for _, d := range r.dashboards {
		if d.Column == LeftColumn {
			left = append(left, d)
		} else {
			right = append(right, d)
		}
	}
	return left, right
}
