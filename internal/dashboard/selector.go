package dashboard

// Triggers holds one flag per dashboard button, indexed in priority order
type Triggers []bool

// TriggersFromKeys sets the flag of every known key; unknown keys are ignored
func (r *Registry) TriggersFromKeys(keys ...string) Triggers {
	t := make(Triggers, len(r.dashboards))
	for _, key := range keys {
		if i, ok := r.byKey[key]; ok {
			t[i] = true
		}
	}
	return t
}

// Any reports whether a button was pressed
func (t Triggers) Any() bool {
	for _, on := range t {
		if on {
			return true
		}
	}
	return false
}

// Select returns the first triggered dashboard in priority order
func (r *Registry) Select(t Triggers) (Dashboard, bool) {
	for i, on := range t {
		if on && i < len(r.dashboards) {
			return r.dashboards[i], true
		}
	}
	return Dashboard{}, false
}

// Page messages
const (
	LoadingMessage    = "Dashboard is loading. You can view it by scrolling down."
	FullScreenMessage = "Please make it full screen for better viewing."
	DefaultMessage    = "Select a dashboard above or explore the other tabs to use our forecasting tools."
)

// Selection is the outcome of one render pass
type Selection struct {
	Dashboard *Dashboard
	Message   string
}

// Resolve turns button keys into what the page should show
func (r *Registry) Resolve(keys ...string) Selection {
	d, ok := r.Select(r.TriggersFromKeys(keys...))
	if !ok {
		return Selection{Message: DefaultMessage}
	}
	return Selection{Dashboard: &d, Message: LoadingMessage}
}
