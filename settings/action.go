package settings

// Action exposes one store key as a named, externally invocable
// operation. Activating the action writes the key; the action's state
// is the key's current value.
type Action struct {
	name  string
	store *Store
}

// CreateAction returns an action backed by key.
func (s *Store) CreateAction(key string) *Action {
	return &Action{name: key, store: s}
}

// Name returns the action's name (the key it is backed by).
func (a *Action) Name() string {
	return a.name
}

// State returns the key's current value, or nil when unset.
func (a *Action) State() any {
	v, _ := a.store.Value(a.name)
	return v
}

// Activate writes value to the backing key.
func (a *Action) Activate(value any) error {
	return a.store.SetValue(a.name, value)
}
