package settings

import "sync"

// Object is the external side of a binding: anything with named,
// observable properties.
type Object interface {
	// Property returns the current value of the named property.
	Property(name string) (any, bool)
	// SetProperty updates the named property.
	SetProperty(name string, value any) error
	// ConnectProperty registers f to run with the new value whenever
	// the named property changes, and returns a disconnect func.
	ConnectProperty(name string, f func(value any)) (disconnect func())
}

// PropertyObject is a minimal in-memory Object implementation.
type PropertyObject struct {
	mu       sync.Mutex
	props    map[string]any
	watchers map[string]map[int]func(any)
	next     int
}

// NewPropertyObject returns an empty PropertyObject.
func NewPropertyObject() *PropertyObject {
	return &PropertyObject{
		props:    make(map[string]any),
		watchers: make(map[string]map[int]func(any)),
	}
}

// Property implements Object.
func (o *PropertyObject) Property(name string) (any, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	v, ok := o.props[name]

	return v, ok
}

// SetProperty implements Object.
func (o *PropertyObject) SetProperty(name string, value any) error {
	o.mu.Lock()
	o.props[name] = value

	var fns []func(any)
	for _, f := range o.watchers[name] {
		fns = append(fns, f)
	}
	o.mu.Unlock()

	for _, f := range fns {
		f(value)
	}

	return nil
}

// ConnectProperty implements Object.
func (o *PropertyObject) ConnectProperty(name string, f func(any)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.next++
	id := o.next

	if o.watchers[name] == nil {
		o.watchers[name] = make(map[int]func(any))
	}

	o.watchers[name][id] = f

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()

		delete(o.watchers[name], id)
	}
}
