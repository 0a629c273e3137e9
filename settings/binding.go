package settings

import "sync"

// Binding is a live synchronization between a store key and a named
// property on an external object. Bind returns an inactive builder;
// direction and transforms may be customized before Build activates
// it. The default direction is bidirectional.
type Binding struct {
	store    *Store
	key      string
	obj      Object
	property string

	toProperty   func(any) any
	fromProperty func(any) any
	storeToObj   bool
	objToStore   bool

	mu            sync.Mutex
	active        bool
	syncing       bool
	storeHandler  HandlerID
	objDisconnect func()
}

// Bind starts a binding between key and the named property on obj.
// The binding is inert until Build is called.
func (s *Store) Bind(key string, obj Object, property string) *Binding {
	return &Binding{
		store:      s,
		key:        key,
		obj:        obj,
		property:   property,
		storeToObj: true,
		objToStore: true,
	}
}

// GetOnly restricts the binding to store-to-object updates.
func (b *Binding) GetOnly() *Binding {
	b.storeToObj = true
	b.objToStore = false

	return b
}

// SetOnly restricts the binding to object-to-store updates.
func (b *Binding) SetOnly() *Binding {
	b.storeToObj = false
	b.objToStore = true

	return b
}

// TransformTo sets the transform applied to store values before they
// reach the property.
func (b *Binding) TransformTo(f func(any) any) *Binding {
	b.toProperty = f
	return b
}

// TransformFrom sets the transform applied to property values before
// they reach the store.
func (b *Binding) TransformFrom(f func(any) any) *Binding {
	b.fromProperty = f
	return b
}

// Build activates the binding. The property is seeded from the store,
// then updates flow in the configured directions until Unbind.
func (b *Binding) Build() *Binding {
	b.mu.Lock()
	if b.active {
		b.mu.Unlock()
		return b
	}

	b.active = true
	b.mu.Unlock()

	if b.storeToObj {
		b.pushToObject()
		b.storeHandler = b.store.Connect(b.key, b.pushToObject)
	}

	if b.objToStore {
		b.objDisconnect = b.obj.ConnectProperty(b.property, b.pushToStore)
	}

	return b
}

// Unbind tears the binding down. Safe to call more than once.
func (b *Binding) Unbind() {
	b.mu.Lock()
	if !b.active {
		b.mu.Unlock()
		return
	}

	b.active = false
	b.mu.Unlock()

	if b.storeToObj {
		b.store.Disconnect(b.storeHandler)
	}

	if b.objDisconnect != nil {
		b.objDisconnect()
	}
}

// pushToObject propagates the current store value to the property.
// The syncing flag breaks the notification loop a bidirectional
// binding would otherwise enter.
func (b *Binding) pushToObject() {
	if !b.enterSync() {
		return
	}
	defer b.leaveSync()

	v, ok := b.store.Value(b.key)
	if !ok {
		return
	}

	if b.toProperty != nil {
		v = b.toProperty(v)
	}

	_ = b.obj.SetProperty(b.property, v)
}

func (b *Binding) pushToStore(value any) {
	if !b.enterSync() {
		return
	}
	defer b.leaveSync()

	if b.fromProperty != nil {
		value = b.fromProperty(value)
	}

	_ = b.store.SetValue(b.key, value)
}

func (b *Binding) enterSync() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.syncing {
		return false
	}

	b.syncing = true

	return true
}

func (b *Binding) leaveSync() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.syncing = false
}
