package anchor

// StateStore persists per-window widget state between frames
// (tree node open flags, column offsets, custom widget data).
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is a simple in-memory StateStore implementation.
type MapStateStore map[ID]any

// Get retrieves a value from the store.
func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value in the store.
func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

// Delete removes a value from the store.
func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState retrieves typed state from a store.
// Returns defaultVal if the state doesn't exist or has wrong type.
func GetState[T any](s StateStore, id ID, defaultVal T) T {
	if s == nil {
		return defaultVal
	}
	if v, ok := s.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state.
func SetState[T any](s StateStore, id ID, value T) {
	if s != nil {
		s.Set(id, value)
	}
}

// GetStateStorage returns the state store of the current window.
func (ctx *Context) GetStateStorage() StateStore {
	if ctx.CurrentWindow == nil {
		return nil
	}
	return ctx.CurrentWindow.DC.StateStorage
}

// SetStateStorage replaces the current window's store until the next Begin.
func (ctx *Context) SetStateStorage(s StateStore) {
	if w := ctx.CurrentWindow; w != nil {
		if s == nil {
			s = w.StateStorage
		}
		w.DC.StateStorage = s
	}
}
