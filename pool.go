package anchor

// poolSlot is one arena cell. A nil value marks a free slot.
type poolSlot[T any] struct {
	id        ID
	value     *T
	lastFrame int
}

// Pool is an arena of values keyed by ID.
//
// Values live in stable slots of a growable slice and are looked up through
// an ID -> slot index map, so map rehashing never moves a value. Each access
// stamps the slot with the current frame so stale entries can be collected.
//
// A Pool is owned by a single Context and is not safe for concurrent use.
type Pool[T any] struct {
	slots []poolSlot[T]
	index map[ID]int
	free  []int
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{index: make(map[ID]int)}
}

// GetByKey returns the value for id, or nil when absent.
func (p *Pool[T]) GetByKey(id ID) *T {
	if i, ok := p.index[id]; ok {
		return p.slots[i].value
	}
	return nil
}

// GetOrAdd returns the value for id, creating a zero value when absent.
// The slot is stamped as seen in frame.
func (p *Pool[T]) GetOrAdd(id ID, frame int) (v *T, created bool) {
	if i, ok := p.index[id]; ok {
		p.slots[i].lastFrame = frame
		return p.slots[i].value, false
	}
	v = new(T)
	slot := poolSlot[T]{id: id, value: v, lastFrame: frame}
	if n := len(p.free); n > 0 {
		i := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[i] = slot
		p.index[id] = i
	} else {
		p.index[id] = len(p.slots)
		p.slots = append(p.slots, slot)
	}
	return v, true
}

// Touch marks id as seen in frame.
func (p *Pool[T]) Touch(id ID, frame int) {
	if i, ok := p.index[id]; ok {
		p.slots[i].lastFrame = frame
	}
}

// Index returns the slot index of id, or -1.
func (p *Pool[T]) Index(id ID) int {
	if i, ok := p.index[id]; ok {
		return i
	}
	return -1
}

// GetByIndex returns the value at slot i, or nil for a free slot.
func (p *Pool[T]) GetByIndex(i int) *T {
	if i < 0 || i >= len(p.slots) {
		return nil
	}
	return p.slots[i].value
}

// Remove frees the slot of id.
func (p *Pool[T]) Remove(id ID) {
	i, ok := p.index[id]
	if !ok {
		return
	}
	delete(p.index, id)
	p.slots[i] = poolSlot[T]{}
	p.free = append(p.free, i)
}

// Len returns the number of live entries.
func (p *Pool[T]) Len() int { return len(p.index) }

// Each calls fn for every live entry in slot order.
func (p *Pool[T]) Each(fn func(id ID, v *T)) {
	for _, s := range p.slots {
		if s.value != nil {
			fn(s.id, s.value)
		}
	}
}

// Collect removes entries not seen during the last maxAge frames.
// evict, when non-nil, runs for each removed value before its slot is freed.
func (p *Pool[T]) Collect(frame, maxAge int, evict func(id ID, v *T)) int {
	removed := 0
	for i := range p.slots {
		s := p.slots[i]
		if s.value == nil || frame-s.lastFrame <= maxAge {
			continue
		}
		if evict != nil {
			evict(s.id, s.value)
		}
		delete(p.index, s.id)
		p.slots[i] = poolSlot[T]{}
		p.free = append(p.free, i)
		removed++
	}
	return removed
}

// Clear removes all entries immediately.
func (p *Pool[T]) Clear() {
	p.slots = p.slots[:0]
	p.free = p.free[:0]
	clear(p.index)
}
