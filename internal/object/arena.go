package object

// Handle refers to a value stored in an Arena. A handle outlives the value:
// once the value is removed, the handle stops resolving, even if the slot
// is reused. The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// Arena owns a collection of values addressed by generation-checked handles.
// Iteration follows insertion order, so an Arena also works as a FIFO queue.
//
// Pointers returned by Get and passed to Each stay valid until the next
// Insert. The zero value is an empty arena ready to use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32 // Indices of dead slots available for reuse
	order []Handle // Live handles in insertion order
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{gen: 1})
	}

	s := &a.slots[idx]
	s.live = true
	s.val = v

	h := Handle{index: idx, gen: s.gen}
	a.order = append(a.order, h)
	return h
}

// Get returns the value for h, or false if h is stale.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return &s.val, true
}

// Remove deletes the value for h. It reports false if h was already stale.
func (a *Arena[T]) Remove(h Handle) bool {
	if _, ok := a.Get(h); !ok {
		return false
	}

	s := &a.slots[h.index]
	var zero T
	s.val = zero
	s.live = false
	s.gen++
	a.free = append(a.free, h.index)

	for i, oh := range a.order {
		if oh == h {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return len(a.order)
}

// Handles returns a snapshot of the live handles in insertion order.
// The snapshot is unaffected by later inserts and removals.
func (a *Arena[T]) Handles() []Handle {
	out := make([]Handle, len(a.order))
	copy(out, a.order)
	return out
}

// Each calls fn for every live value in insertion order.
// If fn returns true, iteration stops early.
// fn must not insert into or remove from the arena.
func (a *Arena[T]) Each(fn func(h Handle, v *T) bool) {
	for _, h := range a.order {
		if fn(h, &a.slots[h.index].val) {
			return
		}
	}
}

// Front returns the oldest live value.
func (a *Arena[T]) Front() (Handle, *T, bool) {
	if len(a.order) == 0 {
		return Handle{}, nil, false
	}
	h := a.order[0]
	return h, &a.slots[h.index].val, true
}

// PopFront removes the oldest live value. It reports false on an empty arena.
func (a *Arena[T]) PopFront() bool {
	h, _, ok := a.Front()
	if !ok {
		return false
	}
	return a.Remove(h)
}
