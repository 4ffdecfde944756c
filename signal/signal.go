// Package signal implements a small synchronous publish/subscribe primitive.
//
// What:
//
//   - Signal[T] holds an ordered list of subscriber callbacks.
//   - Emit invokes every live subscriber inline, in subscription order.
//   - Subscriptions are anonymous (Connect) or named (ConnectNamed); a named
//     subscription replaces any earlier one with the same name.
//
// Reentrancy:
//
//   - Emit iterates over a snapshot of the subscriber list, so callbacks may
//     connect or disconnect subscribers (including themselves) while a
//     dispatch is in progress.
//   - A subscriber disconnected mid-dispatch is not invoked afterwards.
//   - A subscriber connected mid-dispatch is first invoked by the next Emit.
//
// Signals carry no locks; they are owned by a single logical thread.
// The zero value of Signal is ready to use and must not be copied after first use.
package signal

// Signal is a synchronous event channel carrying values of type T.
type Signal[T any] struct {
	nextID uint64
	slots  []*slot[T]
}

type slot[T any] struct {
	id   uint64
	name string
	fn   func(T)
	dead bool
}

// detacher is implemented by every Signal instantiation so that Subscription
// does not need a type parameter.
type detacher interface {
	detach(id uint64)
}

// Subscription is a handle returned by Connect. The zero Subscription is
// valid and disconnecting it is a no-op.
type Subscription struct {
	owner detacher
	id    uint64
}

// Disconnect removes the subscriber. It is idempotent and safe to call
// from inside a dispatch of the same or another signal.
func (s Subscription) Disconnect() {
	if s.owner != nil {
		s.owner.detach(s.id)
	}
}

// Connect subscribes fn anonymously.
func (s *Signal[T]) Connect(fn func(T)) Subscription {
	return s.add("", fn)
}

// ConnectNamed subscribes fn under name, replacing any live subscriber that
// was registered with the same name.
func (s *Signal[T]) ConnectNamed(name string, fn func(T)) Subscription {
	s.Disconnect(name)
	return s.add(name, fn)
}

// Disconnect removes the named subscriber, if present.
func (s *Signal[T]) Disconnect(name string) {
	if name == "" {
		return
	}
	for _, sl := range s.slots {
		if sl.name == name {
			s.detach(sl.id)
			return
		}
	}
}

// Emit dispatches v to every subscriber that is live at the time it is reached.
func (s *Signal[T]) Emit(v T) {
	if len(s.slots) == 0 {
		return
	}
	snapshot := make([]*slot[T], len(s.slots))
	copy(snapshot, s.slots)
	for _, sl := range snapshot {
		if sl.dead {
			continue
		}
		sl.fn(v)
	}
}

// Len returns the number of live subscribers.
func (s *Signal[T]) Len() int { return len(s.slots) }

func (s *Signal[T]) add(name string, fn func(T)) Subscription {
	if fn == nil {
		return Subscription{}
	}
	s.nextID++
	s.slots = append(s.slots, &slot[T]{id: s.nextID, name: name, fn: fn})
	return Subscription{owner: s, id: s.nextID}
}

func (s *Signal[T]) detach(id uint64) {
	for i, sl := range s.slots {
		if sl.id != id {
			continue
		}
		sl.dead = true
		// shift in place: a running Emit holds its own snapshot
		copy(s.slots[i:], s.slots[i+1:])
		s.slots[len(s.slots)-1] = nil
		s.slots = s.slots[:len(s.slots)-1]
		return
	}
}
