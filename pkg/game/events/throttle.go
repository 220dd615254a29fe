package events

// Throttle lets one event of a kind through per cooldown window. Hosts put it
// between the queue and their sounds or camera shake so a long scrape against
// a wall does not retrigger every tick.
type Throttle struct {
	Kind     Kind
	Cooldown float64 // seconds

	last float64
	seen bool
}

// NewThrottle creates a throttle for one event kind
func NewThrottle(kind Kind, cooldown float64) *Throttle {
	return &Throttle{Kind: kind, Cooldown: cooldown}
}

// Allow reports whether an event at time now passes and records it if so.
// A clock that went backwards (a new level) starts a fresh window.
func (t *Throttle) Allow(now float64) bool {
	if t.seen && now >= t.last && now-t.last < t.Cooldown {
		return false
	}
	t.last = now
	t.seen = true
	return true
}

// Filter returns evs without the events of the throttled kind that fall
// inside the cooldown. Other kinds pass untouched, in order.
func (t *Throttle) Filter(evs []Event, now float64) []Event {
	out := evs[:0:0]
	for _, ev := range evs {
		if ev.Kind() == t.Kind && !t.Allow(now) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// Reset forgets the last event
func (t *Throttle) Reset() {
	t.seen = false
}
