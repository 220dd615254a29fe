package events

import "testing"

func TestQueue_DrainIsFIFOAndEmpties(t *testing.T) {
	q := NewQueue()
	if q.Drain() != nil {
		t.Fatal("Drain on empty queue returned events")
	}

	q.Push(LevelLoaded{Level: 3})
	q.Push(WallContact{Speed: 2})
	q.Push(GoalReached{Level: 3})
	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	got := q.Drain()
	want := []Kind{KindLevelLoaded, KindWallContact, KindGoalReached}
	if len(got) != len(want) {
		t.Fatalf("Drain returned %d events, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.Kind() != want[i] {
			t.Errorf("event %d = %s, want %s", i, e.Kind(), want[i])
		}
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Error("queue not empty after Drain")
	}

	q.Push(CameraToggled{FirstPerson: true})
	if got := q.Drain(); len(got) != 1 || !got[0].(CameraToggled).FirstPerson {
		t.Errorf("Drain after reuse = %v", got)
	}
}

func TestKind_String(t *testing.T) {
	if KindPlayerMoved.String() != "PlayerMoved" {
		t.Errorf("String() = %q", KindPlayerMoved.String())
	}
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("String() = %q", Kind(99).String())
	}
}

func TestThrottle_Filter(t *testing.T) {
	th := NewThrottle(KindWallContact, 0.1)

	tests := []struct {
		now          float64
		wantContacts int
	}{
		{0, 1},
		{0.05, 0}, // inside the cooldown
		{0.1, 1},  // window elapsed
		{0.15, 0},
		{0.02, 1}, // clock went backwards
	}
	for _, tt := range tests {
		got := th.Filter([]Event{WallContact{}, Rolling{}, WallContact{}}, tt.now)
		contacts, rolling := 0, 0
		for _, e := range got {
			switch e.Kind() {
			case KindWallContact:
				contacts++
			case KindRolling:
				rolling++
			}
		}
		if contacts != tt.wantContacts {
			t.Errorf("at %v: %d contacts passed, want %d", tt.now, contacts, tt.wantContacts)
		}
		if rolling != 1 {
			t.Errorf("at %v: other kinds dropped", tt.now)
		}
	}

	th.Reset()
	if !th.Allow(0.16) {
		t.Error("Allow after Reset = false")
	}
}
