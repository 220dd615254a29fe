// Package events carries what happened during a simulation tick out to the
// host. The simulation pushes typed events; the host drains them once per frame
// and plays sounds, shakes the camera or updates the HUD.
package events

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/queue"

	"mazeroll/pkg/engine/world"
)

// Kind identifies an event type.
type Kind int

const (
	KindWallContact Kind = iota
	KindGoalReached
	KindLevelLoaded
	KindPlayerMoved
	KindCameraToggled
	KindRolling
)

func (k Kind) String() string {
	switch k {
	case KindWallContact:
		return "WallContact"
	case KindGoalReached:
		return "GoalReached"
	case KindLevelLoaded:
		return "LevelLoaded"
	case KindPlayerMoved:
		return "PlayerMoved"
	case KindCameraToggled:
		return "CameraToggled"
	case KindRolling:
		return "Rolling"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is anything the simulation reports.
type Event interface {
	Kind() Kind
}

// WallContact is reported on every tick the ball touches a wall. Hosts
// throttle it with a Throttle before playing sounds or shaking the camera.
type WallContact struct {
	Position mgl64.Vec3
	Speed    float64 // speed after the bounce
}

// GoalReached is reported on the tick the ball comes within reach of the goal.
type GoalReached struct {
	Level int
}

// LevelLoaded is reported after a maze is generated and the ball placed on its start.
type LevelLoaded struct {
	RunID uuid.UUID
	Level int
	Seed  int64
	Grid  *world.Grid
	Start mgl64.Vec3
	Goal  mgl64.Vec3
}

// PlayerMoved is reported every tick the ball is moving.
type PlayerMoved struct {
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	RollAngle float64
	Speed01   float64
}

// Rolling is reported at the step cadence while the ball keeps moving.
type Rolling struct {
	Speed01 float64
}

// CameraToggled is reported when the view switches between top-down and first person.
type CameraToggled struct {
	FirstPerson bool
}

func (WallContact) Kind() Kind   { return KindWallContact }
func (GoalReached) Kind() Kind   { return KindGoalReached }
func (LevelLoaded) Kind() Kind   { return KindLevelLoaded }
func (PlayerMoved) Kind() Kind   { return KindPlayerMoved }
func (CameraToggled) Kind() Kind { return KindCameraToggled }
func (Rolling) Kind() Kind       { return KindRolling }

// Queue buffers events in FIFO order for a single consumer.
type Queue struct {
	q   *queue.Queue[Event]
	len int
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{q: queue.New[Event]()}
}

// Push appends an event
func (q *Queue) Push(e Event) {
	q.q.Enqueue(e)
	q.len++
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return q.len
}

// Drain removes and returns all pending events, oldest first. It returns nil
// when nothing is pending.
func (q *Queue) Drain() []Event {
	if q.len == 0 {
		return nil
	}
	out := make([]Event, 0, q.len)
	for !q.q.Empty() {
		out = append(out, q.q.Dequeue())
	}
	q.len = 0
	return out
}
