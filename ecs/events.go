package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// ContactEventKind identifies contact event types reported by physics.
type ContactEventKind string

const (
	ContactBallPaddle ContactEventKind = "ball_paddle"
	ContactBallWall   ContactEventKind = "ball_wall"
	ContactBallGoal   ContactEventKind = "ball_goal"
	ContactBallOrb    ContactEventKind = "ball_orb"
)

// ContactEvent is emitted when a ball starts touching another shape. Ball is
// always the ball entity; Other is the paddle, wall, goal or orb.
type ContactEvent struct {
	Kind   ContactEventKind
	Ball   Entity
	Other  Entity
	Tag    string
	Normal [2]float64
}

const EventContact = "contact"

// EventQueue is a simple FIFO queue. Events live until the scheduler flushes
// them at the end of the tick so several systems may read the same event.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each visits queued events of the given type without consuming them.
func (q *EventQueue) Each(eventType string, fn func(Event)) {
	if q == nil || fn == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type == eventType {
			fn(evt)
		}
	}
}

// Contacts returns the queued contact events of kind.
func (q *EventQueue) Contacts(kind ContactEventKind) []ContactEvent {
	var out []ContactEvent
	q.Each(EventContact, func(evt Event) {
		c, ok := evt.Data.(ContactEvent)
		if ok && c.Kind == kind {
			out = append(out, c)
		}
	})
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
