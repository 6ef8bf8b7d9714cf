package race

type EventType int

const (
	EventGo             EventType = iota // reaction light turned green
	EventFalseStart                      // react pressed before the light
	EventReactionScored                  // Data: bonus points
	EventDodge                           // car left the bottom of the track
	EventPowerUp                         // Data: Effect
	EventShieldHit                       // shield absorbed a car
	EventCrash                           // Data: final score
	EventTick                            // end of every running tick
)

type Event struct {
	Type EventType
	X, Y int
	Data int
}

type EventHandler func(Event)

// EventBus fans race events out to host collaborators. Handlers run on the
// tick goroutine and must not block.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
