package race

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInputDrainKeepsOrder(t *testing.T) {
	t0 := time.Unix(10, 0)
	in := &Input{Left: true}
	in.Push(ActionReact, t0)
	in.Push(ActionMenu, t0.Add(time.Millisecond))

	got := in.Drain()

	assert.Equal(t, []Action{{ActionReact, t0}, {ActionMenu, t0.Add(time.Millisecond)}}, got)
	assert.Zero(t, in.Pending())
	assert.True(t, in.Left, "draining leaves held keys alone")

	in.Release()
	assert.False(t, in.Left)
}

func TestEventBus(t *testing.T) {
	var nilBus *EventBus
	nilBus.Emit(Event{Type: EventTick})

	bus := NewEventBus()
	var order []int
	bus.Subscribe(EventDodge, func(e Event) { order = append(order, 1) })
	bus.Subscribe(EventDodge, func(e Event) { order = append(order, 2) })
	bus.Subscribe(EventCrash, func(e Event) { order = append(order, 99) })

	bus.Emit(Event{Type: EventDodge})

	assert.Equal(t, []int{1, 2}, order)
}
