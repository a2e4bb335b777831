package imdx9

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPump_IterationOrder(t *testing.T) {
	var pump *EventPump
	batches := [][]Event{
		{CursorMoved{X: 1, Y: 2}, MouseInput{Button: MouseRight, Pressed: true}},
		{},
	}
	polls := 0
	pump = NewEventPump(func() {
		for _, ev := range batches[polls] {
			pump.Push(ev)
		}
		polls++
	}, func() time.Time { return epoch })

	assert.Equal(t, NewFrame{At: epoch}, pump.Next())
	assert.Equal(t, CursorMoved{X: 1, Y: 2}, pump.Next())
	assert.Equal(t, MouseInput{Button: MouseRight, Pressed: true}, pump.Next())
	assert.Equal(t, EventsCleared{}, pump.Next())

	pump.RequestRedraw()
	assert.Equal(t, RedrawRequested{}, pump.Next())

	assert.Equal(t, NewFrame{At: epoch}, pump.Next())
	assert.Equal(t, EventsCleared{}, pump.Next())
	assert.Equal(t, 2, polls)
}

func TestPump_RedrawRequestsCollapse(t *testing.T) {
	pump := NewEventPump(nil, func() time.Time { return epoch })

	assert.Equal(t, NewFrame{At: epoch}, pump.Next())
	pump.RequestRedraw()
	pump.RequestRedraw()
	assert.Equal(t, EventsCleared{}, pump.Next())
	assert.Equal(t, RedrawRequested{}, pump.Next())
	assert.Equal(t, NewFrame{At: epoch}, pump.Next())
}

func TestPump_WithoutRedrawRequestNoRedraw(t *testing.T) {
	pump := NewEventPump(nil, nil)

	for i := 0; i < 3; i++ {
		_, ok := pump.Next().(NewFrame)
		assert.True(t, ok)
		assert.Equal(t, EventsCleared{}, pump.Next())
	}
}

func TestPump_DrivesApp(t *testing.T) {
	var pump *EventPump
	polls := 0
	pump = NewEventPump(func() {
		polls++
		pump.Push(CursorMoved{X: float64(polls), Y: 0})
		if polls == 3 {
			pump.Push(CloseRequested{})
		}
	}, func() time.Time { return epoch.Add(time.Duration(polls) * time.Millisecond) })

	f := newFixture()
	cfg := f.config()
	cfg.Window = pump

	app, err := NewApp(cfg)
	assert.NoError(t, err)
	assert.NoError(t, app.Run())

	assert.Equal(t, uint64(2), app.Frames())
	assert.Equal(t, []InputEvent{
		CursorMoved{X: 1}, CursorMoved{X: 2}, CursorMoved{X: 3},
	}, f.gui.inputs)
}
