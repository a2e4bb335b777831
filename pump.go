package imdx9

import "time"

// EventPump turns a polling window system into the ordered event stream
// consumed by App. Every iteration yields a NewFrame event, then the events
// pushed by the poll function in their delivery order, then EventsCleared.
// A redraw requested while an iteration is dispatched is delivered right
// after that iteration.
type EventPump struct {
	poll   func()
	now    func() time.Time
	queue  []Event
	head   int
	redraw bool
}

// NewEventPump creates an event pump. The poll function is expected to call
// Push for every OS event it processes. A nil clock defaults to time.Now.
func NewEventPump(poll func(), now func() time.Time) *EventPump {
	if now == nil {
		now = time.Now
	}
	return &EventPump{poll: poll, now: now}
}

// Push appends an event delivered by the OS to the current iteration.
func (p *EventPump) Push(ev Event) {
	p.queue = append(p.queue, ev)
}

// RequestRedraw schedules a RedrawRequested event after the current iteration.
// Multiple requests within one iteration collapse into a single redraw.
func (p *EventPump) RequestRedraw() {
	p.redraw = true
}

// Next returns the next event, polling the window system when the current
// iteration is exhausted.
func (p *EventPump) Next() Event {
	if p.head == len(p.queue) {
		p.queue = p.queue[:0]
		p.head = 0

		if p.redraw {
			p.redraw = false
			return RedrawRequested{}
		}
		p.Push(NewFrame{At: p.now()})
		if p.poll != nil {
			p.poll()
		}
		p.Push(EventsCleared{})
	}
	ev := p.queue[p.head]
	p.queue[p.head] = nil
	p.head++

	return ev
}
