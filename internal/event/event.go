package event

// EventType - тип события
type EventType string

// Event is a simulation fact published after the state change it describes.
type Event struct {
	Type EventType
	Time float64     // simulation seconds
	Data interface{} // один из *Data типов из types.go
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously on the caller's goroutine, in
// subscription order. The simulation is single-threaded, so there is no locking.
type Dispatcher struct {
	listeners map[EventType][]Listener
	any       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for the given types.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// SubscribeAll registers listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.any = append(d.any, listener)
}

// Unsubscribe removes listener from all of its subscriptions.
func (d *Dispatcher) Unsubscribe(listener Listener) {
	for t, ls := range d.listeners {
		d.listeners[t] = without(ls, listener)
	}
	d.any = without(d.any, listener)
}

func without(ls []Listener, target Listener) []Listener {
	out := ls[:0]
	for _, l := range ls {
		if l != target {
			out = append(out, l)
		}
	}
	return out
}

// Dispatch - отправка события всем подписчикам
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range d.any {
		l.OnEvent(e)
	}
}
