package event

type Listener interface {
	OnEvent(Event)
}

// Emitter fans events out to its listeners in registration order.
type Emitter struct {
	listeners []Listener
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) AddListener(listener Listener) {
	e.listeners = append(e.listeners, listener)
}

func (e *Emitter) Emit(events ...Event) {
	for _, ev := range events {
		for _, listener := range e.listeners {
			listener.OnEvent(ev)
		}
	}
}
