package event

type DummyListener struct {
	received []Event
}

func NewDummyListener() *DummyListener {
	return &DummyListener{received: make([]Event, 0)}
}

func (l *DummyListener) Received() []Event {
	return l.received
}

func (l *DummyListener) OnEvent(ev Event) {
	l.received = append(l.received, ev)
}
