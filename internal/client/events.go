package client

import (
	evbus "github.com/asaskevich/EventBus"
)

// TopicSessionExpired is published once the client gives up on a session.
const TopicSessionExpired = "session:expired"

// Events decouples the client from whatever reacts to session expiry, e.g.
// sending the user back to the login prompt.
type Events struct {
	bus evbus.Bus
}

func NewEvents() *Events {
	return &Events{bus: evbus.New()}
}

func (e *Events) OnSessionExpired(fn func()) error {
	return e.bus.Subscribe(TopicSessionExpired, fn)
}

func (e *Events) publishSessionExpired() {
	e.bus.Publish(TopicSessionExpired)
}
