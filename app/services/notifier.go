package services

// Notifier pushes an event to all connected dashboard clients. Delivery is
// best effort; a Publish call must never block the request that caused it.
// The socket hub implements this; services never see the transport.
type Notifier interface {
	Publish(event string, payload interface{})
}

// NopNotifier discards events. Used in tests and before the hub is wired.
type NopNotifier struct{}

func (NopNotifier) Publish(string, interface{}) {}
