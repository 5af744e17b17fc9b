package client

// Notifier receives user-facing outcome messages. The wizard and exporter
// publish to it instead of reaching into any UI directly.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
