package notify

// Message is one outbound client notification.
type Message struct {
	To      string
	Name    string
	Subject string
	Body    string
}

// Notifier delivers a message. Delivery is best-effort everywhere in the
// engine: a failed notification is logged and never rolls back the state
// change that triggered it.
type Notifier interface {
	Send(msg Message) error
}
