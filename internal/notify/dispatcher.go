package notify

import "log"

// Dispatcher queues messages and delivers them on a worker goroutine so the
// request path never waits on SMTP.
type Dispatcher struct {
	notifier Notifier
	queue    chan Message
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.notifier.Send(msg); err != nil {
			log.Printf("notify error (to %s): %v", msg.To, err)
		}
	}
}

// Dispatch enqueues without blocking; a full queue drops the message.
func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil || msg.To == "" {
		return
	}
	select {
	case d.queue <- msg:
	default:
		log.Println("notify queue full, dropping message")
	}
}
