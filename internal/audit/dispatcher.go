package audit

import "log"

type Event struct {
	ActorEmail *string
	Action     string
	Entity     string
	EntityID   *string
	Metadata   any
}

// Dispatcher writes audit entries off the request path. Events are queued on
// a buffered channel and persisted by a single background worker.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ActorEmail,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Printf("audit write failed: %v", err)
		}
	}
}

// Dispatch is safe on a nil Dispatcher, which disables auditing.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		// full queue drops audit, never the request
		log.Println("audit queue full, dropping event")
	}
}
