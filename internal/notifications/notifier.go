// Package notifications delivers customer emails off the request path. A
// mutation must never fail or slow down because the mail server is unhappy,
// so delivery is queued and failures are logged and dropped.
package notifications

import (
	"log/slog"
	"sync"
)

// Email is a single outbound message. Attachments are paths to files that
// already exist on disk when the email is enqueued.
type Email struct {
	To          string
	Subject     string
	Body        string
	Attachments []string
}

// EmailSender performs the actual delivery.
type EmailSender interface {
	Send(email Email) error
}

// Notifier fans Email values out to a fixed pool of workers.
type Notifier struct {
	sender EmailSender
	logger *slog.Logger
	queue  chan Email
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewNotifier(sender EmailSender, workers, queueSize int, logger *slog.Logger) *Notifier {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	n := &Notifier{
		sender: sender,
		logger: logger,
		queue:  make(chan Email, queueSize),
	}
	for i := 0; i < workers; i++ {
		n.wg.Add(1)
		go n.worker()
	}
	return n
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for email := range n.queue {
		if err := n.sender.Send(email); err != nil {
			n.logger.Error("email delivery failed", "to", email.To, "subject", email.Subject, "error", err)
			continue
		}
		n.logger.Info("email delivered", "to", email.To, "subject", email.Subject)
	}
}

// Enqueue hands an email to the worker pool without blocking. When the queue
// is full, or the notifier has been closed, the email is dropped and the
// drop is logged.
func (n *Notifier) Enqueue(email Email) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		n.logger.Warn("notifier closed, dropping email", "to", email.To, "subject", email.Subject)
		return
	}
	select {
	case n.queue <- email:
	default:
		n.logger.Warn("notification queue full, dropping email", "to", email.To, "subject", email.Subject)
	}
}

// Close stops accepting new emails and waits for in-flight deliveries.
// Close is idempotent; emails enqueued afterwards are dropped.
func (n *Notifier) Close() {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()
	n.wg.Wait()
}
