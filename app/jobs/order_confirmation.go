// Package jobs defines the queued background jobs and the notifier that
// dispatches them. Every job type must be registered with the queue at boot
// (see RegisterAll).
package jobs

import (
	"fmt"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/logger"
	"github.com/bargaoui/rideaux/pkg/mail"
	"github.com/bargaoui/rideaux/pkg/queue"
)

// OrderConfirmationJob emails a buyer after checkout.
type OrderConfirmationJob struct {
	To          string  `json:"to"`
	OrderID     string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	ItemCount   int     `json:"item_count"`
}

func (j *OrderConfirmationJob) Handle() error {
	if j.To == "" {
		// The buyer has no email on record; nothing to deliver.
		logger.Warn("jobs: order confirmation skipped, no recipient", "order", j.OrderID)
		return nil
	}

	body := fmt.Sprintf(
		"<h2>Merci pour votre commande !</h2>"+
			"<p>Commande <strong>%s</strong> : %d article(s), total %.2f TND.</p>"+
			"<p>Nous vous contacterons dès son expédition.</p>",
		j.OrderID, j.ItemCount, j.TotalAmount,
	)

	return mail.To(j.To).
		Subject("Confirmation de commande " + j.OrderID).
		Body(body).
		Send()
}

// QueueNotifier satisfies the services notifier interfaces by dispatching
// queued jobs. Dispatch errors are logged, never returned: the triggering
// write already succeeded.
type QueueNotifier struct{}

func (QueueNotifier) OrderCreated(order models.Order, email string) {
	job := &OrderConfirmationJob{
		To:          email,
		OrderID:     order.ID.Hex(),
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.OrderItems),
	}
	if err := queue.Dispatch(job); err != nil {
		logger.Error("jobs: dispatch order confirmation", "order", job.OrderID, "error", err)
	}
}

func (QueueNotifier) ConsultationReceived(c models.Consultation) {
	job := &ConsultationReceivedJob{
		To:   c.Email,
		Name: c.Name,
	}
	if err := queue.Dispatch(job); err != nil {
		logger.Error("jobs: dispatch consultation confirmation", "email", c.Email, "error", err)
	}
}

// RegisterAll makes every job type deserializable by the queue workers.
// Call once at boot.
func RegisterAll() {
	queue.Register("*jobs.OrderConfirmationJob", func() queue.Job { return &OrderConfirmationJob{} })
	queue.Register("*jobs.ConsultationReceivedJob", func() queue.Job { return &ConsultationReceivedJob{} })
}
