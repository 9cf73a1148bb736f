package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/ligue-mailer/internal/usecase"
)

// Worker consumes queued campaign jobs and runs the dispatch usecase for
// each. Per-recipient send failures are already isolated inside the
// usecase, so a job acks unless the whole operation failed.
type Worker struct {
	Channel  *amqp.Channel
	Dispatch *usecase.SendCampaignUseCase
}

func NewWorker(ch *amqp.Channel, dispatch *usecase.SendCampaignUseCase) *Worker {
	return &Worker{Channel: ch, Dispatch: dispatch}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[worker] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload CampaignPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[worker] invalid JSON, dropping message: %s", err)
				// Malformed message. Reject without requeue so the queue
				// does not wedge.
				d.Nack(false, false)
				continue
			}

			log.Printf("[worker] dispatching campaign to list %s", payload.ListID)

			outcome, err := w.Dispatch.Execute(context.Background(), usecase.SendCampaignInput{
				ListID:  payload.ListID,
				Subject: payload.Subject,
			})
			if err != nil {
				// Operation-level failure (list missing, store down).
				// Retrying a missing list will never succeed, so no requeue.
				log.Printf("[worker] campaign dispatch failed: %s", err)
				d.Nack(false, false)
				continue
			}

			log.Printf("[worker] campaign done: %d sent, %d failed of %d",
				outcome.Succeeded, outcome.Failed, outcome.Total)
			d.Ack(false)
		}
	}()

	log.Printf(" [*] worker waiting on queue '%s'", queueName)
	<-forever
}
