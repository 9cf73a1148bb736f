package usecase

import (
	"context"
	"io"

	"github.com/xavierca1/ligue-mailer/internal/entity"
)

type ListRepositoryInterface interface {
	Create(ctx context.Context, list *entity.List) error
	FindByID(ctx context.Context, id string) (*entity.List, error)
	FindAll(ctx context.Context) ([]*entity.List, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

type SubscriberRepositoryInterface interface {
	Create(ctx context.Context, sub *entity.Subscriber) error
	FindByID(ctx context.Context, id string) (*entity.Subscriber, error)
	FindSubscribedByListID(ctx context.Context, listID string) ([]*entity.Subscriber, error)
	UpdateSubscribed(ctx context.Context, id string, subscribed bool) error
}

// RowSource yields parsed rows from a staged upload, one at a time.
// Next returns io.EOF when the source is exhausted. Close releases the
// staged input; the import pipeline always calls it.
type RowSource interface {
	Columns() []string
	Next() (map[string]string, error)
	Close() error
}

// ReportSink stores a failure report under a retrievable name.
type ReportSink interface {
	Create(name string) (io.WriteCloser, error)
}

// CampaignSender delivers one rendered message. Transport, credentials and
// templating live behind this interface, never in the dispatcher.
type CampaignSender interface {
	Send(to, subject string, context map[string]string) error
}
