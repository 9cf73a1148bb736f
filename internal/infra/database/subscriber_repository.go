package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/xavierca1/ligue-mailer/internal/entity"
)

type SubscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepository(db *sql.DB) *SubscriberRepository {
	return &SubscriberRepository{DB: db}
}

func (r *SubscriberRepository) Create(ctx context.Context, sub *entity.Subscriber) error {
	properties, err := json.Marshal(sub.Properties)
	if err != nil {
		return fmt.Errorf("failed to encode properties: %w", err)
	}

	query := `
		INSERT INTO subscribers (id, list_id, name, email, properties, subscribed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.DB.ExecContext(ctx, query,
		sub.ID,
		sub.ListID,
		sub.Name,
		sub.Email,
		properties,
		sub.Subscribed,
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// Emails are unique across all lists, not per list.
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

func (r *SubscriberRepository) FindByID(ctx context.Context, id string) (*entity.Subscriber, error) {
	query := `
		SELECT id, list_id, name, email, properties, subscribed, created_at, updated_at
		FROM subscribers
		WHERE id = $1
	`

	return r.scanSubscriber(r.DB.QueryRowContext(ctx, query, id))
}

func (r *SubscriberRepository) FindSubscribedByListID(ctx context.Context, listID string) ([]*entity.Subscriber, error) {
	query := `
		SELECT id, list_id, name, email, properties, subscribed, created_at, updated_at
		FROM subscribers
		WHERE list_id = $1 AND subscribed = TRUE
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscribers []*entity.Subscriber
	for rows.Next() {
		sub, err := r.scanSubscriber(rows)
		if err != nil {
			return nil, err
		}
		subscribers = append(subscribers, sub)
	}

	return subscribers, rows.Err()
}

func (r *SubscriberRepository) UpdateSubscribed(ctx context.Context, id string, subscribed bool) error {
	query := `
		UPDATE subscribers
		SET subscribed = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query, id, subscribed, time.Now())
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrSubscriberNotFound
	}

	return nil
}

func (r *SubscriberRepository) scanSubscriber(row rowScanner) (*entity.Subscriber, error) {
	var sub entity.Subscriber
	var properties []byte

	err := row.Scan(
		&sub.ID,
		&sub.ListID,
		&sub.Name,
		&sub.Email,
		&properties,
		&sub.Subscribed,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrSubscriberNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(properties, &sub.Properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}

	return &sub, nil
}
