package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-mailer/internal/entity"
)

func TestSubscriberRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sub, err := entity.NewSubscriber("list-1", "Alice", "Alice@X.com", map[string]string{"plan": "pro"})
	assert.NoError(t, err)

	mock.ExpectExec("INSERT INTO subscribers").
		WithArgs(sub.ID, "list-1", "alice", "alice@x.com", sqlmock.AnyArg(), true, sub.CreatedAt, sub.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewSubscriberRepository(db)
	assert.NoError(t, repo.Create(context.Background(), sub))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriberRepositoryCreateMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sub, err := entity.NewSubscriber("list-1", "alice", "alice@x.com", nil)
	assert.NoError(t, err)

	mock.ExpectExec("INSERT INTO subscribers").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewSubscriberRepository(db)
	assert.Equal(t, entity.ErrEmailAlreadyExists, repo.Create(context.Background(), sub))
}

func TestSubscriberRepositoryUpdateSubscribedNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE subscribers").
		WithArgs("missing", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewSubscriberRepository(db)
	err = repo.UpdateSubscribed(context.Background(), "missing", false)

	assert.Equal(t, entity.ErrSubscriberNotFound, err)
}

func TestSubscriberRepositoryFindSubscribedByListID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "list_id", "name", "email", "properties", "subscribed", "created_at", "updated_at",
	}).
		AddRow("s1", "list-1", "a", "a@x.com", []byte(`{"plan":"free"}`), true, now, now)

	mock.ExpectQuery("SELECT (.+) FROM subscribers").
		WithArgs("list-1").
		WillReturnRows(rows)

	repo := NewSubscriberRepository(db)
	subs, err := repo.FindSubscribedByListID(context.Background(), "list-1")

	assert.NoError(t, err)
	assert.Len(t, subs, 1)
	assert.Equal(t, "free", subs[0].Properties["plan"])
	assert.True(t, subs[0].Subscribed)
}
