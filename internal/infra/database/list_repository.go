package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/xavierca1/ligue-mailer/internal/entity"
)

type ListRepository struct {
	DB *sql.DB
}

func NewListRepository(db *sql.DB) *ListRepository {
	return &ListRepository{DB: db}
}

func (r *ListRepository) Create(ctx context.Context, list *entity.List) error {
	fields, err := json.Marshal(list.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode schema fields: %w", err)
	}

	query := `
		INSERT INTO lists (id, title, schema_fields, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err = r.DB.ExecContext(ctx, query, list.ID, list.Title, fields, list.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrDuplicateTitle
		}
		return err
	}

	return nil
}

func (r *ListRepository) FindByID(ctx context.Context, id string) (*entity.List, error) {
	query := `
		SELECT id, title, schema_fields, created_at
		FROM lists
		WHERE id = $1
	`

	return r.scanList(r.DB.QueryRowContext(ctx, query, id))
}

func (r *ListRepository) FindAll(ctx context.Context) ([]*entity.List, error) {
	query := `
		SELECT id, title, schema_fields, created_at
		FROM lists
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*entity.List
	for rows.Next() {
		list, err := r.scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}

	return lists, rows.Err()
}

func (r *ListRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM lists WHERE LOWER(title) = LOWER($1))`

	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, title).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ListRepository) scanList(row rowScanner) (*entity.List, error) {
	var list entity.List
	var fields []byte

	if err := row.Scan(&list.ID, &list.Title, &fields, &list.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrListNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(fields, &list.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode schema fields: %w", err)
	}

	return &list, nil
}
