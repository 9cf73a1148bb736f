package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrListNotFound   = errors.New("list not found")
	ErrDuplicateTitle = errors.New("a list with this title already exists")
)

// DefaultFallbackValue fills a schema field whose fallback was left blank.
const DefaultFallbackValue = "Unknown"

// SchemaField declares one expected column and the value used when an
// imported row omits or blanks it.
type SchemaField struct {
	Title         string `json:"title"`
	FallbackValue string `json:"fallback_value"`
}

type List struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Fields    []SchemaField `json:"fields"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewList builds a list with a fixed schema. Field titles are lowercased
// and trimmed; blank fallback values get DefaultFallbackValue.
func NewList(title string, fields []SchemaField) (*List, error) {
	normalized := make([]SchemaField, 0, len(fields))
	for _, f := range fields {
		field := SchemaField{
			Title:         strings.ToLower(strings.TrimSpace(f.Title)),
			FallbackValue: strings.TrimSpace(f.FallbackValue),
		}
		if field.FallbackValue == "" {
			field.FallbackValue = DefaultFallbackValue
		}
		normalized = append(normalized, field)
	}

	list := &List{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(title),
		Fields:    normalized,
		CreatedAt: time.Now(),
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return list, nil
}

func (l *List) Validate() error {
	if l.Title == "" {
		return errors.New("title is required")
	}
	if len(l.Fields) == 0 {
		return errors.New("at least one schema field is required")
	}
	seen := make(map[string]bool, len(l.Fields))
	for _, f := range l.Fields {
		if f.Title == "" {
			return errors.New("every schema field needs a title")
		}
		if seen[f.Title] {
			return errors.New("schema field titles must be unique")
		}
		seen[f.Title] = true
	}
	return nil
}

// FallbackValues returns the schema as a fieldName -> fallback mapping.
func (l *List) FallbackValues() map[string]string {
	values := make(map[string]string, len(l.Fields))
	for _, f := range l.Fields {
		values[f.Title] = f.FallbackValue
	}
	return values
}
