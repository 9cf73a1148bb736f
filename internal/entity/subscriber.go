package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

type Subscriber struct {
	ID         string            `json:"id"`
	ListID     string            `json:"list_id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Properties map[string]string `json:"properties"`
	Subscribed bool              `json:"subscribed"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// NewSubscriber builds a subscriber in the subscribed state. Name and email
// are lowercased and trimmed before validation.
func NewSubscriber(listID, name, email string, properties map[string]string) (*Subscriber, error) {
	now := time.Now()
	sub := &Subscriber{
		ID:         uuid.New().String(),
		ListID:     listID,
		Name:       strings.ToLower(strings.TrimSpace(name)),
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Properties: properties,
		Subscribed: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *Subscriber) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Email == "" {
		return errors.New("email is required")
	}
	if s.ListID == "" {
		return errors.New("list id is required")
	}
	return nil
}
