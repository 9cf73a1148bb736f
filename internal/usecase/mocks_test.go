package usecase

import (
	"bytes"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-mailer/internal/entity"
)

// MockListRepository
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, list *entity.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) FindByID(ctx context.Context, id string) (*entity.List, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.List), args.Error(1)
}

func (m *MockListRepository) FindAll(ctx context.Context) ([]*entity.List, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.List), args.Error(1)
}

func (m *MockListRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

// MockSubscriberRepository
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Create(ctx context.Context, sub *entity.Subscriber) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriberRepository) FindByID(ctx context.Context, id string) (*entity.Subscriber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) FindSubscribedByListID(ctx context.Context, listID string) ([]*entity.Subscriber, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) UpdateSubscribed(ctx context.Context, id string, subscribed bool) error {
	args := m.Called(ctx, id, subscribed)
	return args.Error(0)
}

// MockCampaignSender
type MockCampaignSender struct {
	mock.Mock
}

func (m *MockCampaignSender) Send(to, subject string, context map[string]string) error {
	args := m.Called(to, subject, context)
	return args.Error(0)
}

// sliceRowSource replays a fixed set of rows, standing in for a staged
// CSV upload.
type sliceRowSource struct {
	columns []string
	rows    []map[string]string
	idx     int
	closed  bool
}

func (s *sliceRowSource) Columns() []string {
	return s.columns
}

func (s *sliceRowSource) Next() (map[string]string, error) {
	if s.idx >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.idx]
	s.idx++
	return row, nil
}

func (s *sliceRowSource) Close() error {
	s.closed = true
	return nil
}

// memorySink collects report artifacts in memory.
type memorySink struct {
	files map[string]*memoryFile
}

type memoryFile struct {
	bytes.Buffer
	closed bool
}

func (f *memoryFile) Close() error {
	f.closed = true
	return nil
}

func newMemorySink() *memorySink {
	return &memorySink{files: make(map[string]*memoryFile)}
}

func (s *memorySink) Create(name string) (io.WriteCloser, error) {
	f := &memoryFile{}
	s.files[name] = f
	return f, nil
}
