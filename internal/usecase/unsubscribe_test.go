package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-mailer/internal/entity"
)

func TestUnsubscribeSuccess(t *testing.T) {
	ctx := context.Background()
	subs := new(MockSubscriberRepository)
	subs.On("FindByID", ctx, "s1").Return(&entity.Subscriber{ID: "s1", Subscribed: true}, nil)
	subs.On("UpdateSubscribed", ctx, "s1", false).Return(nil)

	uc := NewUnsubscribeUseCase(subs)

	assert.NoError(t, uc.Execute(ctx, "s1"))
	subs.AssertExpectations(t)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	subs := new(MockSubscriberRepository)
	// Second call sees the flag already false and still succeeds.
	subs.On("FindByID", ctx, "s1").Return(&entity.Subscriber{ID: "s1", Subscribed: true}, nil).Once()
	subs.On("FindByID", ctx, "s1").Return(&entity.Subscriber{ID: "s1", Subscribed: false}, nil)
	subs.On("UpdateSubscribed", ctx, "s1", false).Return(nil)

	uc := NewUnsubscribeUseCase(subs)

	assert.NoError(t, uc.Execute(ctx, "s1"))
	assert.NoError(t, uc.Execute(ctx, "s1"))
	subs.AssertCalled(t, "UpdateSubscribed", ctx, "s1", false)
}

func TestUnsubscribeNotFound(t *testing.T) {
	ctx := context.Background()
	subs := new(MockSubscriberRepository)
	subs.On("FindByID", ctx, "missing").Return(nil, entity.ErrSubscriberNotFound)

	uc := NewUnsubscribeUseCase(subs)
	err := uc.Execute(ctx, "missing")

	assert.True(t, IsNotFound(err))
	subs.AssertNotCalled(t, "UpdateSubscribed", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnsubscribeBlankID(t *testing.T) {
	uc := NewUnsubscribeUseCase(new(MockSubscriberRepository))
	err := uc.Execute(context.Background(), "   ")

	assert.Equal(t, KindConfiguration, KindOf(err))
}
