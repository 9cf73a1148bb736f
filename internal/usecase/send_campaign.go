package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/xavierca1/ligue-mailer/internal/entity"
)

type SendCampaignUseCase struct {
	Lists       ListRepositoryInterface
	Subscribers SubscriberRepositoryInterface
	Sender      CampaignSender
}

func NewSendCampaignUseCase(
	lists ListRepositoryInterface,
	subscribers SubscriberRepositoryInterface,
	sender CampaignSender,
) *SendCampaignUseCase {
	return &SendCampaignUseCase{
		Lists:       lists,
		Subscribers: subscribers,
		Sender:      sender,
	}
}

// Execute fans the campaign out to every subscribed member of the list.
// A failed send is recorded against that recipient and the batch moves on.
func (uc *SendCampaignUseCase) Execute(ctx context.Context, input SendCampaignInput) (*BatchOutcome, error) {
	if strings.TrimSpace(input.ListID) == "" {
		return nil, NewConfigurationError("list id is required")
	}

	list, err := uc.Lists.FindByID(ctx, input.ListID)
	if err != nil {
		if err == entity.ErrListNotFound {
			return nil, NewNotFoundError(err.Error())
		}
		return nil, fmt.Errorf("failed to load list: %w", err)
	}

	subscribers, err := uc.Subscribers.FindSubscribedByListID(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscribers: %w", err)
	}

	outcome := &BatchOutcome{}
	for _, sub := range subscribers {
		renderContext := BuildRecipientContext(sub)
		if err := uc.Sender.Send(sub.Email, input.Subject, renderContext); err != nil {
			outcome.recordFailure(sub.Email, err.Error())
			continue
		}
		outcome.recordSuccess()
	}

	return outcome, nil
}

// BuildRecipientContext assembles the template context for one recipient:
// the subscriber's properties, its id, and a readable summary of every
// property other than name and email.
func BuildRecipientContext(sub *entity.Subscriber) map[string]string {
	renderContext := make(map[string]string, len(sub.Properties)+2)
	for key, value := range sub.Properties {
		renderContext[key] = value
	}
	renderContext["id"] = sub.ID
	renderContext["properties_summary"] = PropertiesSummary(sub.Properties)
	return renderContext
}

// PropertiesSummary builds the "We have received your <key> as <value>. "
// sentence chain. Keys are sorted so the same subscriber always renders
// the same message.
func PropertiesSummary(properties map[string]string) string {
	keys := make([]string, 0, len(properties))
	for key := range properties {
		if key == "name" || key == "email" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "We have received your %s as %s. ", key, properties[key])
	}
	return b.String()
}
