package usecase

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/xavierca1/ligue-mailer/internal/entity"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type ImportSubscribersUseCase struct {
	Lists       ListRepositoryInterface
	Subscribers SubscriberRepositoryInterface
	Reports     ReportSink
}

func NewImportSubscribersUseCase(
	lists ListRepositoryInterface,
	subscribers SubscriberRepositoryInterface,
	reports ReportSink,
) *ImportSubscribersUseCase {
	return &ImportSubscribersUseCase{
		Lists:       lists,
		Subscribers: subscribers,
		Reports:     reports,
	}
}

// Execute streams the uploaded rows into the list. One bad row never stops
// the batch: the row is recorded as failed and processing moves on. The
// staged upload is released on every path, including early errors.
func (uc *ImportSubscribersUseCase) Execute(ctx context.Context, listID string, rows RowSource) (*ImportSubscribersOutput, error) {
	if rows == nil {
		return nil, NewConfigurationError("no file uploaded")
	}
	defer rows.Close()

	if strings.TrimSpace(listID) == "" {
		return nil, NewConfigurationError("list id is required")
	}

	list, err := uc.Lists.FindByID(ctx, listID)
	if err != nil {
		if err == entity.ErrListNotFound {
			return nil, NewNotFoundError(err.Error())
		}
		return nil, fmt.Errorf("failed to load list: %w", err)
	}

	report := NewFailureReport(uc.Reports, rows.Columns())
	output := &ImportSubscribersOutput{}

	for {
		row, err := rows.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			uc.fail(output, report, map[string]string{}, "", "malformed row: "+err.Error())
			continue
		}

		email := strings.ToLower(strings.TrimSpace(row["email"]))
		if !emailRegex.MatchString(email) {
			uc.fail(output, report, row, row["email"], "invalid email format")
			continue
		}

		properties := NormalizeRow(row, list.Fields)

		sub, err := entity.NewSubscriber(list.ID, row["name"], email, properties)
		if err != nil {
			uc.fail(output, report, row, email, err.Error())
			continue
		}

		if err := uc.Subscribers.Create(ctx, sub); err != nil {
			uc.fail(output, report, row, email, err.Error())
			continue
		}

		output.recordSuccess()
	}

	name, err := report.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to finalize failure report: %w", err)
	}
	output.ReportFile = name

	return output, nil
}

func (uc *ImportSubscribersUseCase) fail(out *ImportSubscribersOutput, report *FailureReport, row map[string]string, identifier, reason string) {
	out.recordFailure(identifier, reason)
	if err := report.Add(row, reason); err != nil {
		// The row is already counted; losing one report line must not
		// abort the batch.
		out.Failures[len(out.Failures)-1].Reason = reason + " (report write failed: " + err.Error() + ")"
	}
}
