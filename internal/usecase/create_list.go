package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/xavierca1/ligue-mailer/internal/entity"
)

type CreateListUseCase struct {
	Repo ListRepositoryInterface
}

func NewCreateListUseCase(repo ListRepositoryInterface) *CreateListUseCase {
	return &CreateListUseCase{Repo: repo}
}

func (uc *CreateListUseCase) Execute(ctx context.Context, input CreateListInput) (*entity.List, error) {
	if err := validateCreateListInput(input); err != nil {
		return nil, err
	}

	// Title uniqueness is case-insensitive: "Spring" and "spring" collide.
	exists, err := uc.Repo.ExistsByTitle(ctx, input.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to check list title: %w", err)
	}
	if exists {
		return nil, NewConflictError(entity.ErrDuplicateTitle.Error())
	}

	fields := make([]entity.SchemaField, 0, len(input.Fields))
	for _, f := range input.Fields {
		fields = append(fields, entity.SchemaField{
			Title:         f.Title,
			FallbackValue: f.FallbackValue,
		})
	}

	list, err := entity.NewList(input.Title, fields)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	if err := uc.Repo.Create(ctx, list); err != nil {
		// The unique index still guards against a concurrent create.
		if err == entity.ErrDuplicateTitle {
			return nil, NewConflictError(err.Error())
		}
		return nil, fmt.Errorf("failed to save list: %w", err)
	}

	return list, nil
}

func validateCreateListInput(input CreateListInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return NewValidationError("title is required")
	}
	if len(input.Fields) == 0 {
		return NewValidationError("at least one schema field is required")
	}
	for _, f := range input.Fields {
		if strings.TrimSpace(f.Title) == "" {
			return NewValidationError("every schema field needs a title")
		}
	}
	return nil
}
