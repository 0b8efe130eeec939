package repository

import (
	"context"

	"agri/entities"
)

// CalculationRepository is insert-only: there is no Update or Delete.
type CalculationRepository interface {
	Create(ctx context.Context, c *entities.Calculation) error
	FindByID(ctx context.Context, id uint) (*entities.Calculation, error)
	// ListByUser returns a user's history, oldest first. An empty userID
	// returns every calculation.
	ListByUser(ctx context.Context, userID string) ([]entities.Calculation, error)
}
