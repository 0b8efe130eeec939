package service

import (
	"context"

	"agri/entities"
	"agri/pkg/cost"
)

type CalculationService interface {
	// Calculate runs the estimate and appends it to userID's history.
	Calculate(ctx context.Context, userID string, req cost.Request) (*entities.Calculation, error)
	Get(ctx context.Context, id uint) (*entities.Calculation, error)
	History(ctx context.Context, userID string) ([]entities.Calculation, error)
	All(ctx context.Context) ([]entities.Calculation, error)
}
