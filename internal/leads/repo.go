package leads

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("lead not found")

type Repo interface {
	Create(ctx context.Context, lead Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	List(ctx context.Context, limit, offset int) ([]Lead, error)
}
