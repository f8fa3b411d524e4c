package datasources

import (
	"context"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type LocationRepository interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateLocation(ctx context.Context, location domain.Location) (int64, error)
	UpdateLocation(ctx context.Context, location domain.Location) error
	DeleteLocation(ctx context.Context, id int64) error
}
