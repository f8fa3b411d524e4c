package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

func (r *Repository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	sb := sqlbuilder.Select("id", "name", "type", "description", "latitude", "longitude", "image_url")
	sb.From("locations")
	sb.OrderBy("name")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running locations query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	locations := []domain.Location{}
	for rows.Next() {
		var (
			l           domain.Location
			description sql.NullString
			imageURL    sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.Type, &description, &l.Latitude, &l.Longitude, &imageURL); err != nil {
			return nil, fmt.Errorf("scanning locations: %w", err)
		}
		l.Description = nullStringPtr(description)
		l.ImageURL = nullStringPtr(imageURL)
		locations = append(locations, l)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return locations, nil
}

func (r *Repository) CreateLocation(ctx context.Context, location domain.Location) (int64, error) {
	ib := sqlbuilder.InsertInto("locations")
	ib.Cols("name", "type", "description", "latitude", "longitude", "image_url")
	ib.Values(
		location.Name,
		location.Type,
		location.Description,
		location.Latitude,
		location.Longitude,
		location.ImageURL,
	)

	id, err := r.insert(ctx, ib)
	if err != nil {
		return 0, fmt.Errorf("inserting location: %w", err)
	}
	return id, nil
}

func (r *Repository) UpdateLocation(ctx context.Context, location domain.Location) error {
	ub := sqlbuilder.Update("locations")
	ub.Set(
		ub.Assign("name", location.Name),
		ub.Assign("type", location.Type),
		ub.Assign("description", location.Description),
		ub.Assign("latitude", location.Latitude),
		ub.Assign("longitude", location.Longitude),
		ub.Assign("image_url", location.ImageURL),
	)
	ub.Where(ub.Equal("id", location.ID))

	query, args := ub.Build()
	if err := r.execOne(ctx, query, args...); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("updating location: %w", err)
	}
	return nil
}

func (r *Repository) DeleteLocation(ctx context.Context, id int64) error {
	db := sqlbuilder.DeleteFrom("locations")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	if err := r.execOne(ctx, query, args...); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("deleting location: %w", err)
	}
	return nil
}
