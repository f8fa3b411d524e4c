package controller

import (
	"net/http"
	"time"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// LocationRequest is the body for creating or replacing a map location.
type LocationRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Type        string   `json:"type" validate:"required,max=50"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
}

func (l LocationRequest) location(id int64) domain.Location {
	return domain.Location{
		ID:          id,
		Name:        l.Name,
		Type:        l.Type,
		Description: l.Description,
		Latitude:    *l.Latitude,
		Longitude:   *l.Longitude,
		ImageURL:    l.ImageURL,
	}
}

// LocationsList handles GET /api/locations.
type LocationsList struct {
	Lister      datasources.LocationRepository
	CacheMaxAge time.Duration
}

func (c LocationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locations, err := c.Lister.ListLocations(ctx)
	if err != nil {
		writeError(ctx, w, err, "list locations")
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, locations)
}

// LocationCreate handles POST /api/locations.
type LocationCreate struct {
	Repository datasources.LocationRepository
}

func (c LocationCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body LocationRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Name, type and coordinates are required")
		return
	}

	if _, err := c.Repository.CreateLocation(ctx, body.location(0)); err != nil {
		writeError(ctx, w, err, "create location")
		return
	}

	writeMessage(ctx, w, http.StatusCreated, "Location created")
}

// LocationUpdate handles PUT /api/locations/{id}, replacing every field.
type LocationUpdate struct {
	Repository datasources.LocationRepository
}

func (c LocationUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	id, err := pathID(r, "id")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse location ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	var body LocationRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Name, type and coordinates are required")
		return
	}

	if err := c.Repository.UpdateLocation(ctx, body.location(id)); err != nil {
		writeError(ctx, w, err, "update location")
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Location updated")
}

// LocationDelete handles DELETE /api/locations/{id}.
type LocationDelete struct {
	Repository datasources.LocationRepository
}

func (c LocationDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	id, err := pathID(r, "id")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse location ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	if err := c.Repository.DeleteLocation(ctx, id); err != nil {
		writeError(ctx, w, err, "delete location")
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Location deleted")
}
