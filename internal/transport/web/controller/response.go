package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func writeMessage(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, MessageResponse{Message: message})
}

// writeError reports a failed operation. Domain errors map onto their HTTP status; anything else
// is logged and answered with a generic 500 so internal detail never reaches the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error, action string) {
	logger := domain.LoggerFromContext(ctx)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(ctx, w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(ctx, w, http.StatusForbidden, "You do not have permission to do this")
	case errors.Is(err, domain.ErrDuplicate):
		writeMessage(ctx, w, http.StatusConflict, "Already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(ctx, w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrInvalidReaction),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyUpdate):
		writeMessage(ctx, w, http.StatusBadRequest, err.Error())
	default:
		logger.ErrorContext(ctx, "unable to "+action, "error", err)
		writeMessage(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.InfoContext(ctx, "request rejected", "action", action, "reason", err.Error())
}

// decodeBody parses a JSON request body into dst and runs its validate tags.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("validating request body: %w", err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s [%s] from path: %w", name, raw, err)
	}
	return id, nil
}

// requestUser returns the authenticated caller, answering 401 itself when there is none.
func requestUser(w http.ResponseWriter, r *http.Request) (domain.AuthUser, bool) {
	user, ok := domain.UserFromContext(r.Context())
	if !ok {
		writeMessage(r.Context(), w, http.StatusUnauthorized, "Authentication required")
	}
	return user, ok
}

func setCacheMaxAge(w http.ResponseWriter, maxAge time.Duration) {
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(maxAge.Seconds())))
}
