package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// UsersList handles GET /api/users.
type UsersList struct {
	Lister datasources.UserLister
}

func (c UsersList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := c.Lister.ListUsers(ctx)
	if err != nil {
		writeError(ctx, w, err, "list users")
		return
	}

	writeJSON(ctx, w, http.StatusOK, users)
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// UserCreate handles POST /api/users, letting an admin create an account with any role.
type UserCreate struct {
	Command *command.RegisterUser
}

func (c UserCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body UserCreateRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "All fields are required")
		return
	}

	if _, err := c.Command.Execute(ctx, command.RegisterUserRequest{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
		Role:     domain.Role(body.Role),
	}); err != nil {
		writeError(ctx, w, err, "create user")
		return
	}

	writeMessage(ctx, w, http.StatusCreated, "User created")
}

type UserRoleUpdateRequest struct {
	Role string `json:"role" validate:"required"`
}

// UserRoleUpdate handles PUT /api/users/{id}.
type UserRoleUpdate struct {
	Updater datasources.UserRoleUpdater
}

func (c UserRoleUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID, err := pathID(r, "id")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse user ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var body UserRoleUpdateRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Role is required")
		return
	}

	role := domain.Role(body.Role)
	if !role.Valid() {
		writeError(ctx, w, domain.ErrInvalidRole, "update user role")
		return
	}

	if err := c.Updater.UpdateUserRole(ctx, userID, role); err != nil {
		writeError(ctx, w, err, "update user role")
		return
	}

	writeMessage(ctx, w, http.StatusOK, "User role updated")
}

// UserDelete handles DELETE /api/users/{id}.
type UserDelete struct {
	Deleter datasources.UserDeleter
}

func (c UserDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID, err := pathID(r, "id")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse user ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := c.Deleter.DeleteUser(ctx, userID); err != nil {
		writeError(ctx, w, err, "delete user")
		return
	}

	writeMessage(ctx, w, http.StatusOK, "User deleted")
}
