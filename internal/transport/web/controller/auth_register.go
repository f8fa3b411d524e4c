package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type AuthRegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthRegister handles POST /api/auth/register. Self-registered accounts always get the user role.
type AuthRegister struct {
	Command *command.RegisterUser
}

func (c AuthRegister) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body AuthRegisterRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Please fill in every field")
		return
	}

	if _, err := c.Command.Execute(ctx, command.RegisterUserRequest{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	}); err != nil {
		writeError(ctx, w, err, "register user")
		return
	}

	writeMessage(ctx, w, http.StatusCreated, "User registered")
}
