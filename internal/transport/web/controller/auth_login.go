package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type AuthLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthLoginUser struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

type AuthLoginResponse struct {
	Token string        `json:"token"`
	User  AuthLoginUser `json:"user"`
}

// AuthLogin handles POST /api/auth/login.
type AuthLogin struct {
	Command *command.LoginUser
}

func (c AuthLogin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body AuthLoginRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Please enter email and password")
		return
	}

	result, err := c.Command.Execute(ctx, command.LoginUserRequest{Email: body.Email, Password: body.Password})
	if err != nil {
		writeError(ctx, w, err, "log in")
		return
	}

	writeJSON(ctx, w, http.StatusOK, AuthLoginResponse{
		Token: result.Token,
		User: AuthLoginUser{
			ID:       result.User.ID,
			Username: result.User.Username,
			Role:     result.User.Role,
		},
	})
}
