package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafeorigenes/origenes-api/internal/datasources/mocks"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

func TestRegisterUser_Execute(t *testing.T) {
	cases := []struct {
		name         string
		req          RegisterUserRequest
		exists       bool
		existsErr    error
		createErr    error
		expectedRole domain.Role
		wantErr      error
		skipExists   bool
		skipCreate   bool
	}{
		{
			name:         "defaults_to_user_role",
			req:          RegisterUserRequest{Username: "ana", Email: "ana@example.com", Password: "secreto"},
			expectedRole: domain.RoleUser,
		},
		{
			name:         "explicit_role",
			req:          RegisterUserRequest{Username: "luis", Email: "luis@example.com", Password: "x", Role: domain.RoleEditor},
			expectedRole: domain.RoleEditor,
		},
		{
			name:       "invalid_role",
			req:        RegisterUserRequest{Username: "ana", Email: "ana@example.com", Password: "x", Role: "owner"},
			wantErr:    domain.ErrInvalidRole,
			skipExists: true,
			skipCreate: true,
		},
		{
			name:       "already_taken",
			req:        RegisterUserRequest{Username: "ana", Email: "ana@example.com", Password: "x"},
			exists:     true,
			wantErr:    domain.ErrDuplicate,
			skipCreate: true,
		},
		{
			name:         "duplicate_race_on_insert",
			req:          RegisterUserRequest{Username: "ana", Email: "ana@example.com", Password: "x"},
			createErr:    domain.ErrDuplicate,
			expectedRole: domain.RoleUser,
			wantErr:      domain.ErrDuplicate,
		},
		{
			name:       "exists_check_error",
			req:        RegisterUserRequest{Username: "ana", Email: "ana@example.com", Password: "x"},
			existsErr:  errors.New("database error"),
			skipCreate: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserRepository(t)

			if !tc.skipExists {
				users.EXPECT().
					UserExists(mock.Anything, tc.req.Email, tc.req.Username).
					Return(tc.exists, tc.existsErr)
			}

			if !tc.skipCreate {
				users.EXPECT().
					CreateUser(mock.Anything, mock.MatchedBy(func(u domain.NewUser) bool {
						return u.Username == tc.req.Username &&
							u.Email == tc.req.Email &&
							u.Role == tc.expectedRole &&
							bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(tc.req.Password)) == nil
					})).
					Return(9, tc.createErr)
			}

			cmd := NewRegisterUser(users)
			cmd.HashCost = bcrypt.MinCost

			id, err := cmd.Execute(context.Background(), tc.req)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.existsErr != nil:
				assert.ErrorIs(t, err, tc.existsErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(9), id)
			}
		})
	}
}
