package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr error
	}{
		{
			name: "valid request",
			req: SignupRequest{
				Email:           "alice@example.com",
				Password:        "password123",
				ConfirmPassword: "password123",
			},
		},
		{
			name: "password too short",
			req: SignupRequest{
				Email:           "alice@example.com",
				Password:        "pass1",
				ConfirmPassword: "pass1",
			},
			wantErr: errInvalidPassword,
		},
		{
			name: "password without a number",
			req: SignupRequest{
				Email:           "alice@example.com",
				Password:        "passwordonly",
				ConfirmPassword: "passwordonly",
			},
			wantErr: errInvalidPassword,
		},
		{
			name: "password without a letter",
			req: SignupRequest{
				Email:           "alice@example.com",
				Password:        "1234567890",
				ConfirmPassword: "1234567890",
			},
			wantErr: errInvalidPassword,
		},
		{
			name: "confirm password mismatch",
			req: SignupRequest{
				Email:           "alice@example.com",
				Password:        "password123",
				ConfirmPassword: "password124",
			},
			wantErr: errConfirmPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSignupRequest_Validate_BadEmail(t *testing.T) {
	req := SignupRequest{
		Email:           "not-an-email",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	assert.Error(t, req.Validate())
}
