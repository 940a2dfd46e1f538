package request_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jglopez/tappedout-api/internal/api/handler/v1/request"
)

func validSignup() request.SignupRequest {
	return request.SignupRequest{
		DNI:             "12345678A",
		Email:           "maria@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		FirstName:       "Maria",
		LastName:        "Lopez",
		DateOfBirth:     time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
		GenderID:        1,
		Country:         "Spain",
		City:            "Madrid",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*request.SignupRequest)
		wantErr bool
	}{
		{"valid", func(*request.SignupRequest) {}, false},
		{"missing email", func(r *request.SignupRequest) { r.Email = "" }, true},
		{"malformed email", func(r *request.SignupRequest) { r.Email = "not-an-email" }, true},
		{"short DNI", func(r *request.SignupRequest) { r.DNI = "123" }, true},
		{"password too short", func(r *request.SignupRequest) { r.Password = "ab1"; r.ConfirmPassword = "ab1" }, true},
		{"password without digits", func(r *request.SignupRequest) { r.Password = "onlyletters"; r.ConfirmPassword = "onlyletters" }, true},
		{"password without letters", func(r *request.SignupRequest) { r.Password = "12345678"; r.ConfirmPassword = "12345678" }, true},
		{"confirm mismatch", func(r *request.SignupRequest) { r.ConfirmPassword = "different1" }, true},
		{"missing gender", func(r *request.SignupRequest) { r.GenderID = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			err := req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&request.LoginRequest{Email: "maria@example.com", Password: "secret123"}).Validate())
	assert.Error(t, (&request.LoginRequest{Email: "", Password: "secret123"}).Validate())
	assert.Error(t, (&request.LoginRequest{Email: "nope", Password: "secret123"}).Validate())
	assert.Error(t, (&request.LoginRequest{Email: "maria@example.com", Password: ""}).Validate())
}
