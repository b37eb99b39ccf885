// Package handler provides the HTTP request handlers for authcore.
package handler

import (
	"slices"
	"testing"
)

func validSignupRequest() *SignupRequest {
	return &SignupRequest{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "secret",
		Phones:   []PhonePayload{{Number: "987654321", AreaCode: "11"}},
	}
}

func TestValidateSignupOK(t *testing.T) {
	if messages := validateRequest(validSignupRequest()); messages != nil {
		t.Errorf("valid request rejected: %v", messages)
	}
}

func TestValidateSignupViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupRequest)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(r *SignupRequest) { r.Name = "" },
			message: `"nome" is required`,
		},
		{
			name:    "name too short",
			mutate:  func(r *SignupRequest) { r.Name = "ab" },
			message: `"nome" length must be at least 3 characters long`,
		},
		{
			name:    "name too long",
			mutate:  func(r *SignupRequest) { r.Name = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" },
			message: `"nome" length must be less than or equal to 30 characters long`,
		},
		{
			name:    "invalid email",
			mutate:  func(r *SignupRequest) { r.Email = "not-an-email" },
			message: `"email" must be a valid email`,
		},
		{
			name:    "password too short",
			mutate:  func(r *SignupRequest) { r.Password = "abc" },
			message: `"senha" length must be at least 6 characters long`,
		},
		{
			name:    "two phones",
			mutate:  func(r *SignupRequest) { r.Phones = append(r.Phones, r.Phones[0]) },
			message: `"telefones" must contain 1 items`,
		},
		{
			name:    "phone number wrong length",
			mutate:  func(r *SignupRequest) { r.Phones[0].Number = "12345" },
			message: `"numero" must contain a number 9 characters long.`,
		},
		{
			name:    "phone number not numeric",
			mutate:  func(r *SignupRequest) { r.Phones[0].Number = "abcdefghi" },
			message: `"numero" must contain a number 9 characters long.`,
		},
		{
			name:    "area code wrong length",
			mutate:  func(r *SignupRequest) { r.Phones[0].AreaCode = "115" },
			message: `"ddd" must contain a number 2 characters long.`,
		},
		{
			name:    "area code not numeric",
			mutate:  func(r *SignupRequest) { r.Phones[0].AreaCode = "ab" },
			message: `"ddd" must contain a number 2 characters long.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignupRequest()
			tt.mutate(req)

			messages := validateRequest(req)
			if !slices.Contains(messages, tt.message) {
				t.Errorf("violations %v missing %q", messages, tt.message)
			}
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	req := &SignupRequest{
		Name:     "ab",
		Email:    "bad",
		Password: "x",
		Phones:   []PhonePayload{{Number: "1", AreaCode: "abc"}},
	}

	messages := validateRequest(req)
	if len(messages) < 5 {
		t.Errorf("got %d violations, want every invalid field reported: %v", len(messages), messages)
	}
}

func TestValidateSignin(t *testing.T) {
	if messages := validateRequest(&SigninRequest{Email: "maria@example.com", Password: "secret"}); messages != nil {
		t.Errorf("valid signin rejected: %v", messages)
	}

	messages := validateRequest(&SigninRequest{})
	if !slices.Contains(messages, `"email" is required`) {
		t.Errorf("violations %v missing email requirement", messages)
	}
	if !slices.Contains(messages, `"senha" is required`) {
		t.Errorf("violations %v missing password requirement", messages)
	}
}
