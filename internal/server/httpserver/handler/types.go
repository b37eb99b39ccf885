// Package handler provides the HTTP request handlers for authcore.
package handler

import (
	"time"

	"github.com/nvieira/authcore/internal/core/domain"
)

// SignupRequest is the request body for POST /signup.
type SignupRequest struct {
	Name     string         `json:"nome" validate:"required,min=3,max=30"`
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"senha" validate:"required,min=6,max=30"`
	Phones   []PhonePayload `json:"telefones" validate:"required,len=1,dive"`
}

// PhonePayload is one entry of the telefones array.
type PhonePayload struct {
	Number   string `json:"numero" validate:"required,numeric,len=9"`
	AreaCode string `json:"ddd" validate:"required,numeric,len=2"`
}

// SigninRequest is the request body for POST /signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=6,max=30"`
}

// MetadataResponse is the record-metadata body returned by signup and
// signin. ultimo_login and token are empty strings until first login.
type MetadataResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"data_criacao"`
	UpdatedAt time.Time `json:"data_atualizacao"`
	LastLogin string    `json:"ultimo_login"`
	Token     string    `json:"token"`
}

// ProfileResponse is the body of GET /user. The password hash is
// deliberately absent.
type ProfileResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"nome"`
	Email     string         `json:"email"`
	Phones    []domain.Phone `json:"telefones"`
	CreatedAt time.Time      `json:"data_criacao"`
	UpdatedAt time.Time      `json:"data_atualizacao"`
	LastLogin string         `json:"ultimo_login"`
	Token     string         `json:"token"`
}

// metadataToResponse converts store metadata to its wire form.
func metadataToResponse(m *domain.Metadata) MetadataResponse {
	return MetadataResponse{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		LastLogin: formatLoginTime(m.LastLogin),
		Token:     m.Token,
	}
}

// userToProfile converts a user record to its wire form.
func userToProfile(u *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phones:    u.Phones,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		LastLogin: formatLoginTime(u.LastLogin),
		Token:     u.Token,
	}
}

// formatLoginTime renders a last-login timestamp, keeping the legacy
// API's "" for never-logged-in.
func formatLoginTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
