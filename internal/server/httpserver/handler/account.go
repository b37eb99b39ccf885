// Package handler provides the HTTP request handlers for authcore.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nvieira/authcore/internal/core/domain"
	"github.com/nvieira/authcore/internal/core/service"
)

// Signup handles POST /signup. A shape-invalid body yields 400 with the
// full list of violations; a duplicate e-mail yields 409; success yields
// 201 with the new record's metadata.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, domain.ErrValidation.Code,
			[]string{"request body must be valid JSON"})
		return
	}

	if messages := validateRequest(&req); messages != nil {
		h.writeMessage(w, r, http.StatusBadRequest, domain.ErrValidation.Code, messages)
		return
	}

	phones := make([]domain.Phone, len(req.Phones))
	for i, p := range req.Phones {
		phones[i] = domain.Phone{Number: p.Number, AreaCode: p.AreaCode}
	}

	meta, err := h.accounts.Register(r.Context(), &service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phones:   phones,
	})
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.log.WithContext(r.Context()).Info("user registered", "user_id", meta.ID)
	h.writeJSON(w, r, http.StatusCreated, metadataToResponse(meta))
}

// Signin handles POST /signin. An unknown e-mail yields 400 and a wrong
// password 401, both with the same user-facing message; success yields
// 200 with the freshly issued token in the metadata.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, domain.ErrValidation.Code,
			[]string{"request body must be valid JSON"})
		return
	}

	if messages := validateRequest(&req); messages != nil {
		h.writeMessage(w, r, http.StatusBadRequest, domain.ErrValidation.Code, messages)
		return
	}

	meta, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.log.WithContext(r.Context()).Info("user signed in", "user_id", meta.ID)
	h.writeJSON(w, r, http.StatusOK, metadataToResponse(meta))
}

// Profile handles GET /user. The session guard has already validated the
// token and placed the user ID in the context; a missing ID here means a
// routing mistake, not a client error.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		h.writeMessage(w, r, http.StatusUnauthorized,
			domain.ErrUnauthorized.Code, domain.ErrUnauthorized.Message)
		return
	}

	user, err := h.accounts.Profile(r.Context(), userID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, userToProfile(user))
}
