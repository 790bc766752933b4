package http

import (
	"net/http"

	"github.com/MKhiriev/go-pet-portal/internal/app"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/utils"
	"github.com/MKhiriev/go-pet-portal/models"
)

// getUser returns the account named by the "email" query parameter.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		log.Error().Msg("no email query parameter")
		http.Error(w, app.MsgNoEmailProvided, http.StatusBadRequest)
		return
	}
	if err := checkIdentity(r, email); err != nil {
		log.Err(err).Str("email", email).Send()
		writeError(w, err)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("get user failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateUser replaces the profile of the account named by the "email"
// header.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.Header.Get(emailHeader)
	if email == "" {
		log.Error().Msg("no email header")
		http.Error(w, app.MsgNoEmailProvided, http.StatusBadRequest)
		return
	}
	if err := checkIdentity(r, email); err != nil {
		log.Err(err).Str("email", email).Send()
		writeError(w, err)
		return
	}

	var profile models.UserProfile
	if err := utils.ReadJSON(r.Body, &profile); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, email, profile)
	if err != nil {
		log.Err(err).Str("email", email).Msg("update user failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// checkIdentity rejects requests whose token subject is not email.
func checkIdentity(r *http.Request, email string) error {
	subject, ok := utils.GetEmailFromContext(r.Context())
	if !ok || subject != email {
		return ErrIdentityMismatch
	}
	return nil
}
