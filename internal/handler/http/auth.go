package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pet-portal/internal/app"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/internal/utils"
)

type loginRequest struct {
	Email string `json:"email"`
}

// login issues a session token for the posted email. Unknown emails are
// registered on the fly.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := utils.ReadJSON(r.Body, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, app.MsgLoginFailed, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("email", req.Email).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
