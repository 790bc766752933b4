package http

import (
	"net/http"

	"github.com/MKhiriev/go-pet-portal/internal/app"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/utils"
	"github.com/MKhiriev/go-pet-portal/models"
)

// addPet stores a pet for its owner. The owner must be the token subject.
func (h *Handler) addPet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var pet models.Pet
	if err := utils.ReadJSON(r.Body, &pet); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	pet.ID = ""

	if pet.OwnerEmail == "" {
		log.Error().Msg("pet has no owner")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if err := checkIdentity(r, pet.OwnerEmail); err != nil {
		log.Err(err).Str("owner", pet.OwnerEmail).Send()
		writeError(w, err)
		return
	}

	created, err := h.services.PetService.CreatePet(ctx, pet)
	if err != nil {
		log.Err(err).Str("owner", pet.OwnerEmail).Msg("create pet failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("id", created.ID).Str("owner", created.OwnerEmail).Msg("pet created")
	utils.WriteJSON(w, created, http.StatusCreated)
}
