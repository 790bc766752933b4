package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pet-portal/internal/app"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrUserNotFound:        {http.StatusNotFound, app.MsgUserNotFound},
	service.ErrInvalidToken:        {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	ErrIdentityMismatch:            {http.StatusForbidden, app.MsgAccessDenied},

	store.ErrNoUserWasFound: {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrPetNotSaved:    {http.StatusInternalServerError, app.MsgInternalServerError},
}

// responseFromError picks the status and body for err. Unknown errors are
// reported as 500.
func responseFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status, message := responseFromError(err)
	http.Error(w, message, status)
}
