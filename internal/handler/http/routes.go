package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route paths of the pet portal API.
const (
	loginPath      = "/api/v1/auth/login"
	getUserPath    = "/api/v1/auth/getuser"
	updateUserPath = "/api/v1/auth/updateUser"
	addPetPath     = "/addPet"
	versionPath    = "/version"

	emailHeader = "email"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post(loginPath, h.login)
		r.Get(versionPath, h.getServerVersion)
	})

	// identity-scoped routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get(getUserPath, h.getUser)
		r.Put(updateUserPath, h.updateUser)
		r.Post(addPetPath, h.addPet)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
