package routes

import (
	"net/http"

	"assetverse/auth"
	"assetverse/handlers"
	"assetverse/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handlers struct {
	Users    *handlers.UserHandler
	Assets   *handlers.AssetHandler
	Requests *handlers.RequestHandler
	Packages *handlers.PackageHandler
}

// New assembles the router. Only /user/role and PATCH /user require a
// verified token; everything else is open, matching the application's
// public contract.
func New(h Handlers, verifier auth.TokenVerifier, corsOrigins []string, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(corsOrigins))

	r.Get("/", handlers.Root)

	// Users
	r.Post("/users", h.Users.Create)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(verifier, log))

		r.Get("/user/role", h.Users.Role)
		r.Patch("/user", h.Users.UpdateName)
	})

	// Inventory
	r.Get("/packages", h.Packages.List)
	r.Get("/assets", h.Assets.List)
	r.Post("/assets", h.Assets.Create)
	r.Patch("/assets/{id}", h.Assets.Update)
	r.Delete("/asset/{id}", h.Assets.Delete)

	// Asset requests
	r.Post("/asset-requests", h.Requests.Create)
	r.Get("/asset-requests/{email}", h.Requests.ListByHR)

	return r
}
