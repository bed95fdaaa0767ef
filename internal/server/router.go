// Package server wires handlers and middleware into the HTTP router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/coopebred/registro-socios/internal/config"
	"github.com/coopebred/registro-socios/internal/handlers"
	"github.com/coopebred/registro-socios/internal/middleware"
	"github.com/coopebred/registro-socios/internal/registration"
	"github.com/coopebred/registro-socios/internal/repository"
)

// NewRouter builds the router for the registration gateway
func NewRouter(store repository.MemberStore, cfg *config.Config) http.Handler {
	service := registration.NewService(store)
	registrationHandler := handlers.NewRegistrationHandler(service)
	healthHandler := handlers.NewHealthHandler(store, cfg.Store.Driver)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PanicRecoveryMiddleware)
	r.Use(middleware.CORSMiddleware(cfg.CORS))

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Post("/registrar-socio-individual", registrationHandler.RegisterIndividual)
	r.Post("/registrar-socio-empresa", registrationHandler.RegisterCompany)

	return r
}
