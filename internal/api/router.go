package api

import (
	"net/http"
	"time"

	"gym_admin/internal/api/handler"
	"gym_admin/internal/api/middleware"
	"gym_admin/internal/app/service"
	"gym_admin/internal/common/security"
	"gym_admin/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	memberService *service.MemberService,
	packageService *service.PackageService,
	membershipService *service.MembershipService,
	userService *service.UserService,
	statsService *service.StatsService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(metrics.Middleware)

	// Verifies a bearer token when present and puts claims in the context.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService)
		v1.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		// Everything else needs a session; the guard table decides which
		// prefixes additionally need the admin role.
		v1.Group(func(private chi.Router) {
			private.Use(middleware.Authenticator)
			private.Use(middleware.Guard(middleware.Policy))

			memberHandler := handler.NewMemberHandler(memberService)
			private.Route("/members", memberHandler.RegisterRoutes)

			packageHandler := handler.NewPackageHandler(packageService)
			private.Route("/packages", packageHandler.RegisterRoutes)

			membershipHandler := handler.NewMembershipHandler(membershipService)
			private.Route("/memberships", membershipHandler.RegisterRoutes)
			private.Get("/my-membership", membershipHandler.MyMembership)

			userHandler := handler.NewUserHandler(userService)
			private.Route("/users", userHandler.RegisterRoutes)

			statsHandler := handler.NewStatsHandler(statsService)
			private.Route("/stats", statsHandler.RegisterRoutes)
		})
	})

	return r
}
