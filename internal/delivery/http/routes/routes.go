package routes

import (
	"log"

	"job-assist/internal/config"
	"job-assist/internal/database"
	"job-assist/internal/delivery/http/handler"
	"job-assist/internal/delivery/http/middleware"
	"job-assist/internal/infrastructure/cache"
	"job-assist/internal/infrastructure/persistence/postgres"
	"job-assist/internal/pkg/jwt"
	"job-assist/internal/usecase"
	"job-assist/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, usecases and handlers onto the app. Page routes
// sit behind the route guard; API routes behind the auth middleware.
func Register(app *fiber.App, cfg config.Config, db database.DB, completion *cache.Completion, hub *ws.Hub, logger *log.Logger) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	resumeRepo := postgres.NewResumeRepository(db)
	jobRepo := postgres.NewJobRepository(db)

	notifier := ws.NewNotifier(hub)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo, completion, notifier)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	jobUC := usecase.NewJobFeedUsecase(jobRepo)

	authHandler := handler.NewAuthHandler(authUC, cfg.JWT)
	profileHandler := handler.NewProfileHandler(profileUC)
	resumeHandler := handler.NewResumeHandler(resumeUC)
	jobHandler := handler.NewJobHandler(jobUC)

	handler.NewHealthHandler().RegisterRoutes(app)

	guard := middleware.NewRouteGuard(jwtSvc, cfg.JWT.SessionCookie, profileUC.CompletionLookup())
	pages := app.Group("", guard.Middleware())
	handler.NewPageHandler().RegisterRoutes(pages)

	wsHandler := ws.NewHandler(hub, jwtSvc, cfg.JWT.SessionCookie, logger)
	app.Get("/ws", wsHandler.HandleEvents)

	authMw := middleware.NewAuthMiddleware(jwtSvc, cfg.JWT.SessionCookie)

	api := app.Group("/api")

	v1 := api.Group("/v1")
	authHandler.RegisterRoutes(v1.Group("/auth"))

	protected := v1.Group("", authMw.Middleware())
	profileHandler.RegisterRoutes(protected.Group("/profile"))
	resumeHandler.RegisterRoutes(protected.Group("/resumes"))
	jobHandler.RegisterRoutes(protected.Group("/jobs"))

	// The original frontend calls /api/profile directly; keep it routed.
	profileHandler.RegisterRoutes(api.Group("/profile", authMw.Middleware()))
}
