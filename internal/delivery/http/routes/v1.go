package routes

import (
	"laborlink/internal/delivery/http/handler"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func registerV1(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(deps.JWT).Middleware()

	authSvc := usecase.NewAuthService(deps.Store, deps.JWT)
	userSvc := usecase.NewUserService(deps.Store, deps.Cache)
	jobSvc := usecase.NewJobService(deps.Store)
	appSvc := usecase.NewApplicationService(deps.Store)
	reviewSvc := usecase.NewReviewService(deps.Store, deps.Cache)
	messageSvc := usecase.NewMessageService(deps.Store)

	handler.NewAuthHandler(authSvc).RegisterRoutes(r.Group("/auth"))
	handler.NewUserHandler(userSvc, reviewSvc).RegisterRoutes(r, authMw)
	handler.NewJobsHandler(jobSvc, appSvc).RegisterRoutes(r, authMw)
	handler.NewApplicationHandler(appSvc).RegisterRoutes(r, authMw)
	handler.NewReviewHandler(reviewSvc).RegisterRoutes(r, authMw)
	handler.NewMessageHandler(messageSvc).RegisterRoutes(r, authMw)
}
