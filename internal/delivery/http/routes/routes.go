package routes

import (
	"laborlink/internal/delivery/http/handler"
	"laborlink/internal/pkg/jwt"
	"laborlink/internal/storage"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps are the shared collaborators the route tree is built from.
type Deps struct {
	Store storage.Storage
	Cache usecase.WorkerCache
	JWT   jwt.Service
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	handler.NewHealthHandler().RegisterRoutes(app)

	api := app.Group("/api")
	registerV1(api.Group("/v1"), deps)
}
