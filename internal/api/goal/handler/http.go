package goalHandler

import (
	goalService "mordomia/internal/api/goal/service"
	"mordomia/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GoalHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	goalService goalService.IGoalService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	goalService goalService.IGoalService,
) *GoalHandler {
	return &GoalHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		goalService: goalService,
	}
}

func (h *GoalHandler) Start(srv fiber.Router) {
	goals := srv.Group("/goals")

	goals.Post("/", h.middleware.NewTokenMiddleware, h.CreateGoal)
	goals.Get("/", h.middleware.NewTokenMiddleware, h.GetGoals)
	goals.Get("/projections", h.middleware.NewTokenMiddleware, h.GetProjections)
	goals.Get("/:id", h.middleware.NewTokenMiddleware, h.GetGoalByID)
	goals.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateGoal)
	goals.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteGoal)
	goals.Post("/:id/progress", h.middleware.NewTokenMiddleware, h.AddProgress)
	goals.Post("/:id/progress/remove", h.middleware.NewTokenMiddleware, h.RemoveProgress)
}
