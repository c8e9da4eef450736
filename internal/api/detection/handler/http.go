package detectionHandler

import (
	detectionService "TutelaGolang/internal/api/detection/service"
	"TutelaGolang/internal/middleware"
	"TutelaGolang/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type DetectionHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	detectionService detectionService.IDetectionService
	utils            utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ds detectionService.IDetectionService,
	utils utils.IUtils,
) *DetectionHandler {
	return &DetectionHandler{
		detectionService: ds,
		log:              log,
		validator:        validator,
		middleware:       middleware,
		utils:            utils,
	}
}

func (h *DetectionHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	detect := srv.Group("/detect")
	detect.Post("/image", h.middleware.NewRateLimiter, h.DetectImage)
	detect.Post("/frame", h.middleware.NewRateLimiter, h.DetectFrame)
	detect.Use("/ws", wsMiddleware)
	detect.Get("/ws", websocket.New(h.handleDetectionWebSocket))

	tracker := srv.Group("/tracker")
	tracker.Post("/reset", h.middleware.NewManagementTokenMiddleware, h.ResetTracker)
	tracker.Get("/status", h.TrackerStatus)

	srv.Get("/model/info", h.ModelInfo)
	srv.Get("/frames/recent", h.RecentFrames)
}
