package detectionHandler

import (
	"time"

	"TutelaGolang/internal/api/detection"
	contextPkg "TutelaGolang/pkg/context"
	"TutelaGolang/pkg/handlerUtil"
	"TutelaGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *DetectionHandler) ResetTracker(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c := contextPkg.FromFiberCtx(ctx)

	errHandler := handlerUtil.New(h.log)

	result := h.detectionService.ResetTracker(c)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Info("Tracker reset requested")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}

func (h *DetectionHandler) TrackerStatus(ctx *fiber.Ctx) error {
	c := contextPkg.FromFiberCtx(ctx)

	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.detectionService.TrackerStatus(c))
}

func (h *DetectionHandler) ModelInfo(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	info, err := h.detectionService.ModelInfo(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "model_info")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, info)
}

func (h *DetectionHandler) RecentFrames(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	limit := ctx.QueryInt("limit", 20)
	source := ctx.Query("source")

	frames, err := h.detectionService.RecentFrames(c, limit, source)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "recent_frames")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, detection.RecentFramesResponse{
		Data: frames,
	})
}
