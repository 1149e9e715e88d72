package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/responses"
)

// NewApp builds the fiber app with middleware and routes registered.
func NewApp(cfg *config.SchedulerConfig, handler SchedulerHandler, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler-simulator",
		ErrorHandler:          NewErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(RequestLogger(logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
	}))

	RegisterRoutes(app, handler)
	return app
}

func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	app.Post("/schedule", handler.Schedule)

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/schedule", handler.Schedule)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/sjf-preemptive", handler.ShortestJobFirstPreemptive)
		v1.Post("/srjf", handler.ShortestRemainingJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/algorithms", handler.ListAlgorithms)
	}
}

// NewErrorHandler renders every error as an ErrorResponse.
func NewErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "can not process request"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", ctx.Path()), zap.Error(err))
		}

		return ctx.Status(code).JSON(responses.ErrorResponse{
			Error:      message,
			StatusCode: code,
			RequestId:  ctx.GetRespHeader(fiber.HeaderXRequestID),
		})
	}
}

// RequestLogger logs one line per request once the error handler has set the final status.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		if err := ctx.Next(); err != nil {
			if handlerErr := ctx.App().ErrorHandler(ctx, err); handlerErr != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Info("request",
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("requestId", ctx.GetRespHeader(fiber.HeaderXRequestID)),
		)
		return nil
	}
}
