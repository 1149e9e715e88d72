package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/cache"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestJobFirstPreemptive(ctx *fiber.Ctx) error
	ShortestRemainingJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	cache  *cache.ResultCache
	logger *zap.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, cache *cache.ResultCache, logger *zap.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, cache: cache, logger: logger}
}

// Schedule takes the discipline from the request body.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	algorithm, err := schedulers.ParseAlgorithm(request.Algorithm)
	if err != nil {
		s.logger.Warn("unsupported algorithm requested", zap.String("algorithm", request.Algorithm))
		return fiber.NewError(fiber.StatusBadRequest, "Unsupported algorithm")
	}
	return s.respond(ctx, algorithm, request)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.SJFNonPreemptive)
}

func (s *SchedulerHandlerImpl) ShortestJobFirstPreemptive(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.SJFPreemptive)
}

func (s *SchedulerHandlerImpl) ShortestRemainingJobFirst(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.SRJF)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	if err := s.validate(request); err != nil {
		return err
	}

	results := schedulers.ScheduleAll(request.Processes)
	response := responses.AllAlgorithmsResponse{Results: make(map[string]responses.ScheduleResponse, len(results))}
	for algorithm, result := range results {
		s.cache.Set(cache.Key(string(algorithm), request.Processes), result)
		response.Results[string(algorithm)] = result
	}
	s.logger.Info("processes scheduled with every algorithm", zap.Int("processes", len(request.Processes)))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	names := make([]string, 0)
	for _, algorithm := range schedulers.Algorithms() {
		names = append(names, string(algorithm))
	}
	return ctx.JSON(responses.AlgorithmsResponse{Algorithms: names})
}

func (s *SchedulerHandlerImpl) scheduleWith(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	return s.respond(ctx, algorithm, request)
}

func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, algorithm schedulers.Algorithm, request *requests.ScheduleRequest) error {
	if err := s.validate(request); err != nil {
		return err
	}
	response, err := s.schedule(algorithm, request)
	if err != nil {
		return err
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	request := new(requests.ScheduleRequest)
	if err := ctx.BodyParser(request); err != nil {
		s.logger.Warn("invalid request body", zap.Error(err))
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) validate(request *requests.ScheduleRequest) error {
	if err := request.Validate(s.config.Limits()); err != nil {
		s.logger.Warn("rejected process list", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func (s *SchedulerHandlerImpl) schedule(algorithm schedulers.Algorithm, request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	key := cache.Key(string(algorithm), request.Processes)
	if response, ok := s.cache.Get(key); ok {
		s.logger.Debug("schedule served from cache", zap.String("algorithm", string(algorithm)))
		return response, nil
	}

	response, err := schedulers.Schedule(algorithm, request.Processes)
	if errors.Is(err, schedulers.ErrUnsupportedAlgorithm) {
		return responses.ScheduleResponse{}, fiber.NewError(fiber.StatusBadRequest, "Unsupported algorithm")
	}
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	s.cache.Set(key, response)

	s.logger.Info("processes scheduled",
		zap.String("algorithm", string(algorithm)),
		zap.Int("processes", len(request.Processes)),
		zap.Float64("avgWaitingTime", response.AvgWaitingTime),
		zap.Float64("avgTurnaroundTime", response.AvgTurnaroundTime),
	)
	return response, nil
}
