package api

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/store"
	"os-scheduler/internal/util"
	"os-scheduler/internal/workload"
)

// RunStore is the run history used by the handlers.
type RunStore interface {
	CreateRun(ctx context.Context, run *store.Run) error
	GetRun(ctx context.Context, id string) (*store.Run, error)
	ListRuns(ctx context.Context, limit int) ([]*store.Run, error)
}

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	LongestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	HighestResponseRatioNext(ctx *fiber.Ctx) error
	LongestRemainingTimeFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	GenerateWorkload(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	simulator *schedulers.Simulator
	runs      RunStore // nil when run history is disabled
	logger    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, simulator *schedulers.Simulator, runs RunStore, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:    config,
		simulator: simulator,
		runs:      runs,
		logger:    logger.With("component", "api"),
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) LongestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.LongestJobFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) HighestResponseRatioNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.HighestResponseRatioNext)
}

func (s *SchedulerHandlerImpl) LongestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.LongestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	results, err := s.simulator.RunAll(request.Processes(), s.timeQuantum(request))
	if err != nil {
		return s.writeError(ctx, err)
	}

	comparison := responses.ComparisonResponse{Results: make([]responses.ScheduleResponse, 0, len(results))}
	for _, result := range results {
		response, err := s.respond(ctx, request, result)
		if err != nil {
			return s.writeError(ctx, err)
		}
		comparison.Results = append(comparison.Results, response)
	}
	return ctx.JSON(comparison)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	type algorithm struct {
		Name       string `json:"name"`
		Label      string `json:"label"`
		Preemptive bool   `json:"preemptive"`
	}
	list := make([]algorithm, 0, len(schedulers.Algorithms()))
	for _, alg := range schedulers.Algorithms() {
		strategy, err := schedulers.NewStrategy(alg, schedulers.DefaultTimeQuantum)
		if err != nil {
			return s.writeError(ctx, err)
		}
		list = append(list, algorithm{Name: string(alg), Label: alg.Label(), Preemptive: strategy.Preemptive()})
	}
	return ctx.JSON(fiber.Map{
		"algorithms":   list,
		"time_quantum": s.config.RoundRobinTimeQuantum,
	})
}

// GenerateWorkload returns a synthetic batch. Query: seed, count.
func (s *SchedulerHandlerImpl) GenerateWorkload(ctx *fiber.Ctx) error {
	cfg := s.config.Workload
	cfg.Count = ctx.QueryInt("count", cfg.Count)
	if v := ctx.Query("emergency"); v != "" {
		cfg.Emergency = ctx.QueryBool("emergency", cfg.Emergency)
	}

	seed := uint64(time.Now().UnixNano())
	if v := ctx.Query("seed"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid seed"})
		}
		seed = parsed
	}

	jobs, err := workload.Generate(cfg, workload.NewRand(seed))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(fiber.Map{"seed": seed, "jobs": requests.FromProcesses(jobs)})
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	if s.runs == nil {
		return s.historyDisabled(ctx)
	}
	runs, err := s.runs.ListRuns(ctx.UserContext(), ctx.QueryInt("limit", 50))
	if err != nil {
		return s.writeError(ctx, err)
	}
	if runs == nil {
		runs = []*store.Run{}
	}
	return ctx.JSON(fiber.Map{"runs": runs})
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	if s.runs == nil {
		return s.historyDisabled(ctx)
	}
	run, err := s.runs.GetRun(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}
	if run == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: "run not found"})
	}
	return ctx.JSON(run)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.simulator.Run(alg, request.Processes(), s.timeQuantum(request))
	if err != nil {
		return s.writeError(ctx, err)
	}
	response, err := s.respond(ctx, request, result)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(response)
}

var errInvalidRequest = errors.New("invalid request format")

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug("bad request body", "error", err)
		return nil, errInvalidRequest
	}
	if len(request.Jobs) == 0 {
		return nil, util.ErrEmptyBatch
	}
	return &request, nil
}

func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

// respond builds the response for one run and stores it when asked to.
func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, request *requests.ScheduleRequests, result *schedulers.Result) (responses.ScheduleResponse, error) {
	response, err := schedulers.GenerateResponse(result)
	if err != nil {
		return response, err
	}
	if request.Save && s.runs != nil {
		run := store.NewRun(response, time.Now())
		if err := s.runs.CreateRun(ctx.UserContext(), run); err != nil {
			return response, err
		}
		response.RunId = run.ID
	}
	return response, nil
}

func (s *SchedulerHandlerImpl) writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, errInvalidRequest) || schedulers.IsInvalidInput(err) {
		status = fiber.StatusBadRequest
	} else {
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
	}
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}

func (s *SchedulerHandlerImpl) historyDisabled(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusServiceUnavailable).JSON(responses.ErrorResponse{Error: "run history is disabled"})
}
