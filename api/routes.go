package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "os-scheduler",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	RegisterRoutes(app, handler)
	return app
}

func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/ljf", handler.LongestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/hrrn", handler.HighestResponseRatioNext)
		v1.Post("/lrtf", handler.LongestRemainingTimeFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/algorithms", handler.Algorithms)
		v1.Get("/workload", handler.GenerateWorkload)
		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
	}
}
