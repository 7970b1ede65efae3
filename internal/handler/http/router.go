package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "biotime-bridge"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/employees", attendanceHandler.ListEmployees)

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", attendanceHandler.ListTransactions)
		r.Get("/today", attendanceHandler.TodayTransactions)
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Route("/today", func(r chi.Router) {
			r.Get("/", attendanceHandler.TodaySummary)
			r.Get("/present", attendanceHandler.TodayPresent)
			r.Get("/absent", attendanceHandler.TodayAbsent)
			r.Get("/late", attendanceHandler.TodayLate)
			r.Get("/early-leave", attendanceHandler.TodayEarlyLeave)
		})

		r.Get("/week", attendanceHandler.WeekSummary)
		r.Get("/month", attendanceHandler.MonthSummary)

		r.Route("/report", func(r chi.Router) {
			r.Get("/weekly", attendanceHandler.WeeklyReport)
			r.Get("/monthly", attendanceHandler.MonthlyReport)
			r.Get("/monthly-previous", attendanceHandler.PreviousMonthReport)
		})
	})

	return r
}
