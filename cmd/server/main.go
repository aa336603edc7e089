package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Prabhugems/AMASI-management-sub016/internal/config"
	"github.com/Prabhugems/AMASI-management-sub016/internal/database"
	"github.com/Prabhugems/AMASI-management-sub016/internal/handler"
	"github.com/Prabhugems/AMASI-management-sub016/internal/middleware"
	"github.com/Prabhugems/AMASI-management-sub016/internal/notifier"
	"github.com/Prabhugems/AMASI-management-sub016/internal/queue"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
	"github.com/Prabhugems/AMASI-management-sub016/internal/router"
	"github.com/Prabhugems/AMASI-management-sub016/pkg/validator"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable; rate limiting and response cache disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	events := repository.NewEventRepo(db)
	tickets := repository.NewTicketTypeRepo(db)
	regs := repository.NewRegistrationRepo(db)
	templates := repository.NewBadgeTemplateRepo(db)
	stations := repository.NewPrintStationRepo(db)
	jobs := repository.NewPrintJobRepo(db)
	sessions := repository.NewSessionRepo(db)
	assignments := repository.NewFacultyAssignmentRepo(db)
	notifLogs := repository.NewNotificationLogRepo(db)

	dispatcher := &notifier.Dispatcher{
		Mail: notifier.NewMailerFromEnv(log),
		WA:   notifier.NewWhatsAppFromEnv(log),
		Logs: notifLogs,
		Log:  log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go queue.StartNotificationConsumer(ctx, dispatcher, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	staff := router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterEvents(staff,
		handler.NewEventHandler(events, tickets, regs),
		handler.NewTicketTypeHandler(events, tickets), cacheMW)
	router.RegisterRegistrations(staff,
		handler.NewRegistrationHandler(events, tickets, regs, log))
	router.RegisterBadges(e, staff,
		handler.NewBadgeTemplateHandler(events, templates),
		handler.NewPrintStationHandler(events, stations, jobs, regs, templates, log))
	router.RegisterProgram(e, staff,
		handler.NewProgramHandler(events, sessions, assignments, dispatcher, log),
		handler.NewNotificationHandler(notifLogs))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
