package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-scheduler/internal/db"
	"github.com/BruksfildServices01/agenda-scheduler/internal/logger"
	"github.com/BruksfildServices01/agenda-scheduler/internal/notification"
	"github.com/BruksfildServices01/agenda-scheduler/internal/timezone"
	ucReminder "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/reminder"
)

type appContext struct {
	cfg    *config.Config
	logger *zap.Logger
	run    *ucReminder.ProcessPending
}

type RunCmd struct{}

func (c *RunCmd) Run(app *appContext) error {
	res, err := app.run.Execute(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("sent=%d failed=%d\n", res.Sent, res.Failed)
	return nil
}

type ScheduleCmd struct {
	Cron string `help:"Cron expression in the shop timezone (defaults to REMINDER_CRON)."`
}

func (c *ScheduleCmd) Run(app *appContext) error {
	expr := c.Cron
	if expr == "" {
		expr = app.cfg.ReminderCron
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := cron.New(cron.WithLocation(timezone.Location(app.cfg.Timezone)))
	_, err := scheduler.AddFunc(expr, func() {
		if _, err := app.run.Execute(ctx); err != nil {
			app.logger.Error("reminder run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", expr, err)
	}

	app.logger.Info("reminder scheduler started",
		zap.String("cron", expr),
		zap.String("timezone", app.cfg.Timezone),
	)
	scheduler.Start()

	<-ctx.Done()
	<-scheduler.Stop().Done()
	app.logger.Info("reminder scheduler stopped")
	return nil
}

var CLI struct {
	Run      RunCmd      `cmd:"" help:"Send tomorrow's pending reminders once." default:"1"`
	Schedule ScheduleCmd `cmd:"" help:"Send pending reminders on a cron schedule until interrupted."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("reminders"),
		kong.Description("WhatsApp reminder trigger for the agenda"),
		kong.UsageOnError(),
	)

	if err := execute(kctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute(kctx *kong.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	stores, closeDB, err := dbpkg.Open(cfg, zl)
	if err != nil {
		return err
	}
	defer closeDB()

	dispatcher := audit.NewDispatcher(audit.New(stores.Audit), zl)
	defer dispatcher.Close()

	run := ucReminder.NewProcessPending(
		stores.Appointments,
		notification.NewSender(cfg.WhatsApp, zl),
		timezone.SystemClock(),
		ucReminder.Settings{Timezone: cfg.Timezone, CountryCode: cfg.WhatsApp.CountryCode},
		zl,
		dispatcher,
	)

	return kctx.Run(&appContext{cfg: cfg, logger: zl, run: run})
}
