package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casework_notifier/internal/app"
	"casework_notifier/internal/domain/settings"
	"casework_notifier/internal/infra/alert"
	"casework_notifier/internal/infra/config"
	idb "casework_notifier/internal/infra/database"
	"casework_notifier/internal/infra/logger"
	"casework_notifier/internal/infra/mailer"
	"casework_notifier/internal/infra/memcache"
	"casework_notifier/internal/infra/scheduler"
	"casework_notifier/internal/infra/workbook"
)

func main() {
	once := flag.Bool("once", false, "run a single scan immediately and exit")
	flag.Parse()

	fmt.Println("Casework Reminder Notifier starting...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	mainLogger := logger.Get().WithField("component", "main")
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	// Database connection (durable settings tier + run audit log).
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()
	mainLogger.Info("Database connection established successfully")

	// Tracker workbook: configuration source of truth plus all row data.
	wb := workbook.Open(cfg.WorkbookPath)
	source := workbook.NewVariablesSource(wb)

	// Settings tier chain, fastest first.
	tiers := []settings.Tier{
		memcache.NewSettingsCache(cfg.SettingsCacheTTL),
		idb.NewPostgresSettingsStore(db),
	}
	settingsSvc := app.NewSettingsService(source, tiers, cfg.CatchUpWeekday,
		logger.Get().WithField("component", "settings"))
	mainLogger.Info("Settings service initialized")

	// Row repositories and the roster directory.
	contactRepo := workbook.NewContactSheets(wb)
	summaryRepo := workbook.NewSummarySheet(wb, cfg.SummarySheetName)
	directory := workbook.NewRosterDirectory(wb, cfg.RosterSheets)

	// Outbound mail.
	sender := mailer.NewGomailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.FromAddress)
	dispatcher := app.NewDispatcher(sender, logger.Get().WithField("component", "dispatcher"))

	runLog := idb.NewPostgresRunLog(db)

	contactSvc := app.NewContactReminderService(contactRepo, directory, dispatcher, settingsSvc, runLog,
		logger.Get().WithField("component", "contacts"))
	summarySvc := app.NewSummaryReminderService(summaryRepo, directory, dispatcher, runLog,
		logger.Get().WithField("component", "summaries"))
	mainLogger.Info("Reminder engines initialized")

	// Run-abort alerting is optional; without a token it is a no-op.
	var alerts alert.Notifier = alert.NopNotifier{}
	if cfg.TelegramToken != "" {
		tg, err := alert.NewTelegramNotifier(cfg.TelegramToken, cfg.AlertChatID,
			logger.Get().WithField("component", "alert"))
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not create Telegram alert notifier")
		}
		alerts = tg
		mainLogger.Info("Telegram abort alerting enabled")
	}

	scanScheduler := scheduler.NewScanScheduler(settingsSvc, contactSvc, summarySvc, alerts,
		logger.Get().WithField("component", "scheduler"), cfg.CronSpecRefresh, cfg.CronSpecScan)

	if *once {
		mainLogger.Info("Running single scan (-once)")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()
		scanScheduler.RunScan(ctx)
		return
	}

	scanScheduler.Start()
	mainLogger.Info("Application setup complete. Scheduler is running...")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	scanScheduler.Stop()
	mainLogger.Info("Application shut down gracefully.")
}
