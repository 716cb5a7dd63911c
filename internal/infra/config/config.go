package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds process-level bootstrap configuration: everything the
// binary needs before the configuration store itself is reachable.
// Domain configuration (names, emails, tracker URL, timezone, completed
// periods) lives in the store, not here.
type AppConfig struct {
	DatabaseURL  string
	WorkbookPath string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromAddress  string

	// Optional: when TelegramToken is empty, run-abort alerting is off.
	TelegramToken string
	AlertChatID   int64

	LogLevel    string
	Environment string

	CronSpecRefresh string
	CronSpecScan    string

	CatchUpWeekday   time.Weekday // weekly day stale prior-period reminders fire on
	SettingsCacheTTL time.Duration
	RosterSheets     []string
	SummarySheetName string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.WorkbookPath = os.Getenv("TRACKER_WORKBOOK_PATH")
	if cfg.WorkbookPath == "" {
		return nil, fmt.Errorf("TRACKER_WORKBOOK_PATH is not set")
	}

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_HOST is not set")
	}

	portStr := os.Getenv("SMTP_PORT")
	if portStr == "" {
		portStr = "587"
	}
	cfg.SMTPPort, err = strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")

	cfg.FromAddress = os.Getenv("MAIL_FROM_ADDRESS")
	if cfg.FromAddress == "" {
		return nil, fmt.Errorf("MAIL_FROM_ADDRESS is not set")
	}

	cfg.TelegramToken = os.Getenv("ALERT_TELEGRAM_TOKEN")
	if chatIDStr := os.Getenv("ALERT_TELEGRAM_CHAT_ID"); chatIDStr != "" {
		cfg.AlertChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ALERT_TELEGRAM_CHAT_ID: %w", err)
		}
	}
	if cfg.TelegramToken != "" && cfg.AlertChatID == 0 {
		return nil, fmt.Errorf("ALERT_TELEGRAM_CHAT_ID is required when ALERT_TELEGRAM_TOKEN is set")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecRefresh = os.Getenv("CRON_SPEC_SETTINGS_REFRESH")
	if cfg.CronSpecRefresh == "" {
		cfg.CronSpecRefresh = "0 */4 * * *" // Default: every four hours
	}
	cfg.CronSpecScan = os.Getenv("CRON_SPEC_DAILY_SCAN")
	if cfg.CronSpecScan == "" {
		cfg.CronSpecScan = "0 7 * * *" // Default: 7:00 AM daily
	}

	cfg.CatchUpWeekday, err = parseWeekday(os.Getenv("CATCH_UP_WEEKDAY"))
	if err != nil {
		return nil, err
	}

	ttlStr := os.Getenv("SETTINGS_CACHE_TTL")
	if ttlStr == "" {
		ttlStr = "5h"
	}
	cfg.SettingsCacheTTL, err = time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SETTINGS_CACHE_TTL: %w", err)
	}

	cfg.RosterSheets = splitList(os.Getenv("ROSTER_SHEETS"))
	if len(cfg.RosterSheets) == 0 {
		cfg.RosterSheets = []string{"Caseworkers", "Support Staff"}
	}

	cfg.SummarySheetName = os.Getenv("SUMMARY_SHEET_NAME")
	if cfg.SummarySheetName == "" {
		cfg.SummarySheetName = "Summaries Due"
	}

	return cfg, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	if s == "" {
		return time.Monday, nil // Default catch-up day
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid CATCH_UP_WEEKDAY: %q", s)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
