// internal/infra/alert/telegram.go
package alert

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Notifier surfaces run-level aborts to a human. Row-level skips stay in
// the logs; only a dead run (unresolvable configuration, unreachable
// source table) produces an alert.
type Notifier interface {
	RunAborted(ctx context.Context, runKind string, cause error)
}

// TelegramNotifier sends abort alerts to a single admin chat. The bot is
// send-only; no poller runs and no inbound commands are handled.
type TelegramNotifier struct {
	bot    *telebot.Bot
	chatID int64
	logger *logrus.Entry
}

func NewTelegramNotifier(token string, chatID int64, logger *logrus.Entry) (*TelegramNotifier, error) {
	bot, err := telebot.NewBot(telebot.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("could not create alert bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) RunAborted(_ context.Context, runKind string, cause error) {
	text := fmt.Sprintf("Casework notifier: %s run aborted.\n%v", runKind, cause)
	if _, err := n.bot.Send(&telebot.User{ID: n.chatID}, text, &telebot.SendOptions{}); err != nil {
		n.logger.WithError(err).WithField("run_kind", runKind).Error("Failed to deliver abort alert")
	}
}

// NopNotifier is used when no alert channel is configured.
type NopNotifier struct{}

func (NopNotifier) RunAborted(context.Context, string, error) {}
