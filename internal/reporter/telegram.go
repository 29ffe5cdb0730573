package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-codingbuddy-automation/internal/config"
	"go-codingbuddy-automation/internal/pipeline"
)

// TelegramReporter posts run summaries to an operator chat. It is
// optional: runs proceed identically without it.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendRunSummary posts per-partition counts after a run.
func (t *TelegramReporter) SendRunSummary(results []pipeline.PartitionResult) error {
	text := "📋 <b>Job aggregation run finished</b>\n"
	for _, r := range results {
		if r.Err != nil {
			text += fmt.Sprintf("⚠️ %s: failed (%v)\n", r.Sheet, r.Err)
			continue
		}
		text += fmt.Sprintf("• %s: %d added, %d removed\n", r.Sheet, r.Added, r.Removed)
	}
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Aggregator Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
