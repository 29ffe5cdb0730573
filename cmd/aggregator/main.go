package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"go-codingbuddy-automation/internal/config"
	"go-codingbuddy-automation/internal/filter"
	"go-codingbuddy-automation/internal/pipeline"
	"go-codingbuddy-automation/internal/reporter"
	"go-codingbuddy-automation/internal/scraper/boards"
	"go-codingbuddy-automation/internal/scraper/telegram"
	"go-codingbuddy-automation/internal/sheets"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. %d searches, locations: %v", len(cfg.Searches), cfg.Locations)

	ctx := context.Background()

	//init sheet store
	store, err := sheets.NewClient(ctx, cfg.CredentialsFile, cfg.SpreadsheetID)
	if err != nil {
		log.Fatalf("❌ Failed to init sheet store: %v", err)
	}
	log.Println("📊 Sheet store initialized.")

	//optional telegram channel scanning
	var channel pipeline.ChannelSource
	if cfg.TelegramEnabled() {
		channel = telegram.NewClient(cfg.TelegramAPIID, cfg.TelegramAPIHash,
			cfg.TelegramSessionFile, cfg.TelegramChannels, cfg.TelegramMessageLimit)
		log.Println("💬 Telegram channel scanning enabled.")
	} else {
		log.Println("ℹ️ Telegram credentials not configured, board-only sourcing.")
	}

	orchestrator := pipeline.NewOrchestrator(
		boards.NewClient(cfg.BoardAPIURL),
		channel,
		filter.NewClassifier(filter.Default()),
		cfg,
	)
	controller := pipeline.NewController(orchestrator, pipeline.NewPruner(cfg.HoursOld), store, cfg.Searches)

	//optional run-summary reporter
	var rep *reporter.TelegramReporter
	if cfg.TelegramBotToken != "" {
		rep, err = reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram reporter: %v. Continuing without it.", err)
			rep = nil
		}
	}

	run := func() {
		results := controller.Run(ctx)
		if rep != nil {
			for _, res := range results {
				if res.Err != nil {
					if err := rep.SendError(res.Err); err != nil {
						log.Printf("⚠️ Failed to send error report: %v", err)
					}
				}
			}
			if err := rep.SendRunSummary(results); err != nil {
				log.Printf("⚠️ Failed to send run summary: %v", err)
			}
		}
		log.Println("🏁 Run finished.")
	}

	//one-shot mode
	if cfg.CronSpec == "" {
		run()
		return
	}

	//periodic mode: run immediately, then on schedule
	run()
	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSpec, run); err != nil {
		log.Fatalf("❌ Invalid cron spec %q: %v", cfg.CronSpec, err)
	}
	c.Start()
	log.Printf("⏰ Scheduler started — spec: %s", cfg.CronSpec)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	c.Stop()
	log.Println("⏰ Scheduler stopped")
}
