// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SearchConfig maps one search term to the worksheet it feeds. Many
// terms may feed the same worksheet.
type SearchConfig struct {
	Term  string `yaml:"term"`
	Sheet string `yaml:"sheet"`
}

type Config struct {
	//Sheet store
	SpreadsheetID   string `yaml:"spreadsheet_id" env:"SPREADSHEET_ID"`
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_CREDENTIALS_FILE"`
	//Search criteria
	Searches      []SearchConfig `yaml:"searches"`
	Locations     []string       `yaml:"locations"`
	SiteGroups    [][]string     `yaml:"site_groups"`
	ResultsWanted int            `yaml:"results_wanted"`
	HoursOld      int            `yaml:"hours_old"`
	Country       string         `yaml:"country"`
	BoardAPIURL   string         `yaml:"board_api_url" env:"BOARD_API_URL"`
	//Telegram channel scanning (optional; absence disables the scanner)
	TelegramAPIID        int      `yaml:"telegram_api_id" env:"TELEGRAM_API_ID"`
	TelegramAPIHash      string   `yaml:"telegram_api_hash" env:"TELEGRAM_API_HASH"`
	TelegramSessionFile  string   `yaml:"telegram_session_file" env:"TELEGRAM_SESSION_FILE"`
	TelegramChannels     []string `yaml:"telegram_channels"`
	TelegramMessageLimit int      `yaml:"telegram_message_limit"`
	//Optional run-summary bot
	TelegramBotToken string `yaml:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Scheduling; empty = run once and exit
	CronSpec string `yaml:"cron_spec"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if id := os.Getenv("SPREADSHEET_ID"); id != "" {
		cfg.SpreadsheetID = id
	}
	if creds := os.Getenv("GOOGLE_CREDENTIALS_FILE"); creds != "" {
		cfg.CredentialsFile = creds
	}
	if url := os.Getenv("BOARD_API_URL"); url != "" {
		cfg.BoardAPIURL = url
	}
	if apiID := os.Getenv("TELEGRAM_API_ID"); apiID != "" {
		id, err := strconv.Atoi(apiID)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_API_ID: %v", err)
		}
		cfg.TelegramAPIID = id
	}
	if hash := os.Getenv("TELEGRAM_API_HASH"); hash != "" {
		cfg.TelegramAPIHash = hash
	}
	if sess := os.Getenv("TELEGRAM_SESSION_FILE"); sess != "" {
		cfg.TelegramSessionFile = sess
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramBotToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = "google_credentials.json"
	}
	if cfg.BoardAPIURL == "" {
		cfg.BoardAPIURL = "http://localhost:8000"
	}
	if len(cfg.Locations) == 0 {
		cfg.Locations = []string{"Hyderabad", "Chennai", "Bangalore"}
	}
	if len(cfg.SiteGroups) == 0 {
		cfg.SiteGroups = [][]string{{"indeed", "linkedin"}, {"glassdoor"}, {"naukri"}}
	}
	if cfg.ResultsWanted == 0 {
		cfg.ResultsWanted = 20
	}
	if cfg.HoursOld == 0 {
		cfg.HoursOld = 72
	}
	if cfg.Country == "" {
		cfg.Country = "India"
	}
	if cfg.TelegramMessageLimit == 0 {
		cfg.TelegramMessageLimit = 200
	}

	//Validate required fields
	if cfg.SpreadsheetID == "" {
		log.Fatal("SPREADSHEET_ID is required")
	}
	if len(cfg.Searches) == 0 {
		log.Fatal("At least one search config is required")
	}
	for _, sc := range cfg.Searches {
		if sc.Term == "" || sc.Sheet == "" {
			log.Fatalf("Invalid search config %+v: term and sheet are both required", sc)
		}
	}

	return cfg
}

// TelegramEnabled reports whether channel scanning credentials are
// fully configured. Missing credentials degrade the run to board-only
// sourcing instead of failing it.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramAPIID != 0 && c.TelegramAPIHash != "" && c.TelegramSessionFile != ""
}
