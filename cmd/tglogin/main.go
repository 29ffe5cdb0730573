// One-time interactive Telegram login.
// Produces the reusable session file the channel scanner reads.

package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gotd/td/session"
	tgclient "github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"

	"go-codingbuddy-automation/internal/config"
)

func main() {
	cfg := config.Load()
	if !cfg.TelegramEnabled() {
		log.Fatal("TELEGRAM_API_ID, TELEGRAM_API_HASH and TELEGRAM_SESSION_FILE are required for login")
	}

	fmt.Println("--- Telegram Login Setup ---")
	phone := prompt("Phone number (international format): ")
	password := prompt("2FA password (leave empty if none): ")

	client := tgclient.NewClient(cfg.TelegramAPIID, cfg.TelegramAPIHash, tgclient.Options{
		SessionStorage: &session.FileStorage{Path: cfg.TelegramSessionFile},
	})

	codePrompt := func(ctx context.Context, sentCode *tg.AuthSentCode) (string, error) {
		return prompt("Enter the code you received: "), nil
	}
	flow := auth.NewFlow(
		auth.Constant(phone, password, auth.CodeAuthenticatorFunc(codePrompt)),
		auth.SendCodeOptions{},
	)

	ctx := context.Background()
	if err := client.Run(ctx, func(ctx context.Context) error {
		if err := client.Auth().IfNecessary(ctx, flow); err != nil {
			return err
		}
		self, err := client.Self(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("\nSuccessfully logged in as %s %s!\n", self.FirstName, self.LastName)
		fmt.Printf("Session saved to %s. Keep this file safe!\n", cfg.TelegramSessionFile)
		return nil
	}); err != nil {
		log.Fatalf("❌ Login failed: %v", err)
	}
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	text, _ := reader.ReadString('\n')
	return strings.TrimSpace(text)
}
