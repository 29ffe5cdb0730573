package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/gotd/td/session"
	tgclient "github.com/gotd/td/telegram"
	"github.com/gotd/td/tg"

	"go-codingbuddy-automation/internal/scraper"
)

// Client owns the MTProto session and runs scans inside a single
// connection. The session file comes from the one-time cmd/tglogin
// authorization.
type Client struct {
	apiID       int
	apiHash     string
	sessionFile string
	allowlist   []string
	limit       int
}

func NewClient(apiID int, apiHash, sessionFile string, allowlist []string, limit int) *Client {
	return &Client{
		apiID:       apiID,
		apiHash:     apiHash,
		sessionFile: sessionFile,
		allowlist:   allowlist,
		limit:       limit,
	}
}

// Collect connects, verifies the saved session is still authorized, and
// scans live channel history for the given terms. Connection and auth
// problems are returned so the caller can degrade to board-only
// sourcing.
func (c *Client) Collect(ctx context.Context, terms []string) ([]scraper.Job, error) {
	client := tgclient.NewClient(c.apiID, c.apiHash, tgclient.Options{
		SessionStorage: &session.FileStorage{Path: c.sessionFile},
	})

	var jobs []scraper.Job
	err := client.Run(ctx, func(ctx context.Context) error {
		status, err := client.Auth().Status(ctx)
		if err != nil {
			return fmt.Errorf("auth status: %w", err)
		}
		if !status.Authorized {
			return fmt.Errorf("session not authorized, run cmd/tglogin first")
		}

		scanner := NewScanner(&apiHistory{api: client.API()}, c.allowlist, c.limit)
		jobs = scanner.Scan(ctx, terms)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// apiHistory adapts raw MTProto calls to the History interface.
type apiHistory struct {
	api *tg.Client
}

const (
	dialogPageSize = 100
	//hard ceiling so a cursor that stops advancing can never loop forever
	maxDialogPages = 25
)

func (h *apiHistory) Dialogs(ctx context.Context) ([]Dialog, error) {
	req := &tg.MessagesGetDialogsRequest{
		Limit:      dialogPageSize,
		OffsetPeer: &tg.InputPeerEmpty{},
	}

	var out []Dialog
	seen := make(map[int64]bool)
	for page := 0; page < maxDialogPages; page++ {
		res, err := h.api.MessagesGetDialogs(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("get dialogs: %w", err)
		}

		var (
			dialogSlice []tg.DialogClass
			messages    []tg.MessageClass
			chats       []tg.ChatClass
			users       []tg.UserClass
			more        bool
		)
		switch d := res.(type) {
		case *tg.MessagesDialogs:
			dialogSlice, messages, chats, users = d.Dialogs, d.Messages, d.Chats, d.Users
		case *tg.MessagesDialogsSlice:
			dialogSlice, messages, chats, users = d.Dialogs, d.Messages, d.Chats, d.Users
			more = len(dialogSlice) >= dialogPageSize
		default:
			return nil, fmt.Errorf("unexpected dialogs response %T", res)
		}

		for _, chat := range chats {
			switch c := chat.(type) {
			case *tg.Channel:
				if seen[c.ID] {
					continue
				}
				seen[c.ID] = true
				out = append(out, Dialog{
					ID:         c.ID,
					AccessHash: c.AccessHash,
					Title:      c.Title,
					Username:   c.Username,
				})
			case *tg.Chat:
				//basic group: no access hash, never a public handle
				if seen[c.ID] {
					continue
				}
				seen[c.ID] = true
				out = append(out, Dialog{ID: c.ID, Title: c.Title})
			}
		}

		if !more {
			break
		}
		peer, offsetID, offsetDate, ok := nextDialogsOffset(dialogSlice, messages, chats, users)
		if !ok {
			break
		}
		req.OffsetPeer, req.OffsetID, req.OffsetDate = peer, offsetID, offsetDate
	}
	return out, nil
}

// nextDialogsOffset derives the pagination cursor for the next
// messages.getDialogs page from the last dialog of the current one: its
// peer, its top message id, and that message's date.
func nextDialogsOffset(dialogSlice []tg.DialogClass, messages []tg.MessageClass, chats []tg.ChatClass, users []tg.UserClass) (tg.InputPeerClass, int, int, bool) {
	if len(dialogSlice) == 0 {
		return nil, 0, 0, false
	}
	last, ok := dialogSlice[len(dialogSlice)-1].(*tg.Dialog)
	if !ok {
		return nil, 0, 0, false
	}

	offsetDate := 0
	for _, mc := range messages {
		if m, ok := mc.(*tg.Message); ok && m.ID == last.TopMessage {
			offsetDate = m.Date
			break
		}
	}
	return inputPeer(last.Peer, chats, users), last.TopMessage, offsetDate, true
}

// inputPeer resolves a bare peer reference against the chats/users the
// same response carried, picking up the access hash where one is needed.
func inputPeer(peer tg.PeerClass, chats []tg.ChatClass, users []tg.UserClass) tg.InputPeerClass {
	switch p := peer.(type) {
	case *tg.PeerChannel:
		for _, c := range chats {
			if ch, ok := c.(*tg.Channel); ok && ch.ID == p.ChannelID {
				return &tg.InputPeerChannel{ChannelID: ch.ID, AccessHash: ch.AccessHash}
			}
		}
	case *tg.PeerChat:
		return &tg.InputPeerChat{ChatID: p.ChatID}
	case *tg.PeerUser:
		for _, u := range users {
			if usr, ok := u.(*tg.User); ok && usr.ID == p.UserID {
				return &tg.InputPeerUser{UserID: usr.ID, AccessHash: usr.AccessHash}
			}
		}
	}
	return &tg.InputPeerEmpty{}
}

func (h *apiHistory) Messages(ctx context.Context, d Dialog, limit int) ([]Message, error) {
	var peer tg.InputPeerClass
	if d.AccessHash != 0 {
		peer = &tg.InputPeerChannel{ChannelID: d.ID, AccessHash: d.AccessHash}
	} else {
		peer = &tg.InputPeerChat{ChatID: d.ID}
	}

	res, err := h.api.MessagesGetHistory(ctx, &tg.MessagesGetHistoryRequest{
		Peer:  peer,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	var raw []tg.MessageClass
	switch m := res.(type) {
	case *tg.MessagesChannelMessages:
		raw = m.Messages
	case *tg.MessagesMessages:
		raw = m.Messages
	case *tg.MessagesMessagesSlice:
		raw = m.Messages
	default:
		return nil, fmt.Errorf("unexpected history response %T", res)
	}

	msgs := make([]Message, 0, len(raw))
	for _, mc := range raw {
		msg, ok := mc.(*tg.Message)
		if !ok {
			continue //service messages carry no text
		}
		msgs = append(msgs, Message{
			ID:   msg.ID,
			Text: msg.Message,
			Date: time.Unix(int64(msg.Date), 0).UTC(),
		})
	}
	return msgs, nil
}
