// Channel keyword scanner: walks recent channel/group history looking
// for search terms and turns matching messages into Listing Records.

package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go-codingbuddy-automation/internal/filter"
	"go-codingbuddy-automation/internal/scraper"
)

// descriptionBudget caps how much message text lands in a row.
const descriptionBudget = 300

// nonPublicLink marks hits in channels without a public handle; those
// messages have no addressable URL.
const nonPublicLink = "Private Group/Channel"

// Dialog is one channel or group visible to the session identity.
// AccessHash is zero for basic groups.
type Dialog struct {
	ID         int64
	AccessHash int64
	Title      string
	Username   string
}

// Message is one channel message with its date already resolved.
type Message struct {
	ID   int
	Text string
	Date time.Time
}

// History is the narrow slice of the channel service the scanner needs,
// kept small so tests can fake it.
type History interface {
	Dialogs(ctx context.Context) ([]Dialog, error)
	Messages(ctx context.Context, d Dialog, limit int) ([]Message, error)
}

type Scanner struct {
	history   History
	allowlist []string //channel titles or handles; empty = every visible channel
	limit     int      //messages fetched per channel, freshness over completeness
}

func NewScanner(history History, allowlist []string, limit int) *Scanner {
	if limit <= 0 {
		limit = 200
	}
	return &Scanner{history: history, allowlist: allowlist, limit: limit}
}

// Scan returns one Job per matching message. A transport-level failure
// yields an empty batch: the caller treats it as zero channel jobs, not
// as a fatal run error. A single channel failing is logged and skipped.
func (s *Scanner) Scan(ctx context.Context, terms []string) []scraper.Job {
	dialogs, err := s.history.Dialogs(ctx)
	if err != nil {
		log.Printf("⚠️ Telegram connection error: %v", err)
		return nil
	}

	var jobs []scraper.Job
	for _, d := range dialogs {
		if !s.allowed(d) {
			continue
		}
		msgs, err := s.history.Messages(ctx, d, s.limit)
		if err != nil {
			log.Printf("⚠️ Error scanning %s: %v", d.Title, err)
			continue
		}
		matched := 0
		for _, m := range msgs {
			if m.Text == "" {
				continue
			}
			//fold diacritics: channel posts frequently carry styled Unicode
			text := filter.Normalize(m.Text)
			for _, term := range terms {
				if term == "" || !strings.Contains(text, filter.Normalize(term)) {
					continue
				}
				jobs = append(jobs, buildJob(d, m, term))
				matched++
				break //first match wins, skip the remaining terms
			}
		}
		log.Printf("  -> Scanned %d messages in %s (%d matched)", len(msgs), d.Title, matched)
	}

	log.Printf("💬 Found %d Telegram jobs", len(jobs))
	return jobs
}

func (s *Scanner) allowed(d Dialog) bool {
	if len(s.allowlist) == 0 {
		return true
	}
	for _, name := range s.allowlist {
		if strings.EqualFold(name, d.Title) || (d.Username != "" && strings.EqualFold(name, d.Username)) {
			return true
		}
	}
	return false
}

// buildJob turns one matched message into a Listing Record. Public
// channels get a t.me permalink; private ones get the sentinel marker.
func buildJob(d Dialog, m Message, term string) scraper.Job {
	link := nonPublicLink
	if d.Username != "" {
		link = fmt.Sprintf("https://t.me/%s/%d", d.Username, m.ID)
	}
	return scraper.Job{
		URL:         link,
		Title:       "Telegram: " + d.Title,
		Company:     "Telegram",
		Location:    "See Post",
		DatePosted:  m.Date.Format("2006-01-02"),
		JobType:     term,
		Description: truncate(m.Text, descriptionBudget),
		Source:      "messaging-channel",
	}
}

func truncate(text string, budget int) string {
	r := []rune(text)
	if len(r) <= budget {
		return text
	}
	return string(r[:budget]) + "..."
}
