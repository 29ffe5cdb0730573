package sheets

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Client talks to one Google spreadsheet through a service account.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

func NewClient(ctx context.Context, credentialsFile, spreadsheetID string) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Partition returns the worksheet with the given title, creating it
// when the spreadsheet does not have one yet.
func (c *Client) Partition(ctx context.Context, name string) (Partition, error) {
	doc, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	for _, sh := range doc.Sheets {
		if sh.Properties != nil && sh.Properties.Title == name {
			return &worksheet{client: c, title: name}, nil
		}
	}

	log.Printf("📄 Worksheet %q not found. Creating it...", name)
	_, err = c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: name},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("create worksheet %q: %w", name, err)
	}
	return &worksheet{client: c, title: name}, nil
}

// worksheet implements Partition on one tab of the spreadsheet.
type worksheet struct {
	client *Client
	title  string
}

func (w *worksheet) Values(ctx context.Context) ([][]string, error) {
	resp, err := w.client.svc.Spreadsheets.Values.Get(w.client.spreadsheetID, w.title).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", w.title, err)
	}

	values := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		values = append(values, cells)
	}
	return values, nil
}

func (w *worksheet) Append(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := w.client.svc.Spreadsheets.Values.Append(w.client.spreadsheetID, w.title, toValueRange(rows)).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to %q: %w", w.title, err)
	}
	return nil
}

func (w *worksheet) Overwrite(ctx context.Context, values [][]string) error {
	_, err := w.client.svc.Spreadsheets.Values.Clear(w.client.spreadsheetID, w.title, &gsheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear %q: %w", w.title, err)
	}
	if len(values) == 0 {
		return nil
	}
	_, err = w.client.svc.Spreadsheets.Values.Update(w.client.spreadsheetID, w.title, toValueRange(values)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("rewrite %q: %w", w.title, err)
	}
	return nil
}

func toValueRange(rows [][]string) *gsheets.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &gsheets.ValueRange{Values: values}
}
