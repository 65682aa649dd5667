// Package sheets provides a read-only Google Sheets connector for the
// specification and ledger spreadsheets, satisfying monitor.SpecSource
// and monitor.LedgerSource.
package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
	"github.com/kadunafoods/stockwatch-go/internal/reconcile"
)

// Client fetches value ranges from the two configured spreadsheets.
type Client struct {
	svc *gsheets.Service

	specSheetID   string
	ledgerSheetID string

	stockRange  string
	partsRange  string
	ledgerRange string
}

// Options configures a Client.
type Options struct {
	// CredentialsFile is a service-account JSON key file.
	CredentialsFile string

	SpecSheetID   string
	LedgerSheetID string

	StockRange  string
	PartsRange  string
	LedgerRange string
}

// New creates a Sheets client authenticated with the service-account key
// in opts.CredentialsFile, requesting read-only scope.
func New(ctx context.Context, opts Options) (*Client, error) {
	key, err := os.ReadFile(opts.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("sheets: read credentials %s: %w", opts.CredentialsFile, err)
	}
	creds, err := google.CredentialsFromJSON(ctx, key, gsheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("sheets: parse credentials: %w", err)
	}
	svc, err := gsheets.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}
	return &Client{
		svc:           svc,
		specSheetID:   opts.SpecSheetID,
		ledgerSheetID: opts.LedgerSheetID,
		stockRange:    opts.StockRange,
		partsRange:    opts.PartsRange,
		ledgerRange:   opts.LedgerRange,
	}, nil
}

// NewWithService creates a Client around an existing Sheets service
// (for testing).
func NewWithService(svc *gsheets.Service, opts Options) *Client {
	return &Client{
		svc:           svc,
		specSheetID:   opts.SpecSheetID,
		ledgerSheetID: opts.LedgerSheetID,
		stockRange:    opts.StockRange,
		partsRange:    opts.PartsRange,
		ledgerRange:   opts.LedgerRange,
	}
}

// values fetches a range and converts every cell to its string form.
func (c *Client) values(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: get %s: %w", readRange, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// snapshot fetches a specification-sheet range and validates that it
// contains at least a header row and one value row.
func (c *Client) snapshot(ctx context.Context, readRange string) (domain.Sheet, error) {
	rows, err := c.values(ctx, c.specSheetID, readRange)
	if err != nil {
		return domain.Sheet{}, err
	}
	sheet := domain.Sheet{Rows: rows}
	if !sheet.Valid() {
		return domain.Sheet{}, fmt.Errorf("sheets: %s returned %d rows, need at least 2",
			rangeName(readRange), len(rows))
	}
	return sheet, nil
}

// StockSnapshot fetches the current stock balance snapshot.
func (c *Client) StockSnapshot(ctx context.Context) (domain.Sheet, error) {
	return c.snapshot(ctx, c.stockRange)
}

// PartsSnapshot fetches the current parts balance snapshot.
func (c *Client) PartsSnapshot(ctx context.Context) (domain.Sheet, error) {
	return c.snapshot(ctx, c.partsRange)
}

// Ledger fetches the reconciliation ledger table. No minimum-row check
// here: a sparse ledger degrades downstream instead of failing the run.
func (c *Client) Ledger(ctx context.Context) (reconcile.Ledger, error) {
	rows, err := c.values(ctx, c.ledgerSheetID, c.ledgerRange)
	if err != nil {
		return reconcile.Ledger{}, err
	}
	return reconcile.Ledger{Rows: rows}, nil
}

// rangeName strips the A1 notation, keeping just the sheet name for
// error messages.
func rangeName(readRange string) string {
	if i := strings.IndexByte(readRange, '!'); i > 0 {
		return readRange[:i]
	}
	return readRange
}
