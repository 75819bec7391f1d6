// Package google reads the incident dataset from a Google Sheets tab.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"wolfstats/internal/core"
	"wolfstats/internal/dataset"
	applog "wolfstats/internal/log"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// DefaultSheetName is the tab read when none is configured.
const DefaultSheetName = "global_wolves"

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
	logger        *applog.Logger
}

var _ dataset.IncidentReader = (*Client)(nil)

// Config selects the spreadsheet and the service account used to read it.
// CredentialsJSON wins over CredentialsFile; with neither set the standard
// GOOGLE_APPLICATION_CREDENTIALS file is used.
type Config struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsJSON string
	CredentialsFile string
}

// New wraps an existing service. Tests use it with a service pointed at a
// mock transport.
func New(svc *gsheet.Service, spreadsheetID, sheetName string, logger *applog.Logger) *Client {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	if logger == nil {
		logger = applog.Discard()
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger.WithComponent(applog.ComponentSheets),
	}
}

// NewFromConfig creates a read-only Sheets client from service account credentials.
func NewFromConfig(ctx context.Context, cfg Config, logger *applog.Logger) (*Client, error) {
	id := strings.TrimSpace(cfg.SpreadsheetID)
	if id == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	creds, err := credentials(cfg)
	if err != nil {
		return nil, err
	}
	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(creds),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return New(svc, id, strings.TrimSpace(cfg.SheetName), logger), nil
}

func credentials(cfg Config) ([]byte, error) {
	if j := strings.TrimSpace(cfg.CredentialsJSON); j != "" {
		return []byte(j), nil
	}
	file := strings.TrimSpace(cfg.CredentialsFile)
	if file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if file == "" {
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	return b, nil
}

// ReadIncidents reads the whole sheet; the first row is the header.
func (c *Client) ReadIncidents(ctx context.Context) ([]core.IncidentRecord, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: sheets get %s!%s: %v",
			dataset.ErrSourceUnavailable, c.spreadsheetID, c.sheetName, err)
	}
	records, err := parseIncidentRows(resp.Values)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", c.sheetName, err)
	}
	c.logger.InfoContext(ctx, "Read incidents from sheet",
		"sheet", c.sheetName,
		applog.FieldRecords, len(records))
	return records, nil
}
