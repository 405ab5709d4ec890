package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsConfig holds the configuration for the Google Sheets exporter.
type SheetsConfig struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	TimeZone           string
	RetryAttempts      int
	RetryDelay         time.Duration
}

// DefaultSheetsConfig returns a SheetsConfig with sensible defaults.
func DefaultSheetsConfig() SheetsConfig {
	return SheetsConfig{
		SpreadsheetName: "Parceiro - Relatórios",
		TimeZone:        "America/Sao_Paulo",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *SheetsConfig) Validate() error {
	hasOAuth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return fmt.Errorf("%w: no Google Sheets authentication method configured", common.ErrMissingConfig)
	}

	if hasOAuth && hasServiceAccount {
		return fmt.Errorf("%w: multiple authentication methods configured; use either OAuth2 or service account", common.ErrInvalidConfig)
	}

	if c.RetryAttempts < 0 {
		return fmt.Errorf("%w: retry attempts cannot be negative", common.ErrInvalidConfig)
	}

	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: retry delay cannot be negative", common.ErrInvalidConfig)
	}

	return nil
}

// SheetsExporter writes each report to its own tab of a spreadsheet.
type SheetsExporter struct {
	service *sheets.Service
	logger  *slog.Logger
	config  SheetsConfig
}

// NewSheetsExporter creates a Google Sheets exporter.
func NewSheetsExporter(ctx context.Context, config SheetsConfig, logger *slog.Logger) (*SheetsExporter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SheetsExporter{
		config:  config,
		service: srv,
		logger:  logger,
	}, nil
}

// Export implements Exporter.
func (e *SheetsExporter) Export(ctx context.Context, r Report) (Result, error) {
	retryOpts := service.RetryOptions{
		MaxAttempts:  e.config.RetryAttempts,
		InitialDelay: e.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	var spreadsheet *sheets.Spreadsheet
	err := common.WithRetry(ctx, "get spreadsheet", retryOpts, func() error {
		var getErr error
		spreadsheet, getErr = e.getOrCreateSpreadsheet(ctx)
		return classifyAPIError(getErr)
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to get spreadsheet: %w", common.ErrExportFailed, err)
	}

	tab := sheetName(fmt.Sprintf("%s %s", r.Kind, r.GeneratedAt.Format("2006-01-02 15.04")))
	err = common.WithRetry(ctx, "add sheet", retryOpts, func() error {
		return classifyAPIError(e.addSheet(ctx, spreadsheet.SpreadsheetId, tab))
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to add sheet: %w", common.ErrExportFailed, err)
	}

	values := r.Values()
	err = common.WithRetry(ctx, "write values", retryOpts, func() error {
		return classifyAPIError(e.writeData(ctx, spreadsheet.SpreadsheetId, tab, values))
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to write data: %w", common.ErrExportFailed, err)
	}

	e.logger.Info("report exported",
		"kind", r.Kind,
		"spreadsheet_id", spreadsheet.SpreadsheetId,
		"sheet", tab,
		"rows", len(r.Table.Rows))

	return Result{
		ID:       spreadsheet.SpreadsheetId + "/" + tab,
		Location: spreadsheet.SpreadsheetUrl,
		Rows:     len(r.Table.Rows),
	}, nil
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config SheetsConfig) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		client := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = client.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

func (e *SheetsExporter) getOrCreateSpreadsheet(ctx context.Context) (*sheets.Spreadsheet, error) {
	if e.config.SpreadsheetID != "" {
		existing, err := e.service.Spreadsheets.Get(e.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("unable to access spreadsheet %s: %w", e.config.SpreadsheetID, err)
		}
		return existing, nil
	}

	created, err := e.service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    e.config.SpreadsheetName,
			TimeZone: e.config.TimeZone,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	e.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)

	// later exports in this process append to the same spreadsheet
	e.config.SpreadsheetID = created.SpreadsheetId
	return created, nil
}

func (e *SheetsExporter) addSheet(ctx context.Context, spreadsheetID, title string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: title}}},
		},
	}
	_, err := e.service.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest {
		// the tab already exists from an earlier attempt
		e.logger.Debug("sheet already exists", "sheet", title)
		return nil
	}
	return err
}

func (e *SheetsExporter) writeData(ctx context.Context, spreadsheetID, tab string, values [][]any) error {
	_, err := e.service.Spreadsheets.Values.Update(spreadsheetID, fmt.Sprintf("'%s'!A1", tab), &sheets.ValueRange{
		Values: values,
	}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

// classifyAPIError marks rate limits and server errors as retryable.
func classifyAPIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", common.ErrRateLimit, err)
		case apiErr.Code >= http.StatusInternalServerError:
			return &common.RetryableError{Err: err, Retryable: true}
		}
	}
	return err
}
