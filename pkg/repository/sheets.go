package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheets implements interfaces.SheetClient with the Google Sheets API
type Sheets struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
}

var _ interfaces.SheetClient = (*Sheets)(nil)

// NewSheets creates a Sheets client for one spreadsheet.
// An empty credentialsFile falls back to application default credentials.
func NewSheets(ctx context.Context, spreadsheetID, credentialsFile string) (*Sheets, error) {
	if spreadsheetID == "" {
		return nil, goerr.New("spreadsheet ID is required")
	}

	opts := []option.ClientOption{
		option.WithScopes(sheets.SpreadsheetsScope),
	}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sheets service",
			goerr.V("credentials", credentialsFile))
	}

	ctxlog.From(ctx).Info("Sheets client initialized",
		"spreadsheetID", spreadsheetID,
	)

	return &Sheets{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
	}, nil
}

// ReadTable reads a whole worksheet
func (s *Sheets) ReadTable(ctx context.Context, sheet string) (*model.Table, error) {
	resp, err := s.values.Get(s.spreadsheetID, sheetRange(sheet)).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapSheetsError(err, "failed to read sheet", sheet)
	}

	grid := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		grid[i] = make([]string, len(row))
		for j, cell := range row {
			grid[i][j] = cellString(cell)
		}
	}

	return model.NewTable(sheet, grid), nil
}

// AppendRow appends a row as if typed by a user, so dates and numbers are interpreted
func (s *Sheets) AppendRow(ctx context.Context, sheet string, row []string) error {
	cells := make([]any, len(row))
	for i, v := range row {
		cells[i] = v
	}

	_, err := s.values.Append(s.spreadsheetID, sheetRange(sheet), &sheets.ValueRange{
		Values: [][]any{cells},
	}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return wrapSheetsError(err, "failed to append row", sheet)
	}
	return nil
}

// sheetRange quotes a worksheet name as an A1 range covering the whole sheet
func sheetRange(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(v)
	}
}

func wrapSheetsError(err error, msg, sheet string) error {
	opts := []goerr.Option{goerr.V("sheet", sheet)}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		opts = append(opts, goerr.V("code", apiErr.Code))
		if apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "Unable to parse range") {
			opts = append(opts, goerr.T(model.ErrTagSheetNotFound))
		}
	}

	return goerr.Wrap(err, msg, opts...)
}
