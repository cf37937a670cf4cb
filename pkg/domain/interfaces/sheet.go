package interfaces

//go:generate moq -out mocks/sheet_mock.go -pkg mocks . SheetClient

import (
	"context"

	"github.com/secmon-lab/workboard/pkg/domain/model"
)

// SheetClient reads and appends worksheet rows of the project workbook
type SheetClient interface {
	// ReadTable returns the whole worksheet; the first row is the header
	ReadTable(ctx context.Context, sheet string) (*model.Table, error)

	// AppendRow appends one row after the last non-empty row of the worksheet
	AppendRow(ctx context.Context, sheet string, row []string) error
}
