package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/domain/model"
)

// Memory implements interfaces.SheetClient with an in-memory workbook
type Memory struct {
	mu     sync.RWMutex
	sheets map[string][][]string
}

var _ interfaces.SheetClient = (*Memory)(nil)

// NewMemory creates an in-memory workbook from sheet name -> grid (header first)
func NewMemory(sheets map[string][][]string) *Memory {
	m := &Memory{sheets: make(map[string][][]string)}
	for name, grid := range sheets {
		m.sheets[name] = copyGrid(grid)
	}
	return m
}

// SetSheet replaces a worksheet
func (m *Memory) SetSheet(name string, grid [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheets[name] = copyGrid(grid)
}

// ReadTable returns a copy of the worksheet
func (m *Memory) ReadTable(ctx context.Context, sheet string) (*model.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	grid, ok := m.sheets[sheet]
	if !ok {
		return nil, goerr.New("sheet not found",
			goerr.V("sheet", sheet),
			goerr.T(model.ErrTagSheetNotFound))
	}

	return model.NewTable(sheet, copyGrid(grid)), nil
}

// AppendRow appends a row to an existing worksheet. Like a user-entered write to Sheets,
// a leading apostrophe only marks the cell as text and is dropped.
func (m *Memory) AppendRow(ctx context.Context, sheet string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.sheets[sheet]
	if !ok {
		return goerr.New("sheet not found",
			goerr.V("sheet", sheet),
			goerr.T(model.ErrTagSheetNotFound))
	}

	stored := make([]string, len(row))
	for i, cell := range row {
		stored[i] = strings.TrimPrefix(cell, "'")
	}
	m.sheets[sheet] = append(grid, stored)
	return nil
}

func copyGrid(grid [][]string) [][]string {
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = append([]string(nil), row...)
	}
	return out
}
