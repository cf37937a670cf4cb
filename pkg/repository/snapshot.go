package repository

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

// Sheets read on every dashboard refresh
var (
	RequiredSheets = []string{
		model.SheetWorkstreams,
		model.SheetRisks,
		model.SheetIssues,
		model.SheetTeam,
	}
	OptionalSheets = []string{
		model.SheetMilestones,
		model.SheetActivities,
	}
)

// ReadSnapshot reads the given sheets concurrently.
// A failure on a required sheet fails the whole snapshot with ErrTagSnapshotUnavailable.
// A failure on an optional sheet is logged and the sheet is treated as empty.
func ReadSnapshot(ctx context.Context, client interfaces.SheetClient, required, optional []string) (*model.Snapshot, error) {
	logger := ctxlog.From(ctx)

	var mu sync.Mutex
	tables := make(map[string]*model.Table, len(required)+len(optional))
	store := func(name string, t *model.Table) {
		mu.Lock()
		defer mu.Unlock()
		tables[name] = t
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, name := range required {
		eg.Go(func() error {
			t, err := client.ReadTable(egCtx, name)
			if err != nil {
				return goerr.Wrap(err, "failed to read required sheet",
					goerr.V("sheet", name),
					goerr.T(model.ErrTagSnapshotUnavailable))
			}
			store(name, t)
			return nil
		})
	}
	for _, name := range optional {
		eg.Go(func() error {
			t, err := client.ReadTable(egCtx, name)
			if err != nil {
				if goerr.HasTag(err, model.ErrTagSheetNotFound) {
					logger.Debug("Optional sheet not found", "sheet", name)
				} else {
					logger.Warn("Failed to read optional sheet", "sheet", name, "error", err)
				}
				t = model.NewTable(name, nil)
			}
			store(name, t)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	snapshot := &model.Snapshot{
		ID:          types.NewSnapshotID(),
		FetchedAt:   time.Now(),
		Workstreams: tables[model.SheetWorkstreams],
		Risks:       tables[model.SheetRisks],
		Issues:      tables[model.SheetIssues],
		Team:        tables[model.SheetTeam],
		Milestones:  tables[model.SheetMilestones],
		Activities:  tables[model.SheetActivities],
	}

	logger.Debug("Snapshot read",
		"snapshotID", snapshot.ID,
		"sheets", len(tables),
	)

	return snapshot, nil
}
