package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	countersCollection = "counters"
	issueCounterDocID  = "issue"
	fieldCurrentNumber = "current_number"
)

// FirestoreCounter implements interfaces.IssueCounter with a Firestore counter document,
// so replicas share one sequence
type FirestoreCounter struct {
	client *firestore.Client
}

var _ interfaces.IssueCounter = (*FirestoreCounter)(nil)

// NewFirestoreCounter creates a Firestore backed issue counter
func NewFirestoreCounter(ctx context.Context, projectID, databaseID string) (*FirestoreCounter, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad project or permissions; a missing document is fine
	_, err = client.Collection(countersCollection).Doc(issueCounterDocID).Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore issue counter initialized",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &FirestoreCounter{client: client}, nil
}

// NextIssueNumber atomically stores and returns max(current, floor)+1
func (f *FirestoreCounter) NextIssueNumber(ctx context.Context, floor int) (int, error) {
	counterDoc := f.client.Collection(countersCollection).Doc(issueCounterDocID)

	var next int
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(counterDoc)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				next = floor + 1
				return tx.Set(counterDoc, map[string]any{
					fieldCurrentNumber: next,
				})
			}
			return goerr.Wrap(err, "failed to get counter document")
		}

		currentNumber, err := doc.DataAt(fieldCurrentNumber)
		if err != nil {
			return goerr.Wrap(err, "failed to get current_number field")
		}

		var current int
		switch v := currentNumber.(type) {
		case int64:
			current = int(v)
		case int:
			current = v
		default:
			return goerr.New("unexpected type for current_number")
		}

		next = max(current, floor) + 1
		return tx.Update(counterDoc, []firestore.Update{
			{Path: fieldCurrentNumber, Value: next},
		})
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get next issue number", goerr.V("floor", floor))
	}

	return next, nil
}

// Close closes the Firestore client
func (f *FirestoreCounter) Close() error {
	return f.client.Close()
}
