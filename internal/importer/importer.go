// Package importer drives the statement ingestion pipeline: parse, dedup,
// persist.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rappen-dev/rappen/internal/common"
	"github.com/rappen-dev/rappen/internal/model"
	"github.com/rappen-dev/rappen/internal/service"
	"github.com/rappen-dev/rappen/internal/zkb"
)

// Importer imports whole statement files as batches.
type Importer struct {
	parser *zkb.Parser
	store  service.Store
	now    func() time.Time
}

// New creates an importer over the given parser and store.
func New(parser *zkb.Parser, store service.Store) *Importer {
	return &Importer{
		parser: parser,
		store:  store,
		now:    time.Now,
	}
}

// Import parses one statement file and persists its transactions under a
// fresh batch id. Rows whose external reference is already stored are
// counted as skipped; rows without a reference always import. There is no
// rollback: rows persisted before a storage failure stay persisted, and the
// error is returned with the partial counts.
func (i *Importer) Import(ctx context.Context, data []byte) (model.ImportResult, error) {
	transactions, err := i.parser.Parse(data)
	if err != nil {
		return model.ImportResult{}, fmt.Errorf("failed to parse statement: %w", err)
	}
	if len(transactions) == 0 {
		return model.ImportResult{}, common.ErrEmptyImport
	}

	result := model.ImportResult{BatchID: newBatchID(i.now())}
	importedAt := i.now().UTC()

	for idx := range transactions {
		tx := transactions[idx]

		if tx.ExternalReference != "" {
			_, err := i.store.FindByExternalReference(ctx, tx.ExternalReference)
			switch {
			case err == nil:
				result.Skipped++
				continue
			case !errors.Is(err, common.ErrNotFound):
				return result, fmt.Errorf("failed to check for duplicate: %w", err)
			}
		}

		tx.ImportBatchID = result.BatchID
		tx.ImportedAt = importedAt

		if _, err := i.store.InsertTransaction(ctx, &tx); err != nil {
			// The unique constraint backs up the check above; a violation
			// means another import won the race for this reference.
			if errors.Is(err, common.ErrDuplicateEntry) {
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("failed to persist transaction: %w", err)
		}
		result.Imported++
	}

	slog.Info("Imported statement batch",
		"batch_id", result.BatchID,
		"imported", result.Imported,
		"skipped", result.Skipped)

	return result, nil
}

// newBatchID builds ids like batch_1710500000000_1b9d6bcd.
func newBatchID(now time.Time) string {
	return fmt.Sprintf("batch_%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}
