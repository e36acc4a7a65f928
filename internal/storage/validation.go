package storage

import (
	"context"
	"fmt"

	"github.com/rappen-dev/rappen/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}

func validateString(s, name string) error {
	if s == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateTransaction(tx *model.Transaction) error {
	if tx == nil {
		return fmt.Errorf("transaction cannot be nil")
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("transaction date cannot be zero")
	}
	if tx.Type != model.TypeDebit && tx.Type != model.TypeCredit {
		return fmt.Errorf("invalid transaction type %q", tx.Type)
	}
	if tx.ImportBatchID == "" {
		return fmt.Errorf("transaction import batch id cannot be empty")
	}
	return nil
}
