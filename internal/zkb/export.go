package zkb

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rappen-dev/rappen/internal/model"
	"github.com/rappen-dev/rappen/internal/swiss"
)

// exportHeader is the input schema plus a trailing Category column. The
// import path resolves columns by name, so exports re-import cleanly with
// the Category column ignored.
var exportHeader = []string{
	colDate,
	colBookingText,
	colCurrency,
	colAmountDetails,
	colZKBReference,
	colReferenceNumber,
	colDebit,
	colCredit,
	colValueDate,
	colBalance,
	colPaymentPurpose,
	colDetails,
	"Category",
}

// Export writes transactions in the statement format: UTF-8 with BOM,
// semicolon-delimited, dates and numbers rendered in the Swiss locale with
// zero amounts as empty fields.
func Export(w io.Writer, transactions []model.Transaction) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, tx := range transactions {
		valueDate := ""
		if tx.ValueDate != nil {
			valueDate = swiss.FormatDate(*tx.ValueDate)
		}

		category := tx.Category
		if category == "" {
			category = model.CategoryUncategorized
		}

		row := []string{
			swiss.FormatDate(tx.Date),
			tx.BookingText,
			tx.Currency,
			tx.AmountDetails,
			tx.ExternalReference,
			tx.ReferenceNumber,
			swiss.FormatNumber(tx.DebitAmount),
			swiss.FormatNumber(tx.CreditAmount),
			valueDate,
			swiss.FormatNumber(tx.BalanceAfter),
			tx.PaymentPurpose,
			tx.Details,
			string(category),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
