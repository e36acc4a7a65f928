// Package zkb reads and writes the fixed 12-column semicolon-delimited CSV
// format of ZKB account statement exports.
package zkb

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rappen-dev/rappen/internal/model"
	"github.com/rappen-dev/rappen/internal/rules"
	"github.com/rappen-dev/rappen/internal/swiss"
)

// Statement column headers. Columns are resolved by header name, so an
// export that carries extra trailing columns (like our own Category column)
// parses the same way.
const (
	colDate            = "Date"
	colBookingText     = "Booking text"
	colCurrency        = "Curr"
	colAmountDetails   = "Amount details"
	colZKBReference    = "ZKB reference"
	colReferenceNumber = "Reference number"
	colDebit           = "Debit CHF"
	colCredit          = "Credit CHF"
	colValueDate       = "Value date"
	colBalance         = "Balance CHF"
	colPaymentPurpose  = "Payment purpose"
	colDetails         = "Details"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser normalizes raw statement rows into transactions.
type Parser struct {
	categorizer *rules.Categorizer
}

// NewParser creates a parser that categorizes rows with the given categorizer.
func NewParser(categorizer *rules.Categorizer) *Parser {
	return &Parser{categorizer: categorizer}
}

// Parse reads a whole statement file and returns the normalized transactions
// in file order. Rows without a parseable date (headers repeated mid-file,
// footers, blank lines) are dropped silently; real exports contain them.
func (p *Parser) Parse(data []byte) ([]model.Transaction, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var transactions []model.Transaction
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		if tx, ok := p.normalize(record, cols); ok {
			transactions = append(transactions, tx)
		}
	}

	return transactions, nil
}

// normalize maps one raw row to a transaction. It is a pure function of the
// row and the categorizer configuration; batch provenance is attached by the
// importer.
func (p *Parser) normalize(record []string, cols map[string]int) (model.Transaction, bool) {
	date, ok := swiss.ParseDate(field(record, cols, colDate))
	if !ok {
		return model.Transaction{}, false
	}

	debit := swiss.ParseNumber(field(record, cols, colDebit))
	credit := swiss.ParseNumber(field(record, cols, colCredit))

	txType := model.TypeDebit
	amount := debit
	if credit > 0 {
		txType = model.TypeCredit
		amount = credit
	}

	currency := field(record, cols, colCurrency)
	if currency == "" {
		currency = "CHF"
	}

	var valueDate *time.Time
	if vd, ok := swiss.ParseDate(field(record, cols, colValueDate)); ok {
		valueDate = &vd
	}

	bookingText := field(record, cols, colBookingText)
	paymentPurpose := field(record, cols, colPaymentPurpose)

	return model.Transaction{
		Date:              date,
		ValueDate:         valueDate,
		ExternalReference: field(record, cols, colZKBReference),
		ReferenceNumber:   field(record, cols, colReferenceNumber),
		BookingText:       bookingText,
		PaymentPurpose:    paymentPurpose,
		AmountDetails:     field(record, cols, colAmountDetails),
		Details:           field(record, cols, colDetails),
		Currency:          currency,
		DebitAmount:       debit,
		CreditAmount:      credit,
		BalanceAfter:      swiss.ParseNumber(field(record, cols, colBalance)),
		Type:              txType,
		Amount:            amount,
		YearKey:           model.YearKey(date),
		MonthKey:          model.MonthKey(date),
		DayKey:            model.DayKey(date),
		Category:          p.categorizer.Categorize(bookingText, paymentPurpose, txType, ""),
		CategoryManual:    false,
	}, true
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
