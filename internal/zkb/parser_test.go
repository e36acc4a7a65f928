package zkb

import (
	"bytes"
	"testing"
	"time"

	"github.com/rappen-dev/rappen/internal/model"
	"github.com/rappen-dev/rappen/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementHeader = "Date;Booking text;Curr;Amount details;ZKB reference;Reference number;Debit CHF;Credit CHF;Value date;Balance CHF;Payment purpose;Details\n"

func newTestParser() *Parser {
	return NewParser(rules.NewCategorizer(rules.DefaultRules()))
}

func TestParseStatement(t *testing.T) {
	body := statementHeader +
		"15.03.2024;MIGROS FILIALE 123;CHF;Purchase ZKB Visa;ref-001;RN1;45,90;;15.03.2024;2'500,00;Card purchase;Some details\n" +
		"16.03.2024;Salary March;CHF;;ref-002;;;5'000,00;16.03.2024;7'454,10;ACME AG;\n"
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(body)...)

	txns, err := newTestParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	tx := txns[0]
	assert.Equal(t, model.TypeDebit, tx.Type)
	assert.Equal(t, 45.90, tx.Amount)
	assert.Equal(t, 45.90, tx.DebitAmount)
	assert.Equal(t, 0.0, tx.CreditAmount)
	assert.Equal(t, 2500.00, tx.BalanceAfter)
	assert.Equal(t, "2024", tx.YearKey)
	assert.Equal(t, "2024-03", tx.MonthKey)
	assert.Equal(t, "2024-03-15", tx.DayKey)
	assert.Equal(t, model.Category("Groceries"), tx.Category)
	assert.False(t, tx.CategoryManual)
	assert.Equal(t, "ref-001", tx.ExternalReference)
	require.NotNil(t, tx.ValueDate)
	assert.True(t, tx.ValueDate.Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))

	credit := txns[1]
	assert.Equal(t, model.TypeCredit, credit.Type)
	assert.Equal(t, 5000.00, credit.Amount)
	assert.Equal(t, model.CategoryUncategorized, credit.Category)
}

func TestParseDropsRowsWithoutDate(t *testing.T) {
	data := []byte(statementHeader +
		";;;;;;;;;;;\n" +
		"Account statement 2024;;;;;;;;;;;\n" +
		"15.03.2024;COOP PRONTO;CHF;;ref-1;;12,50;;;1'000,00;;\n" +
		"Total;;;;;;58,40;;;;;\n")

	txns, err := newTestParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "COOP PRONTO", txns[0].BookingText)
}

func TestParseEmptyFile(t *testing.T) {
	txns, err := newTestParser().Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, txns)

	txns, err = newTestParser().Parse([]byte(statementHeader))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestParseKeyPrefixes(t *testing.T) {
	data := []byte(statementHeader +
		"01.01.2023;A;CHF;;;;1,00;;;;;\n" +
		"31.12.2024;B;CHF;;;;2,00;;;;;\n" +
		"05.06.2025;C;CHF;;;;3,00;;;;;\n")

	txns, err := newTestParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	for _, tx := range txns {
		assert.True(t, len(tx.MonthKey) > len(tx.YearKey) && tx.MonthKey[:len(tx.YearKey)] == tx.YearKey)
		assert.True(t, len(tx.DayKey) > len(tx.MonthKey) && tx.DayKey[:len(tx.MonthKey)] == tx.MonthKey)
	}
}

func TestParseExactlyOneSideNonzero(t *testing.T) {
	data := []byte(statementHeader +
		"02.02.2024;Debit row;CHF;;;;10,00;;;;;\n" +
		"03.02.2024;Credit row;CHF;;;;;20,00;;;;\n")

	txns, err := newTestParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	for _, tx := range txns {
		if tx.Type == model.TypeCredit {
			assert.Zero(t, tx.DebitAmount)
			assert.Equal(t, tx.CreditAmount, tx.Amount)
		} else {
			assert.Zero(t, tx.CreditAmount)
			assert.Equal(t, tx.DebitAmount, tx.Amount)
		}
	}
}

func TestParseQuotedFields(t *testing.T) {
	data := []byte(statementHeader +
		"10.04.2024;\"Restaurant; Zurich\";CHF;;ref-9;;32,00;;;;\"Dinner \"\"special\"\"\";\n")

	txns, err := newTestParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Restaurant; Zurich", txns[0].BookingText)
	assert.Equal(t, `Dinner "special"`, txns[0].PaymentPurpose)
}

func TestExportRoundTrip(t *testing.T) {
	data := []byte(statementHeader +
		"15.03.2024;MIGROS FILIALE 123;CHF;;ref-001;RN1;45,90;;15.03.2024;1'234,50;Card purchase;\n" +
		"16.03.2024;Salary;CHF;;ref-002;;;5'000,00;;6'234,50;;\n")

	parser := newTestParser()
	original, err := parser.Parse(data)
	require.NoError(t, err)
	require.Len(t, original, 2)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, original))

	// Exported files carry a BOM and the extra Category column.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, buf.String(), ";Category")
	assert.Contains(t, buf.String(), "1234,50")

	reimported, err := parser.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, reimported, 2)

	for i := range original {
		assert.Equal(t, original[i].DebitAmount, reimported[i].DebitAmount)
		assert.Equal(t, original[i].CreditAmount, reimported[i].CreditAmount)
		assert.Equal(t, original[i].BalanceAfter, reimported[i].BalanceAfter)
		assert.Equal(t, original[i].ExternalReference, reimported[i].ExternalReference)
		assert.True(t, original[i].Date.Equal(reimported[i].Date))
	}
}
