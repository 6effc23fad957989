package builder

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/orderx-go/orderx/schema"
)

func TestSetDocumentPaymentMeans(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.SetDocumentPaymentMeans("58", "SEPA credit transfer",
		schema.WithPayeeIBAN("DE89370400440532013000", "Acme GmbH"))

	pm := b.Document().Transaction.Settlement.PaymentMeans
	assert.Equal(t, "58", pm.TypeCode)
	assert.Equal(t, "SEPA credit transfer", pm.Information)
	assert.Equal(t, "DE89370400440532013000", pm.PayeeAccount.IBANID.Value)
	assert.Equal(t, "Acme GmbH", pm.PayeeAccount.AccountName)
}

func TestPaymentTerms(t *testing.T) {
	t.Run("ReplaceBelowExtended", func(t *testing.T) {
		b := New(schema.ProfileComfort)
		b.AddDocumentPaymentTerm("30 days net")
		b.AddDocumentPaymentTerm("14 days 2% discount")

		terms := b.Document().Transaction.Settlement.PaymentTerms
		assert.Equal(t, 1, len(terms))
		assert.Equal(t, "14 days 2% discount", terms[0].Description)
	})

	t.Run("AppendUnderExtended", func(t *testing.T) {
		due := time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC)

		b := New(schema.ProfileExtended)
		b.AddDocumentPaymentTerm("30 days net")
		b.AddDocumentPaymentTerm("14 days 2% discount", schema.WithDueDate(due))

		terms := b.Document().Transaction.Settlement.PaymentTerms
		assert.Equal(t, 2, len(terms))
		assert.Equal(t, "20240414", terms[1].DueDateDateTime.DateTimeString.Value)
	})

	t.Run("DescriptionTargetsLatest", func(t *testing.T) {
		b := New(schema.ProfileExtended)
		b.AddDocumentPaymentTerm("30 days net")
		b.AddDocumentPaymentTerm("14 days 2% discount")
		b.SetDocumentPaymentTermDescription("10 days 3% discount")

		terms := b.Document().Transaction.Settlement.PaymentTerms
		assert.Equal(t, "30 days net", terms[0].Description)
		assert.Equal(t, "10 days 3% discount", terms[1].Description)
	})

	t.Run("DescriptionNoopBeforeFirstTerm", func(t *testing.T) {
		b := New(schema.ProfileComfort)
		b.SetDocumentPaymentTermDescription("30 days net")

		assert.Equal(t, 0, len(b.Document().Transaction.Settlement.PaymentTerms))
	})
}

func TestAddDocumentAllowanceCharge(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddDocumentAllowanceCharge(decimal.RequireFromString("10.00"), false,
		schema.WithReason("95", "Volume discount"),
		schema.WithCategoryTax("S", "VAT", decimal.RequireFromString("19")),
	)
	b.AddDocumentAllowanceCharge(decimal.RequireFromString("4.90"), true,
		schema.WithReason("FC", "Freight"))

	acs := b.Document().Transaction.Settlement.AllowanceCharges
	assert.Equal(t, 2, len(acs))
	assert.False(t, acs[0].ChargeIndicator.Value)
	assert.Equal(t, "Volume discount", acs[0].Reason)
	assert.Equal(t, "S", acs[0].CategoryTradeTax.CategoryCode)
	assert.True(t, acs[1].ChargeIndicator.Value)
	assert.Equal(t, "4.90", acs[1].ActualAmount.Value)
}

func TestSetDocumentSummation(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.SetDocumentInformation("ORD-1", "220", time.Time{}, "EUR")
	b.SetDocumentSummation(decimal.RequireFromString("119.00"),
		schema.WithLineTotal(decimal.RequireFromString("100.00")),
		schema.WithChargeTotal(decimal.RequireFromString("4.90")),
		schema.WithAllowanceTotal(decimal.RequireFromString("4.90")),
		schema.WithTaxBasisTotal(decimal.RequireFromString("100.00")),
		schema.WithTaxTotal(decimal.RequireFromString("19.00")),
	)

	s := b.Document().Transaction.Settlement.Summation
	assert.Equal(t, "119.00", s.GrandTotalAmount.Value)
	assert.Equal(t, "100.00", s.LineTotalAmount.Value)
	assert.Equal(t, "4.90", s.ChargeTotalAmount.Value)
	assert.Equal(t, "4.90", s.AllowanceTotalAmount.Value)
	assert.Equal(t, "100.00", s.TaxBasisTotalAmount.Value)
	assert.Equal(t, "EUR", s.TaxTotalAmounts[0].CurrencyID)
	assert.Equal(t, "19.00", s.TaxTotalAmounts[0].Value)
}

func TestSetDocumentReceivableTradeAccountingAccount(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.SetDocumentReceivableTradeAccountingAccount("COST-42")

	assert.Equal(t, "COST-42", b.Document().Transaction.Settlement.AccountingAccount.ID)
}
