package builder

import (
	"github.com/shopspring/decimal"

	"github.com/orderx-go/orderx/schema"
)

// SetDocumentPaymentMeans sets how the order will be paid, replacing any
// previous entry.
func (b *Builder) SetDocumentPaymentMeans(typeCode, information string, opts ...schema.PaymentMeansOption) *Builder {
	b.settlement().PaymentMeans = schema.NewPaymentMeans(typeCode, information, opts...)
	return b
}

// AddDocumentPaymentTerm records a payment condition. Below the extended
// profile the settlement holds a single terms entry and the call replaces
// it; under the extended profile every call appends. The most recently
// added entry becomes the current terms targeted by
// SetDocumentPaymentTermDescription.
func (b *Builder) AddDocumentPaymentTerm(description string, opts ...schema.PaymentTermsOption) *Builder {
	terms := schema.NewPaymentTerms(description, opts...)
	s := b.settlement()
	if b.profile.ListValued() {
		s.PaymentTerms = append(s.PaymentTerms, terms)
	} else {
		s.PaymentTerms = []*schema.PaymentTerms{terms}
	}
	b.currentTerms = terms
	return b
}

// SetDocumentPaymentTermDescription updates the description of the most
// recently added payment terms entry. No-op before the first
// AddDocumentPaymentTerm.
func (b *Builder) SetDocumentPaymentTermDescription(description string) *Builder {
	if b.currentTerms == nil {
		return b
	}
	b.currentTerms.Description = description
	return b
}

// AddDocumentAllowanceCharge appends a document-level allowance or charge.
func (b *Builder) AddDocumentAllowanceCharge(actualAmount decimal.Decimal, isCharge bool, opts ...schema.AllowanceChargeOption) *Builder {
	s := b.settlement()
	s.AllowanceCharges = append(s.AllowanceCharges, schema.NewAllowanceCharge(actualAmount, isCharge, opts...))
	return b
}

// SetDocumentSummation builds the header monetary summation and stamps the
// order currency onto every tax total it carries.
//
// The currency comes from SetDocumentInformation, so that call must happen
// first; otherwise the tax totals are emitted without a currency
// qualifier.
func (b *Builder) SetDocumentSummation(grandTotal decimal.Decimal, opts ...schema.SummationOption) *Builder {
	summation := schema.NewHeaderMonetarySummation(grandTotal, opts...)
	for _, amount := range summation.TaxTotalAmounts {
		amount.CurrencyID = b.currency
	}
	b.settlement().Summation = summation
	return b
}

// SetDocumentReceivableTradeAccountingAccount sets the buyer's cost
// account for the whole document.
func (b *Builder) SetDocumentReceivableTradeAccountingAccount(id string) *Builder {
	b.settlement().AccountingAccount = schema.NewAccountingAccount(id)
	return b
}
