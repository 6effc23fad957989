// Constructor functions for programmatically building document tree nodes.
// These builders are the factory surface used by the composer layer; they
// can also be used directly to assemble sub-trees from primitive inputs.
//
// The builders use functional options for node types with many independent
// optional fields, following the same pattern as configurable constructors
// elsewhere in Go.

package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// decimalString renders a decimal with the scale it was created with.
// Decimal's own String trims trailing zeros, but the exponent still
// carries the original scale, so rendering fixed to it keeps "9.50" as
// "9.50" instead of "9.5".
func decimalString(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// NewAmount creates an Amount without a currency qualifier. The decimal's
// own scale is preserved in the serialized value.
//
// Example:
//
//	amount := schema.NewAmount(decimal.RequireFromString("119.00"))
func NewAmount(value decimal.Decimal) *Amount {
	return &Amount{Value: decimalString(value)}
}

// NewAmountWithCurrency creates an Amount qualified by an ISO 4217
// currency code.
func NewAmountWithCurrency(value decimal.Decimal, currency string) *Amount {
	return &Amount{CurrencyID: currency, Value: decimalString(value)}
}

// NewQuantity creates a Quantity with a UN/ECE Rec 20 unit code. An empty
// unit leaves the attribute unset.
func NewQuantity(value decimal.Decimal, unit string) *Quantity {
	return &Quantity{UnitCode: unit, Value: decimalString(value)}
}

// NewMeasure creates a Measure with a unit code.
func NewMeasure(value decimal.Decimal, unit string) *Measure {
	return &Measure{UnitCode: unit, Value: decimalString(value)}
}

// NewID creates an ID with an optional scheme qualifier.
func NewID(value, scheme string) *ID {
	return &ID{SchemeID: scheme, Value: value}
}

// NewDateTime creates a calendar date in UDT representation (format 102,
// CCYYMMDD).
func NewDateTime(t time.Time) *DateTime {
	return &DateTime{DateTimeString: &DateTimeString{
		Format: DateFormatCalendar,
		Value:  t.Format("20060102"),
	}}
}

// NewFormattedDateTime creates a calendar date in the QDT representation
// used on referenced documents.
func NewFormattedDateTime(t time.Time) *FormattedDateTime {
	return &FormattedDateTime{DateTimeString: &DateTimeString{
		Format: DateFormatCalendar,
		Value:  t.Format("20060102"),
	}}
}

// NewPeriod creates a Period from optional start and end dates; a zero
// time leaves the corresponding side unset.
func NewPeriod(start, end time.Time) *Period {
	p := &Period{}
	if !start.IsZero() {
		p.StartDateTime = NewDateTime(start)
	}
	if !end.IsZero() {
		p.EndDateTime = NewDateTime(end)
	}
	return p
}

// NewTradeParty creates a TradeParty with its name and the optional
// scheme-less id and description. Sub-structures (address, contacts, tax
// registrations) are attached afterwards by the composer.
//
// Example:
//
//	party := schema.NewTradeParty("Acme GmbH", "549910", "")
func NewTradeParty(name, id, description string) *TradeParty {
	p := &TradeParty{Name: name, Description: description}
	if id != "" {
		p.ID = &ID{Value: id}
	}
	return p
}

// NewTradeAddress creates a postal address. All fields are optional.
func NewTradeAddress(lineOne, lineTwo, lineThree, postcode, city, country, subdivision string) *TradeAddress {
	return &TradeAddress{
		PostcodeCode:           postcode,
		LineOne:                lineOne,
		LineTwo:                lineTwo,
		LineThree:              lineThree,
		CityName:               city,
		CountryID:              country,
		CountrySubDivisionName: subdivision,
	}
}

// NewLegalOrganization creates a legal organization entry. An empty id
// leaves the ID element unset.
func NewLegalOrganization(id, scheme, name string) *LegalOrganization {
	o := &LegalOrganization{TradingBusinessName: name}
	if id != "" {
		o.ID = NewID(id, scheme)
	}
	return o
}

// NewTaxRegistration creates a fiscal registration entry. The scheme is
// the registration kind ("VA" for VAT, "FC" for local tax numbers).
func NewTaxRegistration(scheme, id string) *TaxRegistration {
	return &TaxRegistration{ID: NewID(id, scheme)}
}

// NewTradeContact creates a contact with the given person and department
// names, phone, fax, email and contact type code. Empty fields stay unset.
func NewTradeContact(person, department, phone, fax, email, typeCode string) *TradeContact {
	c := &TradeContact{
		PersonName:     person,
		DepartmentName: department,
		TypeCode:       typeCode,
	}
	if phone != "" {
		c.Telephone = &UniversalCommunication{CompleteNumber: phone}
	}
	if fax != "" {
		c.Fax = &UniversalCommunication{CompleteNumber: fax}
	}
	if email != "" {
		c.Email = &UniversalCommunication{URIID: &ID{Value: email}}
	}
	return c
}

// NewUniversalCommunication creates an electronic-address endpoint. The
// scheme qualifies the URI kind (e.g. "EM" for email).
func NewUniversalCommunication(uriID, scheme string) *UniversalCommunication {
	return &UniversalCommunication{URIID: NewID(uriID, scheme)}
}

// ReferencedDocumentOption configures an optional field of a
// ReferencedDocument.
type ReferencedDocumentOption func(*ReferencedDocument)

// NewReferencedDocument creates a ReferencedDocument with the issuer
// assigned id; every other field is supplied through options. Call sites
// populate whatever subset their slot needs.
//
// Example:
//
//	ref := schema.NewReferencedDocument("CT-2024-0815",
//	    schema.WithIssueDate(signed),
//	    schema.WithName("Frame contract"),
//	)
func NewReferencedDocument(issuerAssignedID string, opts ...ReferencedDocumentOption) *ReferencedDocument {
	ref := &ReferencedDocument{IssuerAssignedID: issuerAssignedID}
	for _, opt := range opts {
		opt(ref)
	}
	return ref
}

// WithURIID sets the external location of the referenced document.
func WithURIID(uri string) ReferencedDocumentOption {
	return func(r *ReferencedDocument) { r.URIID = uri }
}

// WithLineID points the reference at a single line of the referenced
// document.
func WithLineID(lineID string) ReferencedDocumentOption {
	return func(r *ReferencedDocument) { r.LineID = lineID }
}

// WithTypeCode sets the UNTDID 1001 document type code.
func WithTypeCode(code string) ReferencedDocumentOption {
	return func(r *ReferencedDocument) { r.TypeCode = code }
}

// WithDocumentName sets the human-readable name of the referenced document.
func WithDocumentName(name string) ReferencedDocumentOption {
	return func(r *ReferencedDocument) { r.Name = name }
}

// WithReferenceTypeCode sets the UNTDID 1153 reference qualifier.
func WithReferenceTypeCode(code string) ReferencedDocumentOption {
	return func(r *ReferencedDocument) { r.ReferenceTypeCode = code }
}

// WithIssueDate sets the issue date of the referenced document.
func WithIssueDate(t time.Time) ReferencedDocumentOption {
	return func(r *ReferencedDocument) { r.IssueDateTime = NewFormattedDateTime(t) }
}

// WithAttachmentFilename records the filename of an embedded attachment.
func WithAttachmentFilename(filename string) ReferencedDocumentOption {
	return func(r *ReferencedDocument) {
		r.Attachment = &BinaryObject{Filename: filename}
	}
}

// TradeTaxOption configures an optional field of a TradeTax.
type TradeTaxOption func(*TradeTax)

// NewTradeTax creates a tax entry from its category code (UNTDID 5305),
// type code (e.g. "VAT") and the rate as a whole-number percentage (20
// means 20%). The rate is serialized with the scale it was given.
func NewTradeTax(categoryCode, typeCode string, ratePercent decimal.Decimal, opts ...TradeTaxOption) *TradeTax {
	tax := &TradeTax{
		TypeCode:              typeCode,
		CategoryCode:          categoryCode,
		RateApplicablePercent: decimalString(ratePercent),
	}
	for _, opt := range opts {
		opt(tax)
	}
	return tax
}

// WithCalculatedAmount sets the pre-computed tax amount.
func WithCalculatedAmount(amount decimal.Decimal) TradeTaxOption {
	return func(t *TradeTax) { t.CalculatedAmount = NewAmount(amount) }
}

// WithExemption sets the exemption reason text and code for zero-rated or
// exempt categories.
func WithExemption(reason, reasonCode string) TradeTaxOption {
	return func(t *TradeTax) {
		t.ExemptionReason = reason
		t.ExemptionReasonCode = reasonCode
	}
}

// AllowanceChargeOption configures an optional field of an AllowanceCharge.
type AllowanceChargeOption func(*AllowanceCharge)

// NewAllowanceCharge creates an allowance (isCharge false) or charge
// (isCharge true) with the given actual amount. The indicator is carried
// verbatim into the serialized output; the amount keeps its sign.
func NewAllowanceCharge(actualAmount decimal.Decimal, isCharge bool, opts ...AllowanceChargeOption) *AllowanceCharge {
	ac := &AllowanceCharge{
		ChargeIndicator: &Indicator{Value: isCharge},
		ActualAmount:    NewAmount(actualAmount),
	}
	for _, opt := range opts {
		opt(ac)
	}
	return ac
}

// WithCategoryTax attaches the tax category the allowance or charge
// belongs to.
func WithCategoryTax(categoryCode, typeCode string, ratePercent decimal.Decimal) AllowanceChargeOption {
	return func(ac *AllowanceCharge) {
		ac.CategoryTradeTax = &TradeTax{
			TypeCode:              typeCode,
			CategoryCode:          categoryCode,
			RateApplicablePercent: decimalString(ratePercent),
		}
	}
}

// WithSequence sets the calculation sequence number.
func WithSequence(sequence decimal.Decimal) AllowanceChargeOption {
	return func(ac *AllowanceCharge) { ac.SequenceNumeric = decimalString(sequence) }
}

// WithCalculationPercent sets the percentage used to compute the actual
// amount from the basis amount.
func WithCalculationPercent(percent decimal.Decimal) AllowanceChargeOption {
	return func(ac *AllowanceCharge) { ac.CalculationPercent = decimalString(percent) }
}

// WithBasisAmount sets the amount the percentage applies to.
func WithBasisAmount(amount decimal.Decimal) AllowanceChargeOption {
	return func(ac *AllowanceCharge) { ac.BasisAmount = NewAmount(amount) }
}

// WithBasisQuantity sets the quantity the allowance or charge applies to.
func WithBasisQuantity(quantity decimal.Decimal, unit string) AllowanceChargeOption {
	return func(ac *AllowanceCharge) { ac.BasisQuantity = NewQuantity(quantity, unit) }
}

// WithReason sets the UNTDID 4465/5189 reason code and free-text reason.
func WithReason(code, text string) AllowanceChargeOption {
	return func(ac *AllowanceCharge) {
		ac.ReasonCode = code
		ac.Reason = text
	}
}

// SummationOption configures an optional total of a
// HeaderMonetarySummation.
type SummationOption func(*HeaderMonetarySummation)

// NewHeaderMonetarySummation creates the document total block from the
// grand total; every other total is supplied through options.
func NewHeaderMonetarySummation(grandTotal decimal.Decimal, opts ...SummationOption) *HeaderMonetarySummation {
	s := &HeaderMonetarySummation{GrandTotalAmount: NewAmount(grandTotal)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLineTotal sets the sum of all line totals.
func WithLineTotal(amount decimal.Decimal) SummationOption {
	return func(s *HeaderMonetarySummation) { s.LineTotalAmount = NewAmount(amount) }
}

// WithChargeTotal sets the sum of all document-level charges.
func WithChargeTotal(amount decimal.Decimal) SummationOption {
	return func(s *HeaderMonetarySummation) { s.ChargeTotalAmount = NewAmount(amount) }
}

// WithAllowanceTotal sets the sum of all document-level allowances.
func WithAllowanceTotal(amount decimal.Decimal) SummationOption {
	return func(s *HeaderMonetarySummation) { s.AllowanceTotalAmount = NewAmount(amount) }
}

// WithTaxBasisTotal sets the taxable base amount.
func WithTaxBasisTotal(amount decimal.Decimal) SummationOption {
	return func(s *HeaderMonetarySummation) { s.TaxBasisTotalAmount = NewAmount(amount) }
}

// WithTaxTotal appends one tax total to the tax total collection.
func WithTaxTotal(amount decimal.Decimal) SummationOption {
	return func(s *HeaderMonetarySummation) {
		s.TaxTotalAmounts = append(s.TaxTotalAmounts, NewAmount(amount))
	}
}

// NewLineMonetarySummation creates the total block of one line.
func NewLineMonetarySummation(lineTotal decimal.Decimal) *LineMonetarySummation {
	return &LineMonetarySummation{LineTotalAmount: NewAmount(lineTotal)}
}

// NewLineMonetarySummationWithAllowanceCharge creates a line total block
// that also carries the net allowance/charge total of the line.
func NewLineMonetarySummationWithAllowanceCharge(lineTotal, allowanceChargeTotal decimal.Decimal) *LineMonetarySummation {
	return &LineMonetarySummation{
		LineTotalAmount:            NewAmount(lineTotal),
		TotalAllowanceChargeAmount: NewAmount(allowanceChargeTotal),
	}
}

// SupplyChainEventOption configures a SupplyChainEvent.
type SupplyChainEventOption func(*SupplyChainEvent)

// NewSupplyChainEvent creates a delivery event; supply either an
// occurrence date or a period through options.
func NewSupplyChainEvent(opts ...SupplyChainEventOption) *SupplyChainEvent {
	ev := &SupplyChainEvent{}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// WithOccurrence sets a single occurrence date.
func WithOccurrence(t time.Time) SupplyChainEventOption {
	return func(ev *SupplyChainEvent) { ev.OccurrenceDateTime = NewDateTime(t) }
}

// WithOccurrencePeriod sets a delivery window.
func WithOccurrencePeriod(start, end time.Time) SupplyChainEventOption {
	return func(ev *SupplyChainEvent) { ev.OccurrencePeriod = NewPeriod(start, end) }
}

// PaymentMeansOption configures a PaymentMeans.
type PaymentMeansOption func(*PaymentMeans)

// NewPaymentMeans creates a payment means entry from its UNTDID 4461 type
// code and free-text information.
func NewPaymentMeans(typeCode, information string, opts ...PaymentMeansOption) *PaymentMeans {
	pm := &PaymentMeans{TypeCode: typeCode, Information: information}
	for _, opt := range opts {
		opt(pm)
	}
	return pm
}

// WithPayerIBAN sets the debtor account.
func WithPayerIBAN(iban string) PaymentMeansOption {
	return func(pm *PaymentMeans) {
		pm.PayerAccount = &FinancialAccount{IBANID: &ID{Value: iban}}
	}
}

// WithPayeeIBAN sets the creditor account and its optional name.
func WithPayeeIBAN(iban, accountName string) PaymentMeansOption {
	return func(pm *PaymentMeans) {
		pm.PayeeAccount = &FinancialAccount{
			IBANID:      &ID{Value: iban},
			AccountName: accountName,
		}
	}
}

// PaymentTermsOption configures a PaymentTerms entry.
type PaymentTermsOption func(*PaymentTerms)

// NewPaymentTerms creates a payment condition from its description.
func NewPaymentTerms(description string, opts ...PaymentTermsOption) *PaymentTerms {
	pt := &PaymentTerms{Description: description}
	for _, opt := range opts {
		opt(pt)
	}
	return pt
}

// WithDueDate sets the payment due date.
func WithDueDate(t time.Time) PaymentTermsOption {
	return func(pt *PaymentTerms) { pt.DueDateDateTime = NewDateTime(t) }
}

// NewDeliveryTerms creates an Incoterms-style delivery condition.
func NewDeliveryTerms(typeCode, description, functionCode string) *TradeDeliveryTerms {
	return &TradeDeliveryTerms{
		DeliveryTypeCode: typeCode,
		Description:      description,
		FunctionCode:     functionCode,
	}
}

// NewProcuringProject creates a project reference.
func NewProcuringProject(id, name string) *ProcuringProject {
	return &ProcuringProject{ID: id, Name: name}
}

// NewAccountingAccount creates a cost account reference.
func NewAccountingAccount(id string) *TradeAccountingAccount {
	return &TradeAccountingAccount{ID: id}
}

// ProductCharacteristicOption configures a ProductCharacteristic.
type ProductCharacteristicOption func(*ProductCharacteristic)

// NewProductCharacteristic creates a product property from its description
// and textual value.
func NewProductCharacteristic(description, value string, opts ...ProductCharacteristicOption) *ProductCharacteristic {
	pc := &ProductCharacteristic{Description: description, Value: value}
	for _, opt := range opts {
		opt(pc)
	}
	return pc
}

// WithCharacteristicTypeCode sets the characteristic type code.
func WithCharacteristicTypeCode(code string) ProductCharacteristicOption {
	return func(pc *ProductCharacteristic) { pc.TypeCode = code }
}

// WithValueMeasure sets a measured value with its unit.
func WithValueMeasure(value decimal.Decimal, unit string) ProductCharacteristicOption {
	return func(pc *ProductCharacteristic) { pc.ValueMeasure = NewMeasure(value, unit) }
}

// NewProductClassification creates a classification entry. Empty list id
// and version leave the attributes unset.
func NewProductClassification(classCode, listID, listVersionID, className string) *ProductClassification {
	pc := &ProductClassification{ClassName: className}
	if classCode != "" {
		pc.ClassCode = &ClassCode{ListID: listID, ListVersionID: listVersionID, Value: classCode}
	}
	return pc
}

// NewProductInstance creates a product instance entry from its batch
// and/or serial id.
func NewProductInstance(batchID, serialID string) *ProductInstance {
	return &ProductInstance{BatchID: batchID, SerialID: serialID}
}

// PackagingOption configures a SupplyChainPackaging.
type PackagingOption func(*SupplyChainPackaging)

// NewPackaging creates a packaging entry from its UNTDID 7065 type code.
func NewPackaging(typeCode string, opts ...PackagingOption) *SupplyChainPackaging {
	p := &SupplyChainPackaging{TypeCode: typeCode}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithDimensions sets the package width, length and height in the given
// unit.
func WithDimensions(width, length, height decimal.Decimal, unit string) PackagingOption {
	return func(p *SupplyChainPackaging) {
		p.SpatialDimension = &SpatialDimension{
			WidthMeasure:  NewMeasure(width, unit),
			LengthMeasure: NewMeasure(length, unit),
			HeightMeasure: NewMeasure(height, unit),
		}
	}
}

// NewNote creates a document or line note with an optional UNTDID 4451
// subject code.
func NewNote(content, subjectCode string) *Note {
	return &Note{Content: content, SubjectCode: subjectCode}
}
