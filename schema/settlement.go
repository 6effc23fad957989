package schema

// TradeTax is one tax entry at header or line level.
type TradeTax struct {
	CalculatedAmount      *Amount `xml:"ram:CalculatedAmount,omitempty"`
	TypeCode              string  `xml:"ram:TypeCode,omitempty"`
	ExemptionReason       string  `xml:"ram:ExemptionReason,omitempty"`
	CategoryCode          string  `xml:"ram:CategoryCode,omitempty"`
	ExemptionReasonCode   string  `xml:"ram:ExemptionReasonCode,omitempty"`
	RateApplicablePercent string  `xml:"ram:RateApplicablePercent,omitempty"`
}

// AllowanceCharge is a discount (indicator false) or surcharge (indicator
// true) at document, line or price level. The indicator is carried
// verbatim; amounts are never sign-converted.
type AllowanceCharge struct {
	ChargeIndicator    *Indicator `xml:"ram:ChargeIndicator"`
	SequenceNumeric    string     `xml:"ram:SequenceNumeric,omitempty"`
	CalculationPercent string     `xml:"ram:CalculationPercent,omitempty"`
	BasisAmount        *Amount    `xml:"ram:BasisAmount,omitempty"`
	BasisQuantity      *Quantity  `xml:"ram:BasisQuantity,omitempty"`
	ActualAmount       *Amount    `xml:"ram:ActualAmount,omitempty"`
	ReasonCode         string     `xml:"ram:ReasonCode,omitempty"`
	Reason             string     `xml:"ram:Reason,omitempty"`
	CategoryTradeTax   *TradeTax  `xml:"ram:CategoryTradeTax,omitempty"`
}

// PaymentMeans describes how the order will be paid.
type PaymentMeans struct {
	TypeCode     string            `xml:"ram:TypeCode,omitempty"`
	Information  string            `xml:"ram:Information,omitempty"`
	PayerAccount *FinancialAccount `xml:"ram:PayerPartyDebtorFinancialAccount,omitempty"`
	PayeeAccount *FinancialAccount `xml:"ram:PayeePartyCreditorFinancialAccount,omitempty"`
}

// FinancialAccount is a bank account given by IBAN and/or proprietary id.
type FinancialAccount struct {
	IBANID        *ID    `xml:"ram:IBANID,omitempty"`
	AccountName   string `xml:"ram:AccountName,omitempty"`
	ProprietaryID *ID    `xml:"ram:ProprietaryID,omitempty"`
}

// PaymentTerms is one payment condition; single-valued below the extended
// profile.
type PaymentTerms struct {
	Description     string    `xml:"ram:Description,omitempty"`
	DueDateDateTime *DateTime `xml:"ram:DueDateDateTime,omitempty"`
}

// HeaderMonetarySummation is the document total block. TaxTotalAmount is a
// collection because one total per tax currency may be present; the
// composer stamps the order currency onto every element.
type HeaderMonetarySummation struct {
	LineTotalAmount      *Amount   `xml:"ram:LineTotalAmount,omitempty"`
	ChargeTotalAmount    *Amount   `xml:"ram:ChargeTotalAmount,omitempty"`
	AllowanceTotalAmount *Amount   `xml:"ram:AllowanceTotalAmount,omitempty"`
	TaxBasisTotalAmount  *Amount   `xml:"ram:TaxBasisTotalAmount,omitempty"`
	TaxTotalAmounts      []*Amount `xml:"ram:TaxTotalAmount,omitempty"`
	GrandTotalAmount     *Amount   `xml:"ram:GrandTotalAmount,omitempty"`
}

// LineMonetarySummation is the total block of one line.
type LineMonetarySummation struct {
	LineTotalAmount            *Amount `xml:"ram:LineTotalAmount,omitempty"`
	TotalAllowanceChargeAmount *Amount `xml:"ram:TotalAllowanceChargeAmount,omitempty"`
}
