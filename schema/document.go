package schema

import "encoding/xml"

// Document is the root of one Cross-Industry-Order message.
type Document struct {
	XMLName      xml.Name `xml:"rsm:SCRDMCCBDACIOMessageStructure"`
	RSMNamespace string   `xml:"xmlns:rsm,attr"`
	QDTNamespace string   `xml:"xmlns:qdt,attr"`
	RAMNamespace string   `xml:"xmlns:ram,attr"`
	UDTNamespace string   `xml:"xmlns:udt,attr"`

	Context           *ExchangedDocumentContext    `xml:"rsm:ExchangedDocumentContext"`
	ExchangedDocument *ExchangedDocument           `xml:"rsm:ExchangedDocument"`
	Transaction       *SupplyChainTradeTransaction `xml:"rsm:SupplyChainTradeTransaction"`
}

// NewDocument allocates an empty document tree for the given profile, with
// all four header containers in place.
func NewDocument(profile Profile) *Document {
	return &Document{
		RSMNamespace: NamespaceRSM,
		QDTNamespace: NamespaceQDT,
		RAMNamespace: NamespaceRAM,
		UDTNamespace: NamespaceUDT,
		Context: &ExchangedDocumentContext{
			Guideline: &DocumentContextParameter{ID: profile.GuidelineID()},
		},
		ExchangedDocument: &ExchangedDocument{},
		Transaction: &SupplyChainTradeTransaction{
			Agreement:  &HeaderTradeAgreement{},
			Delivery:   &HeaderTradeDelivery{},
			Settlement: &HeaderTradeSettlement{},
		},
	}
}

// DocumentContextParameter carries a single context identifier.
type DocumentContextParameter struct {
	ID string `xml:"ram:ID"`
}

// ExchangedDocumentContext holds the profile and business-process markers.
type ExchangedDocumentContext struct {
	TestIndicator   *Indicator                `xml:"ram:TestIndicator,omitempty"`
	BusinessProcess *DocumentContextParameter `xml:"ram:BusinessProcessSpecifiedDocumentContextParameter,omitempty"`
	Guideline       *DocumentContextParameter `xml:"ram:GuidelineSpecifiedDocumentContextParameter"`
}

// ExchangedDocument carries the document header: id, type, issue date and
// the optional document-level markers and notes.
type ExchangedDocument struct {
	ID                        string     `xml:"ram:ID,omitempty"`
	Name                      string     `xml:"ram:Name,omitempty"`
	TypeCode                  string     `xml:"ram:TypeCode,omitempty"`
	IssueDateTime             *DateTime  `xml:"ram:IssueDateTime,omitempty"`
	CopyIndicator             *Indicator `xml:"ram:CopyIndicator,omitempty"`
	LanguageID                []string   `xml:"ram:LanguageID,omitempty"`
	PurposeCode               string     `xml:"ram:PurposeCode,omitempty"`
	RequestedResponseTypeCode string     `xml:"ram:RequestedResponseTypeCode,omitempty"`
	IncludedNote              []*Note    `xml:"ram:IncludedNote,omitempty"`
	EffectivePeriod           *Period    `xml:"ram:EffectiveSpecifiedPeriod,omitempty"`
}

// SupplyChainTradeTransaction owns the ordered line items and the three
// header trade containers.
type SupplyChainTradeTransaction struct {
	LineItems  []*SupplyChainTradeLineItem `xml:"ram:IncludedSupplyChainTradeLineItem,omitempty"`
	Agreement  *HeaderTradeAgreement       `xml:"ram:ApplicableHeaderTradeAgreement"`
	Delivery   *HeaderTradeDelivery        `xml:"ram:ApplicableHeaderTradeDelivery"`
	Settlement *HeaderTradeSettlement      `xml:"ram:ApplicableHeaderTradeSettlement"`
}

// HeaderTradeAgreement holds the contractual side of the order: the
// parties, delivery terms and the document references. The slice-typed
// reference slots are single-valued below the extended profile; the
// composer layer enforces that shape.
type HeaderTradeAgreement struct {
	BuyerReference               string                `xml:"ram:BuyerReference,omitempty"`
	SellerTradeParty             *TradeParty           `xml:"ram:SellerTradeParty,omitempty"`
	BuyerTradeParty              *TradeParty           `xml:"ram:BuyerTradeParty,omitempty"`
	BuyerRequisitionerTradeParty *TradeParty           `xml:"ram:BuyerRequisitionerTradeParty,omitempty"`
	DeliveryTerms                *TradeDeliveryTerms   `xml:"ram:ApplicableTradeDeliveryTerms,omitempty"`
	SellerOrderRef               *ReferencedDocument   `xml:"ram:SellerOrderReferencedDocument,omitempty"`
	BuyerOrderRef                *ReferencedDocument   `xml:"ram:BuyerOrderReferencedDocument,omitempty"`
	QuotationRef                 *ReferencedDocument   `xml:"ram:QuotationReferencedDocument,omitempty"`
	ContractRefs                 []*ReferencedDocument `xml:"ram:ContractReferencedDocument,omitempty"`
	RequisitionRefs              []*ReferencedDocument `xml:"ram:RequisitionReferencedDocument,omitempty"`
	AdditionalRefs               []*ReferencedDocument `xml:"ram:AdditionalReferencedDocument,omitempty"`
	BlanketOrderRefs             []*ReferencedDocument `xml:"ram:BlanketOrderReferencedDocument,omitempty"`
	PreviousOrderChangeRefs      []*ReferencedDocument `xml:"ram:PreviousOrderChangeReferencedDocument,omitempty"`
	PreviousOrderResponseRefs    []*ReferencedDocument `xml:"ram:PreviousOrderResponseReferencedDocument,omitempty"`
	ProcuringProject             *ProcuringProject     `xml:"ram:SpecifiedProcuringProject,omitempty"`
}

// TradeDeliveryTerms carries an Incoterms-style delivery condition.
type TradeDeliveryTerms struct {
	DeliveryTypeCode string `xml:"ram:DeliveryTypeCode,omitempty"`
	Description      string `xml:"ram:Description,omitempty"`
	FunctionCode     string `xml:"ram:FunctionCode,omitempty"`
}

// HeaderTradeDelivery holds the logistics side of the order.
type HeaderTradeDelivery struct {
	ShipToTradeParty   *TradeParty         `xml:"ram:ShipToTradeParty,omitempty"`
	ShipFromTradeParty *TradeParty         `xml:"ram:ShipFromTradeParty,omitempty"`
	RequestedEvents    []*SupplyChainEvent `xml:"ram:RequestedDeliverySupplyChainEvent,omitempty"`
}

// HeaderTradeSettlement holds the payment side of the order: currency,
// invoicee, payment means and terms, document-level allowances/charges and
// the monetary summation.
type HeaderTradeSettlement struct {
	OrderCurrencyCode  string                   `xml:"ram:OrderCurrencyCode,omitempty"`
	InvoiceeTradeParty *TradeParty              `xml:"ram:InvoiceeTradeParty,omitempty"`
	PaymentMeans       *PaymentMeans            `xml:"ram:SpecifiedTradeSettlementPaymentMeans,omitempty"`
	PaymentTerms       []*PaymentTerms          `xml:"ram:SpecifiedTradePaymentTerms,omitempty"`
	AllowanceCharges   []*AllowanceCharge       `xml:"ram:SpecifiedTradeAllowanceCharge,omitempty"`
	Summation          *HeaderMonetarySummation `xml:"ram:SpecifiedTradeSettlementHeaderMonetarySummation,omitempty"`
	AccountingAccount  *TradeAccountingAccount  `xml:"ram:ReceivableSpecifiedTradeAccountingAccount,omitempty"`
}
