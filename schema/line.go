package schema

// SupplyChainTradeLineItem is one position of the order. Its four
// sub-containers are created lazily by the composer layer when the first
// field targeting them is set.
type SupplyChainTradeLineItem struct {
	LineDocument *DocumentLineDocument `xml:"ram:AssociatedDocumentLineDocument"`
	Product      *TradeProduct         `xml:"ram:SpecifiedTradeProduct,omitempty"`
	Agreement    *LineTradeAgreement   `xml:"ram:SpecifiedLineTradeAgreement,omitempty"`
	Delivery     *LineTradeDelivery    `xml:"ram:SpecifiedLineTradeDelivery,omitempty"`
	Settlement   *LineTradeSettlement  `xml:"ram:SpecifiedLineTradeSettlement,omitempty"`
}

// DocumentLineDocument carries the line id, status and notes.
type DocumentLineDocument struct {
	LineID         string  `xml:"ram:LineID"`
	LineStatusCode string  `xml:"ram:LineStatusCode,omitempty"`
	IncludedNote   []*Note `xml:"ram:IncludedNote,omitempty"`
}

// TradeProduct describes the product or service being ordered.
type TradeProduct struct {
	ID                  *ID                      `xml:"ram:ID,omitempty"`
	GlobalID            *ID                      `xml:"ram:GlobalID,omitempty"`
	SellerAssignedID    string                   `xml:"ram:SellerAssignedID,omitempty"`
	BuyerAssignedID     string                   `xml:"ram:BuyerAssignedID,omitempty"`
	IndustryAssignedID  string                   `xml:"ram:IndustryAssignedID,omitempty"`
	Name                string                   `xml:"ram:Name,omitempty"`
	Description         string                   `xml:"ram:Description,omitempty"`
	BatchID             string                   `xml:"ram:BatchID,omitempty"`
	BrandName           string                   `xml:"ram:BrandName,omitempty"`
	Characteristics     []*ProductCharacteristic `xml:"ram:ApplicableProductCharacteristic,omitempty"`
	Classifications     []*ProductClassification `xml:"ram:DesignatedProductClassification,omitempty"`
	Instances           []*ProductInstance       `xml:"ram:IndividualTradeProductInstance,omitempty"`
	Packaging           *SupplyChainPackaging    `xml:"ram:ApplicableSupplyChainPackaging,omitempty"`
	OriginCountry       *TradeCountry            `xml:"ram:OriginTradeCountry,omitempty"`
	ReferencedDocuments []*ReferencedDocument    `xml:"ram:AdditionalReferenceReferencedDocument,omitempty"`
}

// ProductCharacteristic is one property of a product, given as free text
// and/or a measured value.
type ProductCharacteristic struct {
	TypeCode     string   `xml:"ram:TypeCode,omitempty"`
	Description  string   `xml:"ram:Description,omitempty"`
	ValueMeasure *Measure `xml:"ram:ValueMeasure,omitempty"`
	Value        string   `xml:"ram:Value,omitempty"`
}

// ProductClassification places a product in a classification scheme such
// as UNSPSC or eCl@ss.
type ProductClassification struct {
	ClassCode *ClassCode `xml:"ram:ClassCode,omitempty"`
	ClassName string     `xml:"ram:ClassName,omitempty"`
}

// ClassCode is a classification code qualified by its list id and version.
type ClassCode struct {
	ListID        string `xml:"listID,attr,omitempty"`
	ListVersionID string `xml:"listVersionID,attr,omitempty"`
	Value         string `xml:",chardata"`
}

// ProductInstance identifies one concrete item by batch and/or serial id.
type ProductInstance struct {
	BatchID  string `xml:"ram:BatchID,omitempty"`
	SerialID string `xml:"ram:SerialID,omitempty"`
}

// SupplyChainPackaging describes how the product is packaged.
type SupplyChainPackaging struct {
	TypeCode         string            `xml:"ram:TypeCode,omitempty"`
	SpatialDimension *SpatialDimension `xml:"ram:LinearSpatialDimension,omitempty"`
}

// SpatialDimension is the width/length/height of a package.
type SpatialDimension struct {
	WidthMeasure  *Measure `xml:"ram:WidthMeasure,omitempty"`
	LengthMeasure *Measure `xml:"ram:LengthMeasure,omitempty"`
	HeightMeasure *Measure `xml:"ram:HeightMeasure,omitempty"`
}

// TradeCountry is a country given by its ISO 3166-1 alpha-2 code.
type TradeCountry struct {
	ID string `xml:"ram:ID"`
}

// LineTradeAgreement holds the contractual data of one line: references
// into other documents and the gross/net prices.
type LineTradeAgreement struct {
	BuyerOrderRef    *ReferencedDocument   `xml:"ram:BuyerOrderReferencedDocument,omitempty"`
	QuotationRef     *ReferencedDocument   `xml:"ram:QuotationReferencedDocument,omitempty"`
	CatalogueRefs    []*ReferencedDocument `xml:"ram:CatalogueReferencedDocument,omitempty"`
	BlanketOrderRef  *ReferencedDocument   `xml:"ram:BlanketOrderReferencedDocument,omitempty"`
	AdditionalRefs   []*ReferencedDocument `xml:"ram:AdditionalReferencedDocument,omitempty"`
	GrossPrice       *TradePrice           `xml:"ram:GrossPriceProductTradePrice,omitempty"`
	NetPrice         *TradePrice           `xml:"ram:NetPriceProductTradePrice,omitempty"`
}

// TradePrice is a product price with an optional basis quantity and, on
// gross prices, the allowances/charges applied to reach the net price.
type TradePrice struct {
	ChargeAmount     *Amount            `xml:"ram:ChargeAmount,omitempty"`
	BasisQuantity    *Quantity          `xml:"ram:BasisQuantity,omitempty"`
	AllowanceCharges []*AllowanceCharge `xml:"ram:AppliedTradeAllowanceCharge,omitempty"`
}

// LineTradeDelivery holds the ordered quantities and delivery events of
// one line.
type LineTradeDelivery struct {
	PartialDeliveryAllowed *Indicator          `xml:"ram:PartialDeliveryAllowedIndicator,omitempty"`
	RequestedQuantity      *Quantity           `xml:"ram:RequestedQuantity,omitempty"`
	AgreedQuantity         *Quantity           `xml:"ram:AgreedQuantity,omitempty"`
	PackageQuantity        *Quantity           `xml:"ram:PackageQuantity,omitempty"`
	PerPackageUnitQuantity *Quantity           `xml:"ram:PerPackageUnitQuantity,omitempty"`
	RequestedEvents        []*SupplyChainEvent `xml:"ram:RequestedDeliverySupplyChainEvent,omitempty"`
}

// LineTradeSettlement holds the tax, allowance/charge and summation data
// of one line.
type LineTradeSettlement struct {
	Taxes             []*TradeTax             `xml:"ram:ApplicableTradeTax,omitempty"`
	AllowanceCharges  []*AllowanceCharge      `xml:"ram:SpecifiedTradeAllowanceCharge,omitempty"`
	Summation         *LineMonetarySummation  `xml:"ram:SpecifiedTradeSettlementLineMonetarySummation,omitempty"`
	AccountingAccount *TradeAccountingAccount `xml:"ram:ReceivableSpecifiedTradeAccountingAccount,omitempty"`
}
