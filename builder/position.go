package builder

import (
	"github.com/shopspring/decimal"

	"github.com/orderx-go/orderx/schema"
)

// AddNewPosition appends a new line item with the given line id and makes
// it the current position: every line-scoped call that follows targets
// this line until the next AddNewPosition. Line ids are taken as given and
// not checked for uniqueness. The status code is optional.
func (b *Builder) AddNewPosition(lineID, statusCode string) *Builder {
	line := &schema.SupplyChainTradeLineItem{
		LineDocument: &schema.DocumentLineDocument{
			LineID:         lineID,
			LineStatusCode: statusCode,
		},
	}
	tx := b.doc.Transaction
	tx.LineItems = append(tx.LineItems, line)
	b.currentLine = line
	return b
}

// AddDocumentPositionNote appends a note to the current line. No-op before
// the first position.
func (b *Builder) AddDocumentPositionNote(content, subjectCode string) *Builder {
	line := b.currentLine
	if line == nil {
		return b
	}
	line.LineDocument.IncludedNote = append(line.LineDocument.IncludedNote, schema.NewNote(content, subjectCode))
	return b
}

// SetDocumentPositionProductDetails sets the product block of the current
// line: name, description, the seller/buyer assigned ids and the global id
// with its scheme. Empty fields stay unset.
func (b *Builder) SetDocumentPositionProductDetails(name, description, sellerAssignedID, buyerAssignedID, globalID, globalIDScheme string) *Builder {
	if b.currentLine == nil {
		return b
	}
	p := b.product()
	p.Name = name
	p.Description = description
	p.SellerAssignedID = sellerAssignedID
	p.BuyerAssignedID = buyerAssignedID
	if globalID != "" {
		p.GlobalID = schema.NewID(globalID, globalIDScheme)
	}
	return b
}

// SetDocumentPositionProductBatchID sets the product batch id.
func (b *Builder) SetDocumentPositionProductBatchID(batchID string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.product().BatchID = batchID
	return b
}

// SetDocumentPositionProductIndustryAssignedID sets the industry assigned
// product id.
func (b *Builder) SetDocumentPositionProductIndustryAssignedID(id string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.product().IndustryAssignedID = id
	return b
}

// SetDocumentPositionProductBrandName sets the product brand name.
func (b *Builder) SetDocumentPositionProductBrandName(brandName string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.product().BrandName = brandName
	return b
}

// SetDocumentPositionProductCharacteristic records a product property;
// under the extended profile repeated calls accumulate.
func (b *Builder) SetDocumentPositionProductCharacteristic(description, value string, opts ...schema.ProductCharacteristicOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	p := b.product()
	pc := schema.NewProductCharacteristic(description, value, opts...)
	if b.profile.ListValued() {
		p.Characteristics = append(p.Characteristics, pc)
	} else {
		p.Characteristics = []*schema.ProductCharacteristic{pc}
	}
	return b
}

// AddDocumentPositionProductCharacteristic appends a product property
// (extended profile only).
func (b *Builder) AddDocumentPositionProductCharacteristic(description, value string, opts ...schema.ProductCharacteristicOption) *Builder {
	if b.currentLine == nil || !b.profile.ListValued() {
		return b
	}
	p := b.product()
	p.Characteristics = append(p.Characteristics, schema.NewProductCharacteristic(description, value, opts...))
	return b
}

// SetDocumentPositionProductClassification records a classification entry;
// under the extended profile repeated calls accumulate.
func (b *Builder) SetDocumentPositionProductClassification(classCode, listID, listVersionID, className string) *Builder {
	if b.currentLine == nil {
		return b
	}
	p := b.product()
	pc := schema.NewProductClassification(classCode, listID, listVersionID, className)
	if b.profile.ListValued() {
		p.Classifications = append(p.Classifications, pc)
	} else {
		p.Classifications = []*schema.ProductClassification{pc}
	}
	return b
}

// AddDocumentPositionProductClassification appends a classification entry
// (extended profile only).
func (b *Builder) AddDocumentPositionProductClassification(classCode, listID, listVersionID, className string) *Builder {
	if b.currentLine == nil || !b.profile.ListValued() {
		return b
	}
	p := b.product()
	p.Classifications = append(p.Classifications, schema.NewProductClassification(classCode, listID, listVersionID, className))
	return b
}

// SetDocumentPositionProductInstance records a product instance; under the
// extended profile repeated calls accumulate.
func (b *Builder) SetDocumentPositionProductInstance(batchID, serialID string) *Builder {
	if b.currentLine == nil {
		return b
	}
	p := b.product()
	pi := schema.NewProductInstance(batchID, serialID)
	if b.profile.ListValued() {
		p.Instances = append(p.Instances, pi)
	} else {
		p.Instances = []*schema.ProductInstance{pi}
	}
	return b
}

// AddDocumentPositionProductInstance appends a product instance (extended
// profile only).
func (b *Builder) AddDocumentPositionProductInstance(batchID, serialID string) *Builder {
	if b.currentLine == nil || !b.profile.ListValued() {
		return b
	}
	p := b.product()
	p.Instances = append(p.Instances, schema.NewProductInstance(batchID, serialID))
	return b
}

// SetDocumentPositionApplicableSupplyChainPackaging replaces the packaging
// block of the current product.
func (b *Builder) SetDocumentPositionApplicableSupplyChainPackaging(typeCode string, opts ...schema.PackagingOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.product().Packaging = schema.NewPackaging(typeCode, opts...)
	return b
}

// SetDocumentPositionProductOriginTradeCountry sets the product origin
// country.
func (b *Builder) SetDocumentPositionProductOriginTradeCountry(country string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.product().OriginCountry = &schema.TradeCountry{ID: country}
	return b
}

// SetDocumentPositionProductReferencedDocument records a document
// reference on the product; under the extended profile repeated calls
// accumulate.
func (b *Builder) SetDocumentPositionProductReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.setOrAddRef(&b.product().ReferencedDocuments, schema.NewReferencedDocument(id, opts...))
	return b
}

// AddDocumentPositionProductReferencedDocument appends a document
// reference on the product (extended profile only).
func (b *Builder) AddDocumentPositionProductReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.addRef(&b.product().ReferencedDocuments, schema.NewReferencedDocument(id, opts...))
	return b
}

// AddDocumentPositionAdditionalReferencedDocument appends an additional
// reference to the line agreement. This slot is repeatable in every
// profile.
func (b *Builder) AddDocumentPositionAdditionalReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	la := b.lineAgreement()
	la.AdditionalRefs = append(la.AdditionalRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// SetDocumentPositionBuyerOrderReferencedDocument points the line at the
// corresponding line of the buyer's order.
func (b *Builder) SetDocumentPositionBuyerOrderReferencedDocument(lineID string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineAgreement().BuyerOrderRef = schema.NewReferencedDocument("", schema.WithLineID(lineID))
	return b
}

// SetDocumentPositionQuotationReferencedDocument points the line at a
// quotation (line).
func (b *Builder) SetDocumentPositionQuotationReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineAgreement().QuotationRef = schema.NewReferencedDocument(id, opts...)
	return b
}

// SetDocumentPositionCatalogueReferencedDocument points the line at a
// catalogue entry; under the extended profile repeated calls accumulate.
func (b *Builder) SetDocumentPositionCatalogueReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.setOrAddRef(&b.lineAgreement().CatalogueRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// AddDocumentPositionCatalogueReferencedDocument appends a catalogue
// reference (extended profile only).
func (b *Builder) AddDocumentPositionCatalogueReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.addRef(&b.lineAgreement().CatalogueRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// SetDocumentPositionBlanketOrderReferencedDocument points the line at the
// corresponding line of a blanket order.
func (b *Builder) SetDocumentPositionBlanketOrderReferencedDocument(lineID string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineAgreement().BlanketOrderRef = schema.NewReferencedDocument("", schema.WithLineID(lineID))
	return b
}

// SetDocumentPositionGrossPrice sets the gross unit price of the current
// line. An optional basis quantity is given through the variadic pair.
func (b *Builder) SetDocumentPositionGrossPrice(amount decimal.Decimal) *Builder {
	if b.currentLine == nil {
		return b
	}
	la := b.lineAgreement()
	if la.GrossPrice == nil {
		la.GrossPrice = &schema.TradePrice{}
	}
	la.GrossPrice.ChargeAmount = schema.NewAmount(amount)
	return b
}

// SetDocumentPositionGrossPriceBasisQuantity sets the quantity the gross
// price refers to. No-op before SetDocumentPositionGrossPrice.
func (b *Builder) SetDocumentPositionGrossPriceBasisQuantity(quantity decimal.Decimal, unit string) *Builder {
	if b.currentLine == nil {
		return b
	}
	la := b.lineAgreement()
	if la.GrossPrice == nil {
		return b
	}
	la.GrossPrice.BasisQuantity = schema.NewQuantity(quantity, unit)
	return b
}

// AddDocumentPositionGrossPriceAllowanceCharge appends a price-level
// allowance or charge to the gross price. No-op before
// SetDocumentPositionGrossPrice.
func (b *Builder) AddDocumentPositionGrossPriceAllowanceCharge(actualAmount decimal.Decimal, isCharge bool, opts ...schema.AllowanceChargeOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	la := b.lineAgreement()
	if la.GrossPrice == nil {
		return b
	}
	la.GrossPrice.AllowanceCharges = append(la.GrossPrice.AllowanceCharges, schema.NewAllowanceCharge(actualAmount, isCharge, opts...))
	return b
}

// SetDocumentPositionNetPrice sets the net unit price of the current line.
func (b *Builder) SetDocumentPositionNetPrice(amount decimal.Decimal) *Builder {
	if b.currentLine == nil {
		return b
	}
	la := b.lineAgreement()
	if la.NetPrice == nil {
		la.NetPrice = &schema.TradePrice{}
	}
	la.NetPrice.ChargeAmount = schema.NewAmount(amount)
	return b
}

// SetDocumentPositionNetPriceBasisQuantity sets the quantity the net price
// refers to. No-op before SetDocumentPositionNetPrice.
func (b *Builder) SetDocumentPositionNetPriceBasisQuantity(quantity decimal.Decimal, unit string) *Builder {
	if b.currentLine == nil {
		return b
	}
	la := b.lineAgreement()
	if la.NetPrice == nil {
		return b
	}
	la.NetPrice.BasisQuantity = schema.NewQuantity(quantity, unit)
	return b
}

// SetDocumentPositionPartialDelivery sets whether partial delivery is
// allowed for the current line.
func (b *Builder) SetDocumentPositionPartialDelivery(allowed bool) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineDelivery().PartialDeliveryAllowed = &schema.Indicator{Value: allowed}
	return b
}

// SetDocumentPositionDeliverRequestedQuantity sets the requested quantity
// of the current line.
func (b *Builder) SetDocumentPositionDeliverRequestedQuantity(quantity decimal.Decimal, unit string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineDelivery().RequestedQuantity = schema.NewQuantity(quantity, unit)
	return b
}

// SetDocumentPositionDeliverAgreedQuantity sets the agreed quantity of the
// current line.
func (b *Builder) SetDocumentPositionDeliverAgreedQuantity(quantity decimal.Decimal, unit string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineDelivery().AgreedQuantity = schema.NewQuantity(quantity, unit)
	return b
}

// SetDocumentPositionDeliverPackageQuantity sets the package count of the
// current line.
func (b *Builder) SetDocumentPositionDeliverPackageQuantity(quantity decimal.Decimal, unit string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineDelivery().PackageQuantity = schema.NewQuantity(quantity, unit)
	return b
}

// SetDocumentPositionDeliverPerPackageQuantity sets the units per package
// of the current line.
func (b *Builder) SetDocumentPositionDeliverPerPackageQuantity(quantity decimal.Decimal, unit string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineDelivery().PerPackageUnitQuantity = schema.NewQuantity(quantity, unit)
	return b
}

// AddDocumentPositionRequestedDeliverySupplyChainEvent appends a requested
// delivery event to the current line.
func (b *Builder) AddDocumentPositionRequestedDeliverySupplyChainEvent(opts ...schema.SupplyChainEventOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	ld := b.lineDelivery()
	ld.RequestedEvents = append(ld.RequestedEvents, schema.NewSupplyChainEvent(opts...))
	return b
}

// SetDocumentPositionTax records a tax entry in the line settlement; under
// the extended profile repeated calls accumulate.
func (b *Builder) SetDocumentPositionTax(categoryCode, typeCode string, ratePercent decimal.Decimal, opts ...schema.TradeTaxOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	ls := b.lineSettlement()
	tax := schema.NewTradeTax(categoryCode, typeCode, ratePercent, opts...)
	if b.profile.ListValued() {
		ls.Taxes = append(ls.Taxes, tax)
	} else {
		ls.Taxes = []*schema.TradeTax{tax}
	}
	return b
}

// AddDocumentPositionTax appends a tax entry to the line settlement
// (extended profile only).
func (b *Builder) AddDocumentPositionTax(categoryCode, typeCode string, ratePercent decimal.Decimal, opts ...schema.TradeTaxOption) *Builder {
	if b.currentLine == nil || !b.profile.ListValued() {
		return b
	}
	ls := b.lineSettlement()
	ls.Taxes = append(ls.Taxes, schema.NewTradeTax(categoryCode, typeCode, ratePercent, opts...))
	return b
}

// AddDocumentPositionAllowanceCharge appends a line-level allowance or
// charge.
func (b *Builder) AddDocumentPositionAllowanceCharge(actualAmount decimal.Decimal, isCharge bool, opts ...schema.AllowanceChargeOption) *Builder {
	if b.currentLine == nil {
		return b
	}
	ls := b.lineSettlement()
	ls.AllowanceCharges = append(ls.AllowanceCharges, schema.NewAllowanceCharge(actualAmount, isCharge, opts...))
	return b
}

// SetDocumentPositionLineSummation sets the line total of the current
// line.
func (b *Builder) SetDocumentPositionLineSummation(lineTotal decimal.Decimal) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineSettlement().Summation = schema.NewLineMonetarySummation(lineTotal)
	return b
}

// SetDocumentPositionLineSummationWithAllowanceCharge sets the line total
// together with the net allowance/charge total of the line.
func (b *Builder) SetDocumentPositionLineSummationWithAllowanceCharge(lineTotal, allowanceChargeTotal decimal.Decimal) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineSettlement().Summation = schema.NewLineMonetarySummationWithAllowanceCharge(lineTotal, allowanceChargeTotal)
	return b
}

// SetDocumentPositionReceivableTradeAccountingAccount sets the cost
// account of the current line.
func (b *Builder) SetDocumentPositionReceivableTradeAccountingAccount(id string) *Builder {
	if b.currentLine == nil {
		return b
	}
	b.lineSettlement().AccountingAccount = schema.NewAccountingAccount(id)
	return b
}

// The line sub-containers are optional in the schema and are created on
// first use.

func (b *Builder) product() *schema.TradeProduct {
	line := b.currentLine
	if line.Product == nil {
		line.Product = &schema.TradeProduct{}
	}
	return line.Product
}

func (b *Builder) lineAgreement() *schema.LineTradeAgreement {
	line := b.currentLine
	if line.Agreement == nil {
		line.Agreement = &schema.LineTradeAgreement{}
	}
	return line.Agreement
}

func (b *Builder) lineDelivery() *schema.LineTradeDelivery {
	line := b.currentLine
	if line.Delivery == nil {
		line.Delivery = &schema.LineTradeDelivery{}
	}
	return line.Delivery
}

func (b *Builder) lineSettlement() *schema.LineTradeSettlement {
	line := b.currentLine
	if line.Settlement == nil {
		line.Settlement = &schema.LineTradeSettlement{}
	}
	return line.Settlement
}
