package builder

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/orderx-go/orderx/schema"
)

func TestAddNewPosition(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddNewPosition("1", "")
	b.AddNewPosition("2", "5")

	lines := b.Document().Transaction.LineItems
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "1", lines[0].LineDocument.LineID)
	assert.Equal(t, "2", lines[1].LineDocument.LineID)
	assert.Equal(t, "5", lines[1].LineDocument.LineStatusCode)
}

func TestLineOperationsNoopBeforeFirstPosition(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddDocumentPositionNote("note", "")
	b.SetDocumentPositionProductDetails("Widget", "", "", "", "", "")
	b.SetDocumentPositionProductIndustryAssignedID("IND-300")
	b.SetDocumentPositionNetPrice(decimal.RequireFromString("9.50"))
	b.SetDocumentPositionDeliverRequestedQuantity(decimal.RequireFromString("10"), "C62")
	b.SetDocumentPositionTax("S", "VAT", decimal.RequireFromString("19"))
	b.SetDocumentPositionLineSummation(decimal.RequireFromString("95.00"))

	assert.Equal(t, 0, len(b.Document().Transaction.LineItems))
}

func TestLineOperationsTargetCurrentPosition(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddNewPosition("1", "")
	b.SetDocumentPositionNetPrice(decimal.RequireFromString("9.50"))
	b.AddNewPosition("2", "")
	b.SetDocumentPositionNetPrice(decimal.RequireFromString("4.25"))

	lines := b.Document().Transaction.LineItems
	assert.Equal(t, "9.50", lines[0].Agreement.NetPrice.ChargeAmount.Value)
	assert.Equal(t, "4.25", lines[1].Agreement.NetPrice.ChargeAmount.Value)
}

func TestPositionProductDetails(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddNewPosition("1", "")
	b.SetDocumentPositionProductDetails("Widget", "A standard widget", "W-100", "B-200", "4012345000001", "0160")
	b.SetDocumentPositionProductBatchID("LOT-7")
	b.SetDocumentPositionProductBrandName("AcmeWidget")
	b.SetDocumentPositionProductIndustryAssignedID("IND-300")
	b.SetDocumentPositionProductOriginTradeCountry("DE")

	p := b.Document().Transaction.LineItems[0].Product
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "A standard widget", p.Description)
	assert.Equal(t, "W-100", p.SellerAssignedID)
	assert.Equal(t, "B-200", p.BuyerAssignedID)
	assert.Equal(t, "4012345000001", p.GlobalID.Value)
	assert.Equal(t, "0160", p.GlobalID.SchemeID)
	assert.Equal(t, "LOT-7", p.BatchID)
	assert.Equal(t, "AcmeWidget", p.BrandName)
	assert.Equal(t, "IND-300", p.IndustryAssignedID)
	assert.Equal(t, "DE", p.OriginCountry.ID)
}

func TestPositionProductDetailsEmptyGlobalID(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddNewPosition("1", "")
	b.SetDocumentPositionProductDetails("Widget", "", "", "", "", "")

	assert.Zero(t, b.Document().Transaction.LineItems[0].Product.GlobalID)
}

func TestPositionProductCharacteristics(t *testing.T) {
	t.Run("SetReplacesBelowExtended", func(t *testing.T) {
		b := New(schema.ProfileComfort)
		b.AddNewPosition("1", "")
		b.SetDocumentPositionProductCharacteristic("Color", "red")
		b.SetDocumentPositionProductCharacteristic("Color", "blue")
		b.AddDocumentPositionProductCharacteristic("Weight", "2kg")

		chars := b.Document().Transaction.LineItems[0].Product.Characteristics
		assert.Equal(t, 1, len(chars))
		assert.Equal(t, "blue", chars[0].Value)
	})

	t.Run("AccumulateUnderExtended", func(t *testing.T) {
		b := New(schema.ProfileExtended)
		b.AddNewPosition("1", "")
		b.SetDocumentPositionProductCharacteristic("Color", "red")
		b.AddDocumentPositionProductCharacteristic("Weight", "2",
			schema.WithValueMeasure(decimal.RequireFromString("2"), "KGM"))

		chars := b.Document().Transaction.LineItems[0].Product.Characteristics
		assert.Equal(t, 2, len(chars))
		assert.Equal(t, "KGM", chars[1].ValueMeasure.UnitCode)
	})
}

func TestPositionProductClassifications(t *testing.T) {
	t.Run("SetReplacesBelowExtended", func(t *testing.T) {
		b := New(schema.ProfileComfort)
		b.AddNewPosition("1", "")
		b.SetDocumentPositionProductClassification("44111503", "TST", "", "")
		b.SetDocumentPositionProductClassification("44111504", "TST", "", "")

		cls := b.Document().Transaction.LineItems[0].Product.Classifications
		assert.Equal(t, 1, len(cls))
		assert.Equal(t, "44111504", cls[0].ClassCode.Value)
	})

	t.Run("AddAppendsUnderExtended", func(t *testing.T) {
		b := New(schema.ProfileExtended)
		b.AddNewPosition("1", "")
		b.SetDocumentPositionProductClassification("44111503", "TST", "", "")
		b.AddDocumentPositionProductClassification("44111504", "TST", "", "")

		cls := b.Document().Transaction.LineItems[0].Product.Classifications
		assert.Equal(t, 2, len(cls))
	})
}

func TestPositionProductInstances(t *testing.T) {
	b := New(schema.ProfileExtended)
	b.AddNewPosition("1", "")
	b.SetDocumentPositionProductInstance("LOT-1", "SN-001")
	b.AddDocumentPositionProductInstance("LOT-1", "SN-002")

	instances := b.Document().Transaction.LineItems[0].Product.Instances
	assert.Equal(t, 2, len(instances))
	assert.Equal(t, "SN-001", instances[0].SerialID)
	assert.Equal(t, "SN-002", instances[1].SerialID)
}

func TestPositionPackaging(t *testing.T) {
	b := New(schema.ProfileExtended)
	b.AddNewPosition("1", "")
	b.SetDocumentPositionApplicableSupplyChainPackaging("CT",
		schema.WithDimensions(
			decimal.RequireFromString("30"),
			decimal.RequireFromString("40"),
			decimal.RequireFromString("20"),
			"CMT",
		))

	pkg := b.Document().Transaction.LineItems[0].Product.Packaging
	assert.Equal(t, "CT", pkg.TypeCode)
	assert.Equal(t, "30", pkg.SpatialDimension.WidthMeasure.Value)
	assert.Equal(t, "40", pkg.SpatialDimension.LengthMeasure.Value)
	assert.Equal(t, "20", pkg.SpatialDimension.HeightMeasure.Value)
}

func TestPositionLineReferences(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddNewPosition("1", "")
	b.SetDocumentPositionBuyerOrderReferencedDocument("7")
	b.SetDocumentPositionBlanketOrderReferencedDocument("3")
	b.SetDocumentPositionQuotationReferencedDocument("Q-1", schema.WithLineID("2"))
	b.AddDocumentPositionAdditionalReferencedDocument("SPEC-9")

	la := b.Document().Transaction.LineItems[0].Agreement
	assert.Equal(t, "7", la.BuyerOrderRef.LineID)
	assert.Equal(t, "", la.BuyerOrderRef.IssuerAssignedID)
	assert.Equal(t, "3", la.BlanketOrderRef.LineID)
	assert.Equal(t, "Q-1", la.QuotationRef.IssuerAssignedID)
	assert.Equal(t, "2", la.QuotationRef.LineID)
	assert.Equal(t, 1, len(la.AdditionalRefs))
}

func TestPositionCatalogueReferences(t *testing.T) {
	t.Run("SetReplacesBelowExtended", func(t *testing.T) {
		b := New(schema.ProfileComfort)
		b.AddNewPosition("1", "")
		b.SetDocumentPositionCatalogueReferencedDocument("CAT-1")
		b.SetDocumentPositionCatalogueReferencedDocument("CAT-2")
		b.AddDocumentPositionCatalogueReferencedDocument("CAT-3")

		refs := b.Document().Transaction.LineItems[0].Agreement.CatalogueRefs
		assert.Equal(t, 1, len(refs))
		assert.Equal(t, "CAT-2", refs[0].IssuerAssignedID)
	})

	t.Run("AccumulateUnderExtended", func(t *testing.T) {
		b := New(schema.ProfileExtended)
		b.AddNewPosition("1", "")
		b.SetDocumentPositionCatalogueReferencedDocument("CAT-1")
		b.AddDocumentPositionCatalogueReferencedDocument("CAT-2")

		refs := b.Document().Transaction.LineItems[0].Agreement.CatalogueRefs
		assert.Equal(t, 2, len(refs))
	})
}

func TestPositionPrices(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddNewPosition("1", "")
	b.SetDocumentPositionGrossPrice(decimal.RequireFromString("10.00"))
	b.SetDocumentPositionGrossPriceBasisQuantity(decimal.NewFromInt(1), "C62")
	b.AddDocumentPositionGrossPriceAllowanceCharge(decimal.RequireFromString("0.50"), false)
	b.SetDocumentPositionNetPrice(decimal.RequireFromString("9.50"))
	b.SetDocumentPositionNetPriceBasisQuantity(decimal.NewFromInt(1), "C62")

	la := b.Document().Transaction.LineItems[0].Agreement
	assert.Equal(t, "10.00", la.GrossPrice.ChargeAmount.Value)
	assert.Equal(t, "1", la.GrossPrice.BasisQuantity.Value)
	assert.Equal(t, 1, len(la.GrossPrice.AllowanceCharges))
	assert.False(t, la.GrossPrice.AllowanceCharges[0].ChargeIndicator.Value)
	assert.Equal(t, "9.50", la.NetPrice.ChargeAmount.Value)
	assert.Equal(t, "C62", la.NetPrice.BasisQuantity.UnitCode)
}

func TestPositionBasisQuantityNoopBeforePrice(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddNewPosition("1", "")
	b.SetDocumentPositionGrossPriceBasisQuantity(decimal.NewFromInt(1), "C62")
	b.SetDocumentPositionNetPriceBasisQuantity(decimal.NewFromInt(1), "C62")
	b.AddDocumentPositionGrossPriceAllowanceCharge(decimal.RequireFromString("0.50"), false)

	la := b.Document().Transaction.LineItems[0].Agreement
	assert.Zero(t, la.GrossPrice)
	assert.Zero(t, la.NetPrice)
}

func TestPositionDelivery(t *testing.T) {
	window := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	b := New(schema.ProfileComfort)
	b.AddNewPosition("1", "")
	b.SetDocumentPositionPartialDelivery(true)
	b.SetDocumentPositionDeliverRequestedQuantity(decimal.RequireFromString("10.0"), "C62")
	b.SetDocumentPositionDeliverAgreedQuantity(decimal.RequireFromString("8.0"), "C62")
	b.SetDocumentPositionDeliverPackageQuantity(decimal.NewFromInt(2), "CT")
	b.SetDocumentPositionDeliverPerPackageQuantity(decimal.NewFromInt(5), "C62")
	b.AddDocumentPositionRequestedDeliverySupplyChainEvent(schema.WithOccurrence(window))

	ld := b.Document().Transaction.LineItems[0].Delivery
	assert.True(t, ld.PartialDeliveryAllowed.Value)
	assert.Equal(t, "10.0", ld.RequestedQuantity.Value)
	assert.Equal(t, "8.0", ld.AgreedQuantity.Value)
	assert.Equal(t, "2", ld.PackageQuantity.Value)
	assert.Equal(t, "5", ld.PerPackageUnitQuantity.Value)
	assert.Equal(t, 1, len(ld.RequestedEvents))
	assert.Equal(t, "20240401", ld.RequestedEvents[0].OccurrenceDateTime.DateTimeString.Value)
}

func TestPositionTax(t *testing.T) {
	t.Run("SetReplacesBelowExtended", func(t *testing.T) {
		b := New(schema.ProfileComfort)
		b.AddNewPosition("1", "")
		b.SetDocumentPositionTax("S", "VAT", decimal.RequireFromString("19"))
		b.SetDocumentPositionTax("S", "VAT", decimal.RequireFromString("7"))
		b.AddDocumentPositionTax("E", "VAT", decimal.Zero)

		taxes := b.Document().Transaction.LineItems[0].Settlement.Taxes
		assert.Equal(t, 1, len(taxes))
		assert.Equal(t, "7", taxes[0].RateApplicablePercent)
	})

	t.Run("AccumulateUnderExtended", func(t *testing.T) {
		b := New(schema.ProfileExtended)
		b.AddNewPosition("1", "")
		b.SetDocumentPositionTax("S", "VAT", decimal.RequireFromString("19"))
		b.AddDocumentPositionTax("E", "VAT", decimal.Zero)

		taxes := b.Document().Transaction.LineItems[0].Settlement.Taxes
		assert.Equal(t, 2, len(taxes))
		assert.Equal(t, "E", taxes[1].CategoryCode)
	})
}

func TestPositionSettlement(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddNewPosition("1", "")
	b.AddDocumentPositionAllowanceCharge(decimal.RequireFromString("1.00"), true,
		schema.WithReason("FC", "Freight"))
	b.SetDocumentPositionLineSummationWithAllowanceCharge(
		decimal.RequireFromString("96.00"),
		decimal.RequireFromString("1.00"),
	)
	b.SetDocumentPositionReceivableTradeAccountingAccount("COST-42")

	ls := b.Document().Transaction.LineItems[0].Settlement
	assert.Equal(t, 1, len(ls.AllowanceCharges))
	assert.True(t, ls.AllowanceCharges[0].ChargeIndicator.Value)
	assert.Equal(t, "96.00", ls.Summation.LineTotalAmount.Value)
	assert.Equal(t, "1.00", ls.Summation.TotalAllowanceChargeAmount.Value)
	assert.Equal(t, "COST-42", ls.AccountingAccount.ID)
}

func TestPositionNotes(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.AddNewPosition("1", "")
	b.AddDocumentPositionNote("Handle with care.", "")
	b.AddDocumentPositionNote("Fragile.", "PKG")

	notes := b.Document().Transaction.LineItems[0].LineDocument.IncludedNote
	assert.Equal(t, 2, len(notes))
	assert.Equal(t, "PKG", notes[1].SubjectCode)
}

func TestPositionProductReferencedDocuments(t *testing.T) {
	t.Run("SetReplacesBelowExtended", func(t *testing.T) {
		b := New(schema.ProfileComfort)
		b.AddNewPosition("1", "")
		b.SetDocumentPositionProductReferencedDocument("IMG-1", schema.WithURIID("https://example.com/img-1.png"))
		b.SetDocumentPositionProductReferencedDocument("IMG-2")

		refs := b.Document().Transaction.LineItems[0].Product.ReferencedDocuments
		assert.Equal(t, 1, len(refs))
		assert.Equal(t, "IMG-2", refs[0].IssuerAssignedID)
	})

	t.Run("AddAppendsUnderExtended", func(t *testing.T) {
		b := New(schema.ProfileExtended)
		b.AddNewPosition("1", "")
		b.SetDocumentPositionProductReferencedDocument("IMG-1")
		b.AddDocumentPositionProductReferencedDocument("IMG-2")

		refs := b.Document().Transaction.LineItems[0].Product.ReferencedDocuments
		assert.Equal(t, 2, len(refs))
	})
}
