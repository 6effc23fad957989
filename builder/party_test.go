package builder

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/orderx-go/orderx/schema"
)

// partyRole bundles the composer methods of one role with an accessor for
// the slot the role occupies, so one table covers all six roles.
type partyRole struct {
	name       string
	set        func(*Builder, string, string, string) *Builder
	addGlobal  func(*Builder, string, string) *Builder
	addTaxReg  func(*Builder, string, string) *Builder
	setAddress func(*Builder, string) *Builder
	setContact func(*Builder, string) *Builder
	addContact func(*Builder, string) *Builder
	get        func(*Builder) *schema.TradeParty
}

func partyRoles() []partyRole {
	return []partyRole{
		{
			name: "Seller",
			set:  (*Builder).SetDocumentSeller,
			addGlobal: func(b *Builder, id, scheme string) *Builder {
				return b.AddDocumentSellerGlobalID(id, scheme)
			},
			addTaxReg: func(b *Builder, scheme, id string) *Builder {
				return b.AddDocumentSellerTaxRegistration(scheme, id)
			},
			setAddress: func(b *Builder, city string) *Builder {
				return b.SetDocumentSellerAddress("", "", "", "", city, "DE", "")
			},
			setContact: func(b *Builder, person string) *Builder {
				return b.SetDocumentSellerContact(person, "", "", "", "", "")
			},
			addContact: func(b *Builder, person string) *Builder {
				return b.AddDocumentSellerContact(person, "", "", "", "", "")
			},
			get: func(b *Builder) *schema.TradeParty {
				return b.Document().Transaction.Agreement.SellerTradeParty
			},
		},
		{
			name: "Buyer",
			set:  (*Builder).SetDocumentBuyer,
			addGlobal: func(b *Builder, id, scheme string) *Builder {
				return b.AddDocumentBuyerGlobalID(id, scheme)
			},
			addTaxReg: func(b *Builder, scheme, id string) *Builder {
				return b.AddDocumentBuyerTaxRegistration(scheme, id)
			},
			setAddress: func(b *Builder, city string) *Builder {
				return b.SetDocumentBuyerAddress("", "", "", "", city, "DE", "")
			},
			setContact: func(b *Builder, person string) *Builder {
				return b.SetDocumentBuyerContact(person, "", "", "", "", "")
			},
			addContact: func(b *Builder, person string) *Builder {
				return b.AddDocumentBuyerContact(person, "", "", "", "", "")
			},
			get: func(b *Builder) *schema.TradeParty {
				return b.Document().Transaction.Agreement.BuyerTradeParty
			},
		},
		{
			name: "BuyerRequisitioner",
			set:  (*Builder).SetDocumentBuyerRequisitioner,
			addGlobal: func(b *Builder, id, scheme string) *Builder {
				return b.AddDocumentBuyerRequisitionerGlobalID(id, scheme)
			},
			addTaxReg: func(b *Builder, scheme, id string) *Builder {
				return b.AddDocumentBuyerRequisitionerTaxRegistration(scheme, id)
			},
			setAddress: func(b *Builder, city string) *Builder {
				return b.SetDocumentBuyerRequisitionerAddress("", "", "", "", city, "DE", "")
			},
			setContact: func(b *Builder, person string) *Builder {
				return b.SetDocumentBuyerRequisitionerContact(person, "", "", "", "", "")
			},
			addContact: func(b *Builder, person string) *Builder {
				return b.AddDocumentBuyerRequisitionerContact(person, "", "", "", "", "")
			},
			get: func(b *Builder) *schema.TradeParty {
				return b.Document().Transaction.Agreement.BuyerRequisitionerTradeParty
			},
		},
		{
			name: "ShipTo",
			set:  (*Builder).SetDocumentShipTo,
			addGlobal: func(b *Builder, id, scheme string) *Builder {
				return b.AddDocumentShipToGlobalID(id, scheme)
			},
			addTaxReg: func(b *Builder, scheme, id string) *Builder {
				return b.AddDocumentShipToTaxRegistration(scheme, id)
			},
			setAddress: func(b *Builder, city string) *Builder {
				return b.SetDocumentShipToAddress("", "", "", "", city, "DE", "")
			},
			setContact: func(b *Builder, person string) *Builder {
				return b.SetDocumentShipToContact(person, "", "", "", "", "")
			},
			addContact: func(b *Builder, person string) *Builder {
				return b.AddDocumentShipToContact(person, "", "", "", "", "")
			},
			get: func(b *Builder) *schema.TradeParty {
				return b.Document().Transaction.Delivery.ShipToTradeParty
			},
		},
		{
			name: "ShipFrom",
			set:  (*Builder).SetDocumentShipFrom,
			addGlobal: func(b *Builder, id, scheme string) *Builder {
				return b.AddDocumentShipFromGlobalID(id, scheme)
			},
			addTaxReg: func(b *Builder, scheme, id string) *Builder {
				return b.AddDocumentShipFromTaxRegistration(scheme, id)
			},
			setAddress: func(b *Builder, city string) *Builder {
				return b.SetDocumentShipFromAddress("", "", "", "", city, "DE", "")
			},
			setContact: func(b *Builder, person string) *Builder {
				return b.SetDocumentShipFromContact(person, "", "", "", "", "")
			},
			addContact: func(b *Builder, person string) *Builder {
				return b.AddDocumentShipFromContact(person, "", "", "", "", "")
			},
			get: func(b *Builder) *schema.TradeParty {
				return b.Document().Transaction.Delivery.ShipFromTradeParty
			},
		},
		{
			name: "Invoicee",
			set:  (*Builder).SetDocumentInvoicee,
			addGlobal: func(b *Builder, id, scheme string) *Builder {
				return b.AddDocumentInvoiceeGlobalID(id, scheme)
			},
			addTaxReg: func(b *Builder, scheme, id string) *Builder {
				return b.AddDocumentInvoiceeTaxRegistration(scheme, id)
			},
			setAddress: func(b *Builder, city string) *Builder {
				return b.SetDocumentInvoiceeAddress("", "", "", "", city, "DE", "")
			},
			setContact: func(b *Builder, person string) *Builder {
				return b.SetDocumentInvoiceeContact(person, "", "", "", "", "")
			},
			addContact: func(b *Builder, person string) *Builder {
				return b.AddDocumentInvoiceeContact(person, "", "", "", "", "")
			},
			get: func(b *Builder) *schema.TradeParty {
				return b.Document().Transaction.Settlement.InvoiceeTradeParty
			},
		},
	}
}

func TestSetParty(t *testing.T) {
	for _, role := range partyRoles() {
		t.Run(role.name, func(t *testing.T) {
			b := New(schema.ProfileComfort)
			role.set(b, "Acme GmbH", "549910", "Head office")

			party := role.get(b)
			assert.NotZero(t, party)
			assert.Equal(t, "Acme GmbH", party.Name)
			assert.Equal(t, "549910", party.ID.Value)
			assert.Equal(t, "Head office", party.Description)
		})
	}
}

func TestSetPartyReplacesPrevious(t *testing.T) {
	for _, role := range partyRoles() {
		t.Run(role.name, func(t *testing.T) {
			b := New(schema.ProfileComfort)
			role.set(b, "First", "", "")
			role.addGlobal(b, "4000001000005", "0088")
			role.set(b, "Second", "", "")

			party := role.get(b)
			assert.Equal(t, "Second", party.Name)
			assert.Equal(t, 0, len(party.GlobalIDs))
		})
	}
}

func TestPartySubOperationsNoopWithoutParty(t *testing.T) {
	for _, role := range partyRoles() {
		t.Run(role.name, func(t *testing.T) {
			b := New(schema.ProfileComfort)
			role.addGlobal(b, "4000001000005", "0088")
			role.addTaxReg(b, "VA", "DE123456789")
			role.setAddress(b, "Berlin")
			role.setContact(b, "Jane Doe")
			role.addContact(b, "John Doe")

			assert.Zero(t, role.get(b))
		})
	}
}

func TestPartyGlobalIDsAccumulate(t *testing.T) {
	for _, role := range partyRoles() {
		t.Run(role.name, func(t *testing.T) {
			b := New(schema.ProfileComfort)
			role.set(b, "Acme GmbH", "", "")
			role.addGlobal(b, "4000001000005", "0088")
			role.addGlobal(b, "DE-ACME", "0198")

			party := role.get(b)
			assert.Equal(t, 2, len(party.GlobalIDs))
			assert.Equal(t, "4000001000005", party.GlobalIDs[0].Value)
			assert.Equal(t, "0088", party.GlobalIDs[0].SchemeID)
			assert.Equal(t, "0198", party.GlobalIDs[1].SchemeID)
		})
	}
}

func TestPartyTaxRegistrationsAccumulate(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.SetDocumentSeller("Acme GmbH", "", "")
	b.AddDocumentSellerTaxRegistration("VA", "DE123456789")
	b.AddDocumentSellerTaxRegistration("FC", "201/113/40209")

	regs := b.Document().Transaction.Agreement.SellerTradeParty.TaxRegistrations
	assert.Equal(t, 2, len(regs))
	assert.Equal(t, "VA", regs[0].ID.SchemeID)
	assert.Equal(t, "DE123456789", regs[0].ID.Value)
	assert.Equal(t, "FC", regs[1].ID.SchemeID)
}

func TestPartyAddressReplaces(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.SetDocumentSeller("Acme GmbH", "", "")
	b.SetDocumentSellerAddress("Main St 1", "", "", "10117", "Berlin", "DE", "")
	b.SetDocumentSellerAddress("Other St 2", "", "", "80331", "Munich", "DE", "BY")

	addr := b.Document().Transaction.Agreement.SellerTradeParty.PostalAddress
	assert.Equal(t, "Other St 2", addr.LineOne)
	assert.Equal(t, "Munich", addr.CityName)
	assert.Equal(t, "BY", addr.CountrySubDivisionName)
}

func TestPartyLegalOrganisation(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.SetDocumentBuyer("Buyer Inc", "", "")
	b.SetDocumentBuyerLegalOrganisation("HRB 12345", "0002", "Buyer Holding Inc")

	legal := b.Document().Transaction.Agreement.BuyerTradeParty.LegalOrganization
	assert.Equal(t, "HRB 12345", legal.ID.Value)
	assert.Equal(t, "0002", legal.ID.SchemeID)
	assert.Equal(t, "Buyer Holding Inc", legal.TradingBusinessName)
}

func TestPartyUniversalCommunication(t *testing.T) {
	b := New(schema.ProfileComfort)
	b.SetDocumentSeller("Acme GmbH", "", "")
	b.SetDocumentSellerUniversalCommunication("sales@acme.example", "EM")

	uri := b.Document().Transaction.Agreement.SellerTradeParty.URICommunication
	assert.Equal(t, "sales@acme.example", uri.URIID.Value)
	assert.Equal(t, "EM", uri.URIID.SchemeID)
}

func TestPartyContacts(t *testing.T) {
	t.Run("SetReplacesBelowExtended", func(t *testing.T) {
		b := New(schema.ProfileComfort)
		b.SetDocumentSeller("Acme GmbH", "", "")
		b.SetDocumentSellerContact("Jane Doe", "", "", "", "", "")
		b.SetDocumentSellerContact("John Doe", "", "", "", "", "")

		contacts := b.Document().Transaction.Agreement.SellerTradeParty.Contacts
		assert.Equal(t, 1, len(contacts))
		assert.Equal(t, "John Doe", contacts[0].PersonName)
	})

	t.Run("AddIsNoopBelowExtended", func(t *testing.T) {
		b := New(schema.ProfileComfort)
		b.SetDocumentSeller("Acme GmbH", "", "")
		b.SetDocumentSellerContact("Jane Doe", "", "", "", "", "")
		b.AddDocumentSellerContact("John Doe", "", "", "", "", "")

		contacts := b.Document().Transaction.Agreement.SellerTradeParty.Contacts
		assert.Equal(t, 1, len(contacts))
	})

	t.Run("AddAppendsUnderExtended", func(t *testing.T) {
		b := New(schema.ProfileExtended)
		b.SetDocumentSeller("Acme GmbH", "", "")
		b.SetDocumentSellerContact("Jane Doe", "", "", "", "", "")
		b.AddDocumentSellerContact("John Doe", "", "", "", "", "")

		contacts := b.Document().Transaction.Agreement.SellerTradeParty.Contacts
		assert.Equal(t, 2, len(contacts))
		assert.Equal(t, "Jane Doe", contacts[0].PersonName)
		assert.Equal(t, "John Doe", contacts[1].PersonName)
	})

	t.Run("SetReplacesPrimaryUnderExtended", func(t *testing.T) {
		b := New(schema.ProfileExtended)
		b.SetDocumentSeller("Acme GmbH", "", "")
		b.SetDocumentSellerContact("Jane Doe", "", "", "", "", "")
		b.AddDocumentSellerContact("John Doe", "", "", "", "", "")
		b.SetDocumentSellerContact("Janet Doe", "", "", "", "", "")

		contacts := b.Document().Transaction.Agreement.SellerTradeParty.Contacts
		assert.Equal(t, 2, len(contacts))
		assert.Equal(t, "Janet Doe", contacts[0].PersonName)
		assert.Equal(t, "John Doe", contacts[1].PersonName)
	})
}
