package builder

import "github.com/orderx-go/orderx/schema"

// The six party roles share one composition pattern: the Set method
// creates the party and claims its header slot, and every sub-structure
// operation fetches the party first and silently skips the mutation when
// it is absent. The helpers at the bottom of this file implement that
// pattern once; the exported per-role methods are thin wrappers.

// SetDocumentSeller creates the seller party and assigns it to the
// agreement, replacing any previous seller. The id and description are
// optional; pass empty strings to leave them unset.
func (b *Builder) SetDocumentSeller(name, id, description string) *Builder {
	b.agreement().SellerTradeParty = schema.NewTradeParty(name, id, description)
	return b
}

// AddDocumentSellerGlobalID appends a global id (e.g. a GLN under scheme
// "0088") to the seller. No-op while no seller is set.
func (b *Builder) AddDocumentSellerGlobalID(globalID, scheme string) *Builder {
	addPartyGlobalID(b.agreement().SellerTradeParty, globalID, scheme)
	return b
}

// AddDocumentSellerTaxRegistration appends a tax registration ("VA" or
// "FC" scheme plus the number) to the seller. No-op while no seller is
// set.
func (b *Builder) AddDocumentSellerTaxRegistration(scheme, id string) *Builder {
	addPartyTaxRegistration(b.agreement().SellerTradeParty, scheme, id)
	return b
}

// SetDocumentSellerAddress replaces the seller's postal address in full.
// No-op while no seller is set.
func (b *Builder) SetDocumentSellerAddress(lineOne, lineTwo, lineThree, postcode, city, country, subdivision string) *Builder {
	setPartyAddress(b.agreement().SellerTradeParty, lineOne, lineTwo, lineThree, postcode, city, country, subdivision)
	return b
}

// SetDocumentSellerLegalOrganisation replaces the seller's legal
// organization entry. No-op while no seller is set.
func (b *Builder) SetDocumentSellerLegalOrganisation(id, scheme, name string) *Builder {
	setPartyLegalOrganization(b.agreement().SellerTradeParty, id, scheme, name)
	return b
}

// SetDocumentSellerContact replaces the seller's primary contact: the sole
// contact below the extended profile, element 0 of the contact list under
// it. No-op while no seller is set.
func (b *Builder) SetDocumentSellerContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.setPartyContact(b.agreement().SellerTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// AddDocumentSellerContact appends a further contact to the seller. Only
// meaningful under the extended profile; a no-op below it and while no
// seller is set.
func (b *Builder) AddDocumentSellerContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.addPartyContact(b.agreement().SellerTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// SetDocumentSellerUniversalCommunication sets the seller's electronic
// address endpoint. No-op while no seller is set.
func (b *Builder) SetDocumentSellerUniversalCommunication(uriID, scheme string) *Builder {
	setPartyURICommunication(b.agreement().SellerTradeParty, uriID, scheme)
	return b
}

// SetDocumentBuyer creates the buyer party, replacing any previous buyer.
func (b *Builder) SetDocumentBuyer(name, id, description string) *Builder {
	b.agreement().BuyerTradeParty = schema.NewTradeParty(name, id, description)
	return b
}

// AddDocumentBuyerGlobalID appends a global id to the buyer.
func (b *Builder) AddDocumentBuyerGlobalID(globalID, scheme string) *Builder {
	addPartyGlobalID(b.agreement().BuyerTradeParty, globalID, scheme)
	return b
}

// AddDocumentBuyerTaxRegistration appends a tax registration to the buyer.
func (b *Builder) AddDocumentBuyerTaxRegistration(scheme, id string) *Builder {
	addPartyTaxRegistration(b.agreement().BuyerTradeParty, scheme, id)
	return b
}

// SetDocumentBuyerAddress replaces the buyer's postal address in full.
func (b *Builder) SetDocumentBuyerAddress(lineOne, lineTwo, lineThree, postcode, city, country, subdivision string) *Builder {
	setPartyAddress(b.agreement().BuyerTradeParty, lineOne, lineTwo, lineThree, postcode, city, country, subdivision)
	return b
}

// SetDocumentBuyerLegalOrganisation replaces the buyer's legal
// organization entry.
func (b *Builder) SetDocumentBuyerLegalOrganisation(id, scheme, name string) *Builder {
	setPartyLegalOrganization(b.agreement().BuyerTradeParty, id, scheme, name)
	return b
}

// SetDocumentBuyerContact replaces the buyer's primary contact.
func (b *Builder) SetDocumentBuyerContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.setPartyContact(b.agreement().BuyerTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// AddDocumentBuyerContact appends a further contact to the buyer
// (extended profile only).
func (b *Builder) AddDocumentBuyerContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.addPartyContact(b.agreement().BuyerTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// SetDocumentBuyerUniversalCommunication sets the buyer's electronic
// address endpoint.
func (b *Builder) SetDocumentBuyerUniversalCommunication(uriID, scheme string) *Builder {
	setPartyURICommunication(b.agreement().BuyerTradeParty, uriID, scheme)
	return b
}

// SetDocumentBuyerRequisitioner creates the buyer requisitioner party,
// replacing any previous one.
func (b *Builder) SetDocumentBuyerRequisitioner(name, id, description string) *Builder {
	b.agreement().BuyerRequisitionerTradeParty = schema.NewTradeParty(name, id, description)
	return b
}

// AddDocumentBuyerRequisitionerGlobalID appends a global id to the buyer
// requisitioner.
func (b *Builder) AddDocumentBuyerRequisitionerGlobalID(globalID, scheme string) *Builder {
	addPartyGlobalID(b.agreement().BuyerRequisitionerTradeParty, globalID, scheme)
	return b
}

// AddDocumentBuyerRequisitionerTaxRegistration appends a tax registration
// to the buyer requisitioner.
func (b *Builder) AddDocumentBuyerRequisitionerTaxRegistration(scheme, id string) *Builder {
	addPartyTaxRegistration(b.agreement().BuyerRequisitionerTradeParty, scheme, id)
	return b
}

// SetDocumentBuyerRequisitionerAddress replaces the buyer requisitioner's
// postal address in full.
func (b *Builder) SetDocumentBuyerRequisitionerAddress(lineOne, lineTwo, lineThree, postcode, city, country, subdivision string) *Builder {
	setPartyAddress(b.agreement().BuyerRequisitionerTradeParty, lineOne, lineTwo, lineThree, postcode, city, country, subdivision)
	return b
}

// SetDocumentBuyerRequisitionerLegalOrganisation replaces the buyer
// requisitioner's legal organization entry.
func (b *Builder) SetDocumentBuyerRequisitionerLegalOrganisation(id, scheme, name string) *Builder {
	setPartyLegalOrganization(b.agreement().BuyerRequisitionerTradeParty, id, scheme, name)
	return b
}

// SetDocumentBuyerRequisitionerContact replaces the buyer requisitioner's
// primary contact.
func (b *Builder) SetDocumentBuyerRequisitionerContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.setPartyContact(b.agreement().BuyerRequisitionerTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// AddDocumentBuyerRequisitionerContact appends a further contact to the
// buyer requisitioner (extended profile only).
func (b *Builder) AddDocumentBuyerRequisitionerContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.addPartyContact(b.agreement().BuyerRequisitionerTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// SetDocumentBuyerRequisitionerUniversalCommunication sets the buyer
// requisitioner's electronic address endpoint.
func (b *Builder) SetDocumentBuyerRequisitionerUniversalCommunication(uriID, scheme string) *Builder {
	setPartyURICommunication(b.agreement().BuyerRequisitionerTradeParty, uriID, scheme)
	return b
}

// SetDocumentShipTo creates the ship-to party, replacing any previous one.
func (b *Builder) SetDocumentShipTo(name, id, description string) *Builder {
	b.delivery().ShipToTradeParty = schema.NewTradeParty(name, id, description)
	return b
}

// AddDocumentShipToGlobalID appends a global id to the ship-to party.
func (b *Builder) AddDocumentShipToGlobalID(globalID, scheme string) *Builder {
	addPartyGlobalID(b.delivery().ShipToTradeParty, globalID, scheme)
	return b
}

// AddDocumentShipToTaxRegistration appends a tax registration to the
// ship-to party.
func (b *Builder) AddDocumentShipToTaxRegistration(scheme, id string) *Builder {
	addPartyTaxRegistration(b.delivery().ShipToTradeParty, scheme, id)
	return b
}

// SetDocumentShipToAddress replaces the ship-to postal address in full.
func (b *Builder) SetDocumentShipToAddress(lineOne, lineTwo, lineThree, postcode, city, country, subdivision string) *Builder {
	setPartyAddress(b.delivery().ShipToTradeParty, lineOne, lineTwo, lineThree, postcode, city, country, subdivision)
	return b
}

// SetDocumentShipToLegalOrganisation replaces the ship-to legal
// organization entry.
func (b *Builder) SetDocumentShipToLegalOrganisation(id, scheme, name string) *Builder {
	setPartyLegalOrganization(b.delivery().ShipToTradeParty, id, scheme, name)
	return b
}

// SetDocumentShipToContact replaces the ship-to primary contact.
func (b *Builder) SetDocumentShipToContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.setPartyContact(b.delivery().ShipToTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// AddDocumentShipToContact appends a further contact to the ship-to party
// (extended profile only).
func (b *Builder) AddDocumentShipToContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.addPartyContact(b.delivery().ShipToTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// SetDocumentShipToUniversalCommunication sets the ship-to electronic
// address endpoint.
func (b *Builder) SetDocumentShipToUniversalCommunication(uriID, scheme string) *Builder {
	setPartyURICommunication(b.delivery().ShipToTradeParty, uriID, scheme)
	return b
}

// SetDocumentShipFrom creates the ship-from party, replacing any previous
// one.
func (b *Builder) SetDocumentShipFrom(name, id, description string) *Builder {
	b.delivery().ShipFromTradeParty = schema.NewTradeParty(name, id, description)
	return b
}

// AddDocumentShipFromGlobalID appends a global id to the ship-from party.
func (b *Builder) AddDocumentShipFromGlobalID(globalID, scheme string) *Builder {
	addPartyGlobalID(b.delivery().ShipFromTradeParty, globalID, scheme)
	return b
}

// AddDocumentShipFromTaxRegistration appends a tax registration to the
// ship-from party.
func (b *Builder) AddDocumentShipFromTaxRegistration(scheme, id string) *Builder {
	addPartyTaxRegistration(b.delivery().ShipFromTradeParty, scheme, id)
	return b
}

// SetDocumentShipFromAddress replaces the ship-from postal address in
// full.
func (b *Builder) SetDocumentShipFromAddress(lineOne, lineTwo, lineThree, postcode, city, country, subdivision string) *Builder {
	setPartyAddress(b.delivery().ShipFromTradeParty, lineOne, lineTwo, lineThree, postcode, city, country, subdivision)
	return b
}

// SetDocumentShipFromLegalOrganisation replaces the ship-from legal
// organization entry.
func (b *Builder) SetDocumentShipFromLegalOrganisation(id, scheme, name string) *Builder {
	setPartyLegalOrganization(b.delivery().ShipFromTradeParty, id, scheme, name)
	return b
}

// SetDocumentShipFromContact replaces the ship-from primary contact.
func (b *Builder) SetDocumentShipFromContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.setPartyContact(b.delivery().ShipFromTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// AddDocumentShipFromContact appends a further contact to the ship-from
// party (extended profile only).
func (b *Builder) AddDocumentShipFromContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.addPartyContact(b.delivery().ShipFromTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// SetDocumentShipFromUniversalCommunication sets the ship-from electronic
// address endpoint.
func (b *Builder) SetDocumentShipFromUniversalCommunication(uriID, scheme string) *Builder {
	setPartyURICommunication(b.delivery().ShipFromTradeParty, uriID, scheme)
	return b
}

// SetDocumentInvoicee creates the invoicee party, replacing any previous
// one.
func (b *Builder) SetDocumentInvoicee(name, id, description string) *Builder {
	b.settlement().InvoiceeTradeParty = schema.NewTradeParty(name, id, description)
	return b
}

// AddDocumentInvoiceeGlobalID appends a global id to the invoicee.
func (b *Builder) AddDocumentInvoiceeGlobalID(globalID, scheme string) *Builder {
	addPartyGlobalID(b.settlement().InvoiceeTradeParty, globalID, scheme)
	return b
}

// AddDocumentInvoiceeTaxRegistration appends a tax registration to the
// invoicee.
func (b *Builder) AddDocumentInvoiceeTaxRegistration(scheme, id string) *Builder {
	addPartyTaxRegistration(b.settlement().InvoiceeTradeParty, scheme, id)
	return b
}

// SetDocumentInvoiceeAddress replaces the invoicee's postal address in
// full.
func (b *Builder) SetDocumentInvoiceeAddress(lineOne, lineTwo, lineThree, postcode, city, country, subdivision string) *Builder {
	setPartyAddress(b.settlement().InvoiceeTradeParty, lineOne, lineTwo, lineThree, postcode, city, country, subdivision)
	return b
}

// SetDocumentInvoiceeLegalOrganisation replaces the invoicee's legal
// organization entry.
func (b *Builder) SetDocumentInvoiceeLegalOrganisation(id, scheme, name string) *Builder {
	setPartyLegalOrganization(b.settlement().InvoiceeTradeParty, id, scheme, name)
	return b
}

// SetDocumentInvoiceeContact replaces the invoicee's primary contact.
func (b *Builder) SetDocumentInvoiceeContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.setPartyContact(b.settlement().InvoiceeTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// AddDocumentInvoiceeContact appends a further contact to the invoicee
// (extended profile only).
func (b *Builder) AddDocumentInvoiceeContact(person, department, phone, fax, email, typeCode string) *Builder {
	b.addPartyContact(b.settlement().InvoiceeTradeParty, person, department, phone, fax, email, typeCode)
	return b
}

// SetDocumentInvoiceeUniversalCommunication sets the invoicee's
// electronic address endpoint.
func (b *Builder) SetDocumentInvoiceeUniversalCommunication(uriID, scheme string) *Builder {
	setPartyURICommunication(b.settlement().InvoiceeTradeParty, uriID, scheme)
	return b
}

func addPartyGlobalID(p *schema.TradeParty, globalID, scheme string) {
	if p == nil {
		return
	}
	p.GlobalIDs = append(p.GlobalIDs, schema.NewID(globalID, scheme))
}

func addPartyTaxRegistration(p *schema.TradeParty, scheme, id string) {
	if p == nil {
		return
	}
	p.TaxRegistrations = append(p.TaxRegistrations, schema.NewTaxRegistration(scheme, id))
}

func setPartyAddress(p *schema.TradeParty, lineOne, lineTwo, lineThree, postcode, city, country, subdivision string) {
	if p == nil {
		return
	}
	p.PostalAddress = schema.NewTradeAddress(lineOne, lineTwo, lineThree, postcode, city, country, subdivision)
}

func setPartyLegalOrganization(p *schema.TradeParty, id, scheme, name string) {
	if p == nil {
		return
	}
	p.LegalOrganization = schema.NewLegalOrganization(id, scheme, name)
}

func setPartyURICommunication(p *schema.TradeParty, uriID, scheme string) {
	if p == nil {
		return
	}
	p.URICommunication = schema.NewUniversalCommunication(uriID, scheme)
}

// setPartyContact replaces the primary contact. Below the extended
// profile a party holds a single contact; under it the first list element
// is replaced, keeping any contacts added after it.
func (b *Builder) setPartyContact(p *schema.TradeParty, person, department, phone, fax, email, typeCode string) {
	if p == nil {
		return
	}
	contact := schema.NewTradeContact(person, department, phone, fax, email, typeCode)
	if b.profile.ListValued() && len(p.Contacts) > 0 {
		p.Contacts[0] = contact
		return
	}
	p.Contacts = []*schema.TradeContact{contact}
}

// addPartyContact appends a contact when the profile stores contacts as a
// list; below the extended profile the call is a missing-capability no-op.
func (b *Builder) addPartyContact(p *schema.TradeParty, person, department, phone, fax, email, typeCode string) {
	if p == nil || !b.profile.ListValued() {
		return
	}
	p.Contacts = append(p.Contacts, schema.NewTradeContact(person, department, phone, fax, email, typeCode))
}
