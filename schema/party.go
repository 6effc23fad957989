package schema

// TradeParty is a business entity filling one of the party roles of the
// order (seller, buyer, ship-to and so on). Only the name is required;
// every sub-structure is attached on demand by the composer layer.
type TradeParty struct {
	ID                *ID                     `xml:"ram:ID,omitempty"`
	GlobalIDs         []*ID                   `xml:"ram:GlobalID,omitempty"`
	Name              string                  `xml:"ram:Name,omitempty"`
	Description       string                  `xml:"ram:Description,omitempty"`
	LegalOrganization *LegalOrganization      `xml:"ram:SpecifiedLegalOrganization,omitempty"`
	Contacts          []*TradeContact         `xml:"ram:DefinedTradeContact,omitempty"`
	PostalAddress     *TradeAddress           `xml:"ram:PostalTradeAddress,omitempty"`
	URICommunication  *UniversalCommunication `xml:"ram:URIUniversalCommunication,omitempty"`
	TaxRegistrations  []*TaxRegistration      `xml:"ram:SpecifiedTaxRegistration,omitempty"`
}

// LegalOrganization identifies the registered legal entity behind a party.
type LegalOrganization struct {
	ID                  *ID    `xml:"ram:ID,omitempty"`
	TradingBusinessName string `xml:"ram:TradingBusinessName,omitempty"`
}

// TradeContact is a named contact within a party. All fields are optional.
type TradeContact struct {
	PersonName     string                  `xml:"ram:PersonName,omitempty"`
	DepartmentName string                  `xml:"ram:DepartmentName,omitempty"`
	TypeCode       string                  `xml:"ram:TypeCode,omitempty"`
	Telephone      *UniversalCommunication `xml:"ram:TelephoneUniversalCommunication,omitempty"`
	Fax            *UniversalCommunication `xml:"ram:FaxUniversalCommunication,omitempty"`
	Email          *UniversalCommunication `xml:"ram:EmailURIUniversalCommunication,omitempty"`
}

// UniversalCommunication is an electronic endpoint: either a URI with a
// scheme qualifier or a complete phone/fax number.
type UniversalCommunication struct {
	URIID          *ID    `xml:"ram:URIID,omitempty"`
	CompleteNumber string `xml:"ram:CompleteNumber,omitempty"`
}

// TradeAddress is a structured postal address. Every field is optional and
// the address is always replaced as a whole.
type TradeAddress struct {
	PostcodeCode           string `xml:"ram:PostcodeCode,omitempty"`
	LineOne                string `xml:"ram:LineOne,omitempty"`
	LineTwo                string `xml:"ram:LineTwo,omitempty"`
	LineThree              string `xml:"ram:LineThree,omitempty"`
	CityName               string `xml:"ram:CityName,omitempty"`
	CountryID              string `xml:"ram:CountryID,omitempty"`
	CountrySubDivisionName string `xml:"ram:CountrySubDivisionName,omitempty"`
}

// TaxRegistration is one fiscal registration of a party; the scheme
// distinguishes VAT ("VA") from local tax ("FC") numbers.
type TaxRegistration struct {
	ID *ID `xml:"ram:ID"`
}
