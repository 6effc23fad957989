package schema

// ID is an identifier with an optional scheme qualifier, such as a GLN
// carrying schemeID "0088" or a VAT registration carrying schemeID "VA".
type ID struct {
	SchemeID string `xml:"schemeID,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// Amount is a monetary value with an optional currency qualifier. The value
// is kept as the decimal string the caller supplied so its scale survives
// serialization unchanged.
type Amount struct {
	CurrencyID string `xml:"currencyID,attr,omitempty"`
	Value      string `xml:",chardata"`
}

// Quantity pairs a decimal value with a UN/ECE Recommendation 20 unit code.
type Quantity struct {
	UnitCode string `xml:"unitCode,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// Measure is a measured value with a unit, used for characteristic values
// and packaging dimensions.
type Measure struct {
	UnitCode string `xml:"unitCode,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// Indicator wraps the UDT boolean indicator element.
type Indicator struct {
	Value bool `xml:"udt:Indicator"`
}

// DateTime is an issue or occurrence timestamp in UDT representation.
type DateTime struct {
	DateTimeString *DateTimeString `xml:"udt:DateTimeString,omitempty"`
}

// FormattedDateTime is the QDT variant used on referenced documents.
type FormattedDateTime struct {
	DateTimeString *DateTimeString `xml:"qdt:DateTimeString,omitempty"`
}

// DateTimeString is a formatted date string; Format identifies the layout
// per UNTDID 2379 (102 = CCYYMMDD).
type DateTimeString struct {
	Format string `xml:"format,attr"`
	Value  string `xml:",chardata"`
}

// Note is a free-form text with an optional UNTDID 4451 subject qualifier.
type Note struct {
	Content     string `xml:"ram:Content"`
	SubjectCode string `xml:"ram:SubjectCode,omitempty"`
}

// Period is a date range with optional start and end.
type Period struct {
	StartDateTime *DateTime `xml:"ram:StartDateTime,omitempty"`
	EndDateTime   *DateTime `xml:"ram:EndDateTime,omitempty"`
}

// SupplyChainEvent is a requested delivery or pickup event, given either as
// a single occurrence date or as a period.
type SupplyChainEvent struct {
	OccurrenceDateTime *DateTime `xml:"ram:OccurrenceDateTime,omitempty"`
	OccurrencePeriod   *Period   `xml:"ram:OccurrenceSpecifiedPeriod,omitempty"`
}

// BinaryObject references an embedded attachment by filename. The content
// itself is not carried by this layer.
type BinaryObject struct {
	MimeCode string `xml:"mimeCode,attr,omitempty"`
	Filename string `xml:"filename,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// ReferencedDocument points at another business document (an order, a
// contract, a quotation) by identifier. Different slots populate different
// subsets of its fields.
type ReferencedDocument struct {
	IssuerAssignedID  string             `xml:"ram:IssuerAssignedID,omitempty"`
	URIID             string             `xml:"ram:URIID,omitempty"`
	LineID            string             `xml:"ram:LineID,omitempty"`
	TypeCode          string             `xml:"ram:TypeCode,omitempty"`
	Name              string             `xml:"ram:Name,omitempty"`
	Attachment        *BinaryObject      `xml:"ram:AttachmentBinaryObject,omitempty"`
	ReferenceTypeCode string             `xml:"ram:ReferenceTypeCode,omitempty"`
	IssueDateTime     *FormattedDateTime `xml:"ram:FormattedIssueDateTime,omitempty"`
}

// ProcuringProject identifies the project an order belongs to.
type ProcuringProject struct {
	ID   string `xml:"ram:ID,omitempty"`
	Name string `xml:"ram:Name,omitempty"`
}

// TradeAccountingAccount is a buyer-side cost account reference.
type TradeAccountingAccount struct {
	ID string `xml:"ram:ID"`
}
