// Package loader turns declarative YAML order descriptions into assembled
// documents. It is the input surface of the CLI: every YAML field maps
// onto one composer call, so anything the builder can express is reachable
// from a description file.
package loader

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/orderx-go/orderx/builder"
	"github.com/orderx-go/orderx/schema"
)

// Order is the root of a YAML order description.
type Order struct {
	Profile            string       `yaml:"profile"`
	Document           DocumentInfo `yaml:"document"`
	Seller             *Party       `yaml:"seller"`
	Buyer              *Party       `yaml:"buyer"`
	BuyerRequisitioner *Party       `yaml:"buyer_requisitioner"`
	ShipTo             *Party       `yaml:"ship_to"`
	ShipFrom           *Party       `yaml:"ship_from"`
	Invoicee           *Party       `yaml:"invoicee"`
	Payment            *Payment     `yaml:"payment"`
	DeliveryDate       string       `yaml:"delivery_date"`
	Lines              []Line       `yaml:"lines"`
	LinesFrom          string       `yaml:"lines_from"`
	Totals             *Totals      `yaml:"totals"`
}

// DocumentInfo maps onto SetDocumentInformation and the document-level
// markers.
type DocumentInfo struct {
	ID             string `yaml:"id"`
	TypeCode       string `yaml:"type_code"`
	IssueDate      string `yaml:"issue_date"`
	Currency       string `yaml:"currency"`
	Name           string `yaml:"name"`
	Language       string `yaml:"language"`
	PurposeCode    string `yaml:"purpose_code"`
	BuyerReference string `yaml:"buyer_reference"`
	Test           bool   `yaml:"test"`
	Copy           bool   `yaml:"copy"`
	Notes          []Note `yaml:"notes"`
}

// Note is a document note with an optional subject code.
type Note struct {
	Content     string `yaml:"content"`
	SubjectCode string `yaml:"subject_code"`
}

// Party describes one trade party role.
type Party struct {
	Name             string     `yaml:"name"`
	ID               string     `yaml:"id"`
	Description      string     `yaml:"description"`
	GlobalIDs        []SchemeID `yaml:"global_ids"`
	TaxRegistrations []SchemeID `yaml:"tax_registrations"`
	Address          *Address   `yaml:"address"`
	Legal            *Legal     `yaml:"legal_organization"`
	Contacts         []Contact  `yaml:"contacts"`
	Email            string     `yaml:"email"`
}

// SchemeID is an identifier qualified by a scheme.
type SchemeID struct {
	ID     string `yaml:"id"`
	Scheme string `yaml:"scheme"`
}

// Address is a structured postal address.
type Address struct {
	LineOne     string `yaml:"line_one"`
	LineTwo     string `yaml:"line_two"`
	LineThree   string `yaml:"line_three"`
	Postcode    string `yaml:"postcode"`
	City        string `yaml:"city"`
	Country     string `yaml:"country"`
	Subdivision string `yaml:"subdivision"`
}

// Legal identifies the registered legal entity of a party.
type Legal struct {
	ID     string `yaml:"id"`
	Scheme string `yaml:"scheme"`
	Name   string `yaml:"name"`
}

// Contact is one party contact.
type Contact struct {
	Person     string `yaml:"person"`
	Department string `yaml:"department"`
	Phone      string `yaml:"phone"`
	Fax        string `yaml:"fax"`
	Email      string `yaml:"email"`
	TypeCode   string `yaml:"type_code"`
}

// Payment maps onto the settlement payment means and terms.
type Payment struct {
	MeansTypeCode string `yaml:"means_type_code"`
	Information   string `yaml:"information"`
	PayeeIBAN     string `yaml:"payee_iban"`
	PayeeAccount  string `yaml:"payee_account"`
	Terms         string `yaml:"terms"`
	DueDate       string `yaml:"due_date"`
}

// Line describes one order position.
type Line struct {
	ID         string  `yaml:"id"`
	Note       string  `yaml:"note"`
	Product    Product `yaml:"product"`
	Quantity   string  `yaml:"quantity"`
	Unit       string  `yaml:"unit"`
	GrossPrice string  `yaml:"gross_price"`
	NetPrice   string  `yaml:"net_price"`
	Tax        *Tax    `yaml:"tax"`
	Total      string  `yaml:"total"`
}

// Product describes the product of a line.
type Product struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	SellerID       string `yaml:"seller_id"`
	BuyerID        string `yaml:"buyer_id"`
	GlobalID       string `yaml:"global_id"`
	GlobalIDScheme string `yaml:"global_id_scheme"`
	Origin         string `yaml:"origin"`
}

// Tax is a line tax entry; the percentage is a whole-number percent.
type Tax struct {
	Category string `yaml:"category"`
	Type     string `yaml:"type"`
	Percent  string `yaml:"percent"`
}

// Totals maps onto SetDocumentSummation.
type Totals struct {
	Line      string `yaml:"line"`
	Charge    string `yaml:"charge"`
	Allowance string `yaml:"allowance"`
	TaxBasis  string `yaml:"tax_basis"`
	Tax       string `yaml:"tax"`
	Grand     string `yaml:"grand"`
}

// Load reads and builds the order description at path. A lines_from
// reference resolves against the current working directory.
func Load(path string) (*builder.Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return LoadBytes(path, data)
}

// LoadBytes builds the order description in data; filename is used in
// error messages only.
func LoadBytes(filename string, data []byte) (*builder.Builder, error) {
	var order Order
	if err := yaml.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return order.Build()
}

// Build assembles the described document and returns the builder holding
// it.
func (o *Order) Build() (*builder.Builder, error) {
	profile := schema.ProfileComfort
	if o.Profile != "" {
		var err error
		profile, err = schema.ParseProfile(o.Profile)
		if err != nil {
			return nil, err
		}
	}

	b := builder.New(profile)

	if err := o.buildDocument(b); err != nil {
		return nil, err
	}
	o.buildParties(b)
	if err := o.buildPayment(b); err != nil {
		return nil, err
	}
	if err := o.buildDelivery(b); err != nil {
		return nil, err
	}

	lines := o.Lines
	if o.LinesFrom != "" {
		imported, err := ReadLinesXLSX(o.LinesFrom)
		if err != nil {
			return nil, err
		}
		lines = append(lines, imported...)
	}
	for i := range lines {
		if err := buildLine(b, &lines[i]); err != nil {
			return nil, err
		}
	}

	if err := o.buildTotals(b); err != nil {
		return nil, err
	}

	return b, nil
}

func (o *Order) buildDocument(b *builder.Builder) error {
	doc := o.Document

	// A generated id keeps descriptions for one-off documents minimal.
	id := doc.ID
	if id == "" {
		id = uuid.NewString()
	}

	var issued time.Time
	if doc.IssueDate != "" {
		var err error
		issued, err = parseDate(doc.IssueDate)
		if err != nil {
			return fmt.Errorf("document issue_date: %w", err)
		}
	}

	var opts []builder.InformationOption
	if doc.Name != "" {
		opts = append(opts, builder.WithDocumentName(doc.Name))
	}
	if doc.Language != "" {
		opts = append(opts, builder.WithLanguage(doc.Language))
	}
	if doc.PurposeCode != "" {
		opts = append(opts, builder.WithPurposeCode(doc.PurposeCode))
	}

	b.SetDocumentInformation(id, doc.TypeCode, issued, doc.Currency, opts...)

	if doc.Test {
		b.SetIsTestDocument(true)
	}
	if doc.Copy {
		b.SetIsDocumentCopy(true)
	}
	if doc.BuyerReference != "" {
		b.SetDocumentBuyerReference(doc.BuyerReference)
	}
	for _, note := range doc.Notes {
		b.AddDocumentNote(note.Content, note.SubjectCode)
	}
	return nil
}

func (o *Order) buildParties(b *builder.Builder) {
	if p := o.Seller; p != nil {
		b.SetDocumentSeller(p.Name, p.ID, p.Description)
		applyParty(p,
			b.AddDocumentSellerGlobalID,
			b.AddDocumentSellerTaxRegistration,
			b.SetDocumentSellerAddress,
			b.SetDocumentSellerLegalOrganisation,
			b.SetDocumentSellerContact,
			b.AddDocumentSellerContact,
			b.SetDocumentSellerUniversalCommunication,
		)
	}
	if p := o.Buyer; p != nil {
		b.SetDocumentBuyer(p.Name, p.ID, p.Description)
		applyParty(p,
			b.AddDocumentBuyerGlobalID,
			b.AddDocumentBuyerTaxRegistration,
			b.SetDocumentBuyerAddress,
			b.SetDocumentBuyerLegalOrganisation,
			b.SetDocumentBuyerContact,
			b.AddDocumentBuyerContact,
			b.SetDocumentBuyerUniversalCommunication,
		)
	}
	if p := o.BuyerRequisitioner; p != nil {
		b.SetDocumentBuyerRequisitioner(p.Name, p.ID, p.Description)
		applyParty(p,
			b.AddDocumentBuyerRequisitionerGlobalID,
			b.AddDocumentBuyerRequisitionerTaxRegistration,
			b.SetDocumentBuyerRequisitionerAddress,
			b.SetDocumentBuyerRequisitionerLegalOrganisation,
			b.SetDocumentBuyerRequisitionerContact,
			b.AddDocumentBuyerRequisitionerContact,
			b.SetDocumentBuyerRequisitionerUniversalCommunication,
		)
	}
	if p := o.ShipTo; p != nil {
		b.SetDocumentShipTo(p.Name, p.ID, p.Description)
		applyParty(p,
			b.AddDocumentShipToGlobalID,
			b.AddDocumentShipToTaxRegistration,
			b.SetDocumentShipToAddress,
			b.SetDocumentShipToLegalOrganisation,
			b.SetDocumentShipToContact,
			b.AddDocumentShipToContact,
			b.SetDocumentShipToUniversalCommunication,
		)
	}
	if p := o.ShipFrom; p != nil {
		b.SetDocumentShipFrom(p.Name, p.ID, p.Description)
		applyParty(p,
			b.AddDocumentShipFromGlobalID,
			b.AddDocumentShipFromTaxRegistration,
			b.SetDocumentShipFromAddress,
			b.SetDocumentShipFromLegalOrganisation,
			b.SetDocumentShipFromContact,
			b.AddDocumentShipFromContact,
			b.SetDocumentShipFromUniversalCommunication,
		)
	}
	if p := o.Invoicee; p != nil {
		b.SetDocumentInvoicee(p.Name, p.ID, p.Description)
		applyParty(p,
			b.AddDocumentInvoiceeGlobalID,
			b.AddDocumentInvoiceeTaxRegistration,
			b.SetDocumentInvoiceeAddress,
			b.SetDocumentInvoiceeLegalOrganisation,
			b.SetDocumentInvoiceeContact,
			b.AddDocumentInvoiceeContact,
			b.SetDocumentInvoiceeUniversalCommunication,
		)
	}
}

// applyParty maps the sub-structures of one party description onto the
// per-role composer methods.
func applyParty(
	p *Party,
	addGlobalID func(string, string) *builder.Builder,
	addTaxRegistration func(string, string) *builder.Builder,
	setAddress func(string, string, string, string, string, string, string) *builder.Builder,
	setLegal func(string, string, string) *builder.Builder,
	setContact func(string, string, string, string, string, string) *builder.Builder,
	addContact func(string, string, string, string, string, string) *builder.Builder,
	setURI func(string, string) *builder.Builder,
) {
	for _, gid := range p.GlobalIDs {
		addGlobalID(gid.ID, gid.Scheme)
	}
	for _, reg := range p.TaxRegistrations {
		addTaxRegistration(reg.Scheme, reg.ID)
	}
	if a := p.Address; a != nil {
		setAddress(a.LineOne, a.LineTwo, a.LineThree, a.Postcode, a.City, a.Country, a.Subdivision)
	}
	if l := p.Legal; l != nil {
		setLegal(l.ID, l.Scheme, l.Name)
	}
	for i, c := range p.Contacts {
		if i == 0 {
			setContact(c.Person, c.Department, c.Phone, c.Fax, c.Email, c.TypeCode)
		} else {
			addContact(c.Person, c.Department, c.Phone, c.Fax, c.Email, c.TypeCode)
		}
	}
	if p.Email != "" {
		setURI(p.Email, "EM")
	}
}

func (o *Order) buildPayment(b *builder.Builder) error {
	p := o.Payment
	if p == nil {
		return nil
	}
	if p.MeansTypeCode != "" || p.Information != "" {
		var opts []schema.PaymentMeansOption
		if p.PayeeIBAN != "" {
			opts = append(opts, schema.WithPayeeIBAN(p.PayeeIBAN, p.PayeeAccount))
		}
		b.SetDocumentPaymentMeans(p.MeansTypeCode, p.Information, opts...)
	}
	if p.Terms != "" {
		var opts []schema.PaymentTermsOption
		if p.DueDate != "" {
			due, err := parseDate(p.DueDate)
			if err != nil {
				return fmt.Errorf("payment due_date: %w", err)
			}
			opts = append(opts, schema.WithDueDate(due))
		}
		b.AddDocumentPaymentTerm(p.Terms, opts...)
	}
	return nil
}

func (o *Order) buildDelivery(b *builder.Builder) error {
	if o.DeliveryDate == "" {
		return nil
	}
	date, err := parseDate(o.DeliveryDate)
	if err != nil {
		return fmt.Errorf("delivery_date: %w", err)
	}
	b.AddDocumentRequestedDeliverySupplyChainEvent(schema.WithOccurrence(date))
	return nil
}

func buildLine(b *builder.Builder, line *Line) error {
	b.AddNewPosition(line.ID, "")
	if line.Note != "" {
		b.AddDocumentPositionNote(line.Note, "")
	}

	p := line.Product
	b.SetDocumentPositionProductDetails(p.Name, p.Description, p.SellerID, p.BuyerID, p.GlobalID, p.GlobalIDScheme)
	if p.Origin != "" {
		b.SetDocumentPositionProductOriginTradeCountry(p.Origin)
	}

	if line.GrossPrice != "" {
		gross, err := parseDecimal("gross_price", line.GrossPrice)
		if err != nil {
			return err
		}
		b.SetDocumentPositionGrossPrice(gross)
	}
	if line.NetPrice != "" {
		net, err := parseDecimal("net_price", line.NetPrice)
		if err != nil {
			return err
		}
		b.SetDocumentPositionNetPrice(net)
	}
	if line.Quantity != "" {
		qty, err := parseDecimal("quantity", line.Quantity)
		if err != nil {
			return err
		}
		b.SetDocumentPositionDeliverRequestedQuantity(qty, line.Unit)
	}
	if t := line.Tax; t != nil {
		percent, err := parseDecimal("tax percent", t.Percent)
		if err != nil {
			return err
		}
		b.SetDocumentPositionTax(t.Category, t.Type, percent)
	}
	if line.Total != "" {
		total, err := parseDecimal("total", line.Total)
		if err != nil {
			return err
		}
		b.SetDocumentPositionLineSummation(total)
	}
	return nil
}

func (o *Order) buildTotals(b *builder.Builder) error {
	t := o.Totals
	if t == nil {
		return nil
	}
	grand, err := parseDecimal("totals.grand", t.Grand)
	if err != nil {
		return err
	}

	var opts []schema.SummationOption
	for _, field := range []struct {
		value string
		name  string
		with  func(decimal.Decimal) schema.SummationOption
	}{
		{t.Line, "totals.line", schema.WithLineTotal},
		{t.Charge, "totals.charge", schema.WithChargeTotal},
		{t.Allowance, "totals.allowance", schema.WithAllowanceTotal},
		{t.TaxBasis, "totals.tax_basis", schema.WithTaxBasisTotal},
		{t.Tax, "totals.tax", schema.WithTaxTotal},
	} {
		if field.value == "" {
			continue
		}
		d, err := parseDecimal(field.name, field.value)
		if err != nil {
			return err
		}
		opts = append(opts, field.with(d))
	}

	b.SetDocumentSummation(grand, opts...)
	return nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value %q: %w", field, value, err)
	}
	return d, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return t, nil
}
