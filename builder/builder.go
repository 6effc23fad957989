// Package builder implements the composer layer for Cross-Industry-Order
// documents: a single mutable document tree that is filled through fluent
// calls and serialized once at the end.
//
// Every composer method returns the builder itself so calls can be
// chained. Methods whose target does not exist yet (a party that has not
// been set, a line before the first AddNewPosition) are silent no-ops
// rather than errors; this keeps arbitrary call orders safe at the cost of
// strictness. The builder is not safe for concurrent use: one document is
// assembled by one caller at a time.
package builder

import (
	"fmt"
	"os"
	"time"

	"github.com/orderx-go/orderx/schema"
	"github.com/orderx-go/orderx/writer"
)

// Builder assembles one order document. The profile is fixed at
// construction and decides which profile-sensitive slots append and which
// replace (see the set-or-add helpers in references.go).
type Builder struct {
	profile schema.Profile
	doc     *schema.Document

	// currentLine receives all line-scoped calls; only the most recently
	// added position is addressable.
	currentLine *schema.SupplyChainTradeLineItem

	// currentTerms tracks the most recently added payment terms entry.
	currentTerms *schema.PaymentTerms

	// currency is the order currency set by SetDocumentInformation; the
	// header summation stamps it onto the tax totals.
	currency string

	// onRender runs right before serialization. No-op by default.
	onRender func(*schema.Document)
}

// New creates a builder for the given profile with an empty document tree.
func New(profile schema.Profile) *Builder {
	b := &Builder{profile: profile}
	return b.Reset()
}

// Reset discards the current tree and starts a new document under the same
// profile. Line and payment-terms pointers are cleared.
func (b *Builder) Reset() *Builder {
	b.doc = schema.NewDocument(b.profile)
	b.currentLine = nil
	b.currentTerms = nil
	b.currency = ""
	return b
}

// Profile returns the fixed profile of this builder.
func (b *Builder) Profile() schema.Profile {
	return b.profile
}

// Document exposes the tree being built. Mutating it directly bypasses the
// composer rules.
func (b *Builder) Document() *schema.Document {
	return b.doc
}

// OnRender installs a hook that runs on the document tree right before
// each serialization. Passing nil removes the hook.
func (b *Builder) OnRender(hook func(*schema.Document)) *Builder {
	b.onRender = hook
	return b
}

// Content serializes the current tree to XML text. Calling it repeatedly
// without intervening mutation yields byte-identical output.
func (b *Builder) Content() ([]byte, error) {
	if b.onRender != nil {
		b.onRender(b.doc)
	}
	return writer.Marshal(b.doc)
}

// WriteFile serializes the current tree and writes it to path, overwriting
// unconditionally. I/O errors propagate to the caller.
func (b *Builder) WriteFile(path string) error {
	content, err := b.Content()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// InformationOption configures an optional field set by
// SetDocumentInformation.
type InformationOption func(*Builder)

// WithDocumentName sets the human-readable document name.
func WithDocumentName(name string) InformationOption {
	return func(b *Builder) { b.doc.ExchangedDocument.Name = name }
}

// WithLanguage adds a document language code.
func WithLanguage(language string) InformationOption {
	return func(b *Builder) {
		b.doc.ExchangedDocument.LanguageID = append(b.doc.ExchangedDocument.LanguageID, language)
	}
}

// WithEffectivePeriod sets the period the document is effective for; zero
// times leave the corresponding side unset.
func WithEffectivePeriod(start, end time.Time) InformationOption {
	return func(b *Builder) {
		b.doc.ExchangedDocument.EffectivePeriod = schema.NewPeriod(start, end)
	}
}

// WithPurposeCode sets the document purpose code (e.g. "7" for duplicate).
func WithPurposeCode(code string) InformationOption {
	return func(b *Builder) { b.doc.ExchangedDocument.PurposeCode = code }
}

// WithRequestedResponseCode sets the code of the response the issuer
// expects (e.g. "AC" for an order response).
func WithRequestedResponseCode(code string) InformationOption {
	return func(b *Builder) { b.doc.ExchangedDocument.RequestedResponseTypeCode = code }
}

// SetDocumentInformation populates the exchanged-document header and the
// settlement order currency. A zero issue date leaves the date unset.
//
// The currency set here is what SetDocumentSummation stamps onto the tax
// totals, so this must be called before the summation for the propagation
// to take effect.
func (b *Builder) SetDocumentInformation(id, typeCode string, issueDate time.Time, currency string, opts ...InformationOption) *Builder {
	ed := b.doc.ExchangedDocument
	ed.ID = id
	ed.TypeCode = typeCode
	if !issueDate.IsZero() {
		ed.IssueDateTime = schema.NewDateTime(issueDate)
	}
	b.currency = currency
	b.settlement().OrderCurrencyCode = currency
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetDocumentBusinessProcess sets the business-process context parameter.
func (b *Builder) SetDocumentBusinessProcess(value string) *Builder {
	b.doc.Context.BusinessProcess = &schema.DocumentContextParameter{ID: value}
	return b
}

// SetIsDocumentCopy marks the document as a copy of another document.
func (b *Builder) SetIsDocumentCopy(copy bool) *Builder {
	b.doc.ExchangedDocument.CopyIndicator = &schema.Indicator{Value: copy}
	return b
}

// SetIsTestDocument marks the document as a test submission.
func (b *Builder) SetIsTestDocument(test bool) *Builder {
	b.doc.Context.TestIndicator = &schema.Indicator{Value: test}
	return b
}

// AddDocumentNote appends a document-level note. The subject code is
// optional.
func (b *Builder) AddDocumentNote(content, subjectCode string) *Builder {
	ed := b.doc.ExchangedDocument
	ed.IncludedNote = append(ed.IncludedNote, schema.NewNote(content, subjectCode))
	return b
}

// SetDocumentBuyerReference sets the buyer's internal reference.
func (b *Builder) SetDocumentBuyerReference(reference string) *Builder {
	b.agreement().BuyerReference = reference
	return b
}

// SetDocumentDeliveryTerms sets the Incoterms-style delivery condition.
func (b *Builder) SetDocumentDeliveryTerms(typeCode, description, functionCode string) *Builder {
	b.agreement().DeliveryTerms = schema.NewDeliveryTerms(typeCode, description, functionCode)
	return b
}

// SetDocumentProcuringProject sets the project the order belongs to.
func (b *Builder) SetDocumentProcuringProject(id, name string) *Builder {
	b.agreement().ProcuringProject = schema.NewProcuringProject(id, name)
	return b
}

// AddDocumentRequestedDeliverySupplyChainEvent appends a header-level
// requested delivery event.
func (b *Builder) AddDocumentRequestedDeliverySupplyChainEvent(opts ...schema.SupplyChainEventOption) *Builder {
	d := b.delivery()
	d.RequestedEvents = append(d.RequestedEvents, schema.NewSupplyChainEvent(opts...))
	return b
}

func (b *Builder) agreement() *schema.HeaderTradeAgreement {
	return b.doc.Transaction.Agreement
}

func (b *Builder) delivery() *schema.HeaderTradeDelivery {
	return b.doc.Transaction.Delivery
}

func (b *Builder) settlement() *schema.HeaderTradeSettlement {
	return b.doc.Transaction.Settlement
}
