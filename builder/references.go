package builder

import "github.com/orderx-go/orderx/schema"

// Several reference slots are single-valued below the extended profile and
// list-valued under it. The shape is decided once by the fixed profile, so
// the two helpers below cover every such slot:
//
//   - setOrAddRef: "set" semantics. Replaces the single value, but appends
//     when the slot is list-valued; repeated sets accumulate under the
//     extended profile. Downstream consumers rely on that behavior, so it
//     is kept as is.
//   - addRef: "add" semantics. Appends when the slot is list-valued and is
//     a missing-capability no-op otherwise.

func (b *Builder) setOrAddRef(slot *[]*schema.ReferencedDocument, ref *schema.ReferencedDocument) {
	if b.profile.ListValued() {
		*slot = append(*slot, ref)
		return
	}
	*slot = []*schema.ReferencedDocument{ref}
}

func (b *Builder) addRef(slot *[]*schema.ReferencedDocument, ref *schema.ReferencedDocument) {
	if !b.profile.ListValued() {
		return
	}
	*slot = append(*slot, ref)
}

// SetDocumentSellerOrderReferencedDocument sets the seller's own order
// reference.
func (b *Builder) SetDocumentSellerOrderReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.agreement().SellerOrderRef = schema.NewReferencedDocument(id, opts...)
	return b
}

// SetDocumentBuyerOrderReferencedDocument sets the buyer's order
// reference.
func (b *Builder) SetDocumentBuyerOrderReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.agreement().BuyerOrderRef = schema.NewReferencedDocument(id, opts...)
	return b
}

// SetDocumentQuotationReferencedDocument sets the quotation reference.
func (b *Builder) SetDocumentQuotationReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.agreement().QuotationRef = schema.NewReferencedDocument(id, opts...)
	return b
}

// SetDocumentContractReferencedDocument sets the contract reference;
// under the extended profile repeated calls accumulate.
func (b *Builder) SetDocumentContractReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.setOrAddRef(&b.agreement().ContractRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// AddDocumentContractReferencedDocument appends a contract reference
// (extended profile only).
func (b *Builder) AddDocumentContractReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.addRef(&b.agreement().ContractRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// SetDocumentRequisitionReferencedDocument sets the requisition
// reference; under the extended profile repeated calls accumulate.
func (b *Builder) SetDocumentRequisitionReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.setOrAddRef(&b.agreement().RequisitionRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// AddDocumentRequisitionReferencedDocument appends a requisition
// reference (extended profile only).
func (b *Builder) AddDocumentRequisitionReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.addRef(&b.agreement().RequisitionRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// AddDocumentAdditionalReferencedDocument appends an additional
// supporting-document reference. This slot is repeatable in every
// profile.
func (b *Builder) AddDocumentAdditionalReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	a := b.agreement()
	a.AdditionalRefs = append(a.AdditionalRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// SetDocumentBlanketOrderReferencedDocument sets the blanket order
// reference; under the extended profile repeated calls accumulate.
func (b *Builder) SetDocumentBlanketOrderReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.setOrAddRef(&b.agreement().BlanketOrderRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// AddDocumentBlanketOrderReferencedDocument appends a blanket order
// reference (extended profile only).
func (b *Builder) AddDocumentBlanketOrderReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.addRef(&b.agreement().BlanketOrderRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// SetDocumentPreviousOrderChangeReferencedDocument sets the previous
// order-change reference; under the extended profile repeated calls
// accumulate.
func (b *Builder) SetDocumentPreviousOrderChangeReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.setOrAddRef(&b.agreement().PreviousOrderChangeRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// AddDocumentPreviousOrderChangeReferencedDocument appends a previous
// order-change reference (extended profile only).
func (b *Builder) AddDocumentPreviousOrderChangeReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.addRef(&b.agreement().PreviousOrderChangeRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// SetDocumentPreviousOrderResponseReferencedDocument sets the previous
// order-response reference; under the extended profile repeated calls
// accumulate.
func (b *Builder) SetDocumentPreviousOrderResponseReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.setOrAddRef(&b.agreement().PreviousOrderResponseRefs, schema.NewReferencedDocument(id, opts...))
	return b
}

// AddDocumentPreviousOrderResponseReferencedDocument appends a previous
// order-response reference (extended profile only).
func (b *Builder) AddDocumentPreviousOrderResponseReferencedDocument(id string, opts ...schema.ReferencedDocumentOption) *Builder {
	b.addRef(&b.agreement().PreviousOrderResponseRefs, schema.NewReferencedDocument(id, opts...))
	return b
}
