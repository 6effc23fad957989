// Package schema defines the Cross-Industry-Order document tree and the
// constructor functions for building its nodes programmatically.
//
// The types mirror the UN/CEFACT SCRDM CIO message structure used by
// Order-X. They carry encoding/xml struct tags with literal namespace
// prefixes (rsm, ram, udt, qdt); the corresponding xmlns attributes are
// declared once on the root Document. This is a marshal-only model:
// deserializing existing XML back into these types is not supported.
package schema

// XML namespaces of the Order-X message structure.
const (
	NamespaceRSM = "urn:un:unece:uncefact:data:SCRDMCCBDACIOMessageStructure:100"
	NamespaceRAM = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:128"
	NamespaceQDT = "urn:un:unece:uncefact:data:standard:QualifiedDataType:128"
	NamespaceUDT = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:128"
)

// DateFormatCalendar is the UNTDID 2379 code for CCYYMMDD date strings.
const DateFormatCalendar = "102"
