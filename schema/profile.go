package schema

import (
	"fmt"
	"strings"
)

// Profile selects the Order-X conformance level of a document. It is fixed
// when a document is created and controls which profile-sensitive slots
// store a single value and which store a list.
type Profile int

const (
	// ProfileBasic covers the core ordering data set.
	ProfileBasic Profile = iota

	// ProfileComfort adds the full EN 16931 data set.
	ProfileComfort

	// ProfileExtended additionally turns several single-valued reference
	// and payment-term slots into lists.
	ProfileExtended
)

// ParseProfile converts a profile name (case-insensitive) to a Profile.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return ProfileBasic, nil
	case "comfort":
		return ProfileComfort, nil
	case "extended":
		return ProfileExtended, nil
	}
	return ProfileBasic, fmt.Errorf("unknown profile %q (want basic, comfort or extended)", s)
}

func (p Profile) String() string {
	switch p {
	case ProfileBasic:
		return "basic"
	case ProfileComfort:
		return "comfort"
	case ProfileExtended:
		return "extended"
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

// GuidelineID returns the specification identifier emitted in the
// ExchangedDocumentContext guideline parameter.
func (p Profile) GuidelineID() string {
	return "urn:order-x.eu:1p0:" + p.String()
}

// ListValued reports whether profile-sensitive slots (contract, requisition,
// blanket order, previous order change/response references, payment terms,
// trade contacts and catalogue line references) accept multiple entries.
// Only the extended profile stores them as lists.
func (p Profile) ListValued() bool {
	return p == ProfileExtended
}
