package entities

import (
	"errors"
	"strings"
)

var (
	ErrInvalidListingType  = errors.New("invalid listing type")
	ErrInvalidPricingType  = errors.New("invalid pricing type")
	ErrInvalidCancellation = errors.New("invalid cancellation policy")
	ErrInvalidStatus       = errors.New("invalid listing status")
)

// ListingType is chosen on the first wizard step and decides which field
// groups and pricing types apply to the listing.
type ListingType string

const (
	ListingTypeService ListingType = "service"
	ListingTypeProduct ListingType = "product"
	ListingTypeEvent   ListingType = "event"
)

var ListingTypes = []ListingType{ListingTypeService, ListingTypeProduct, ListingTypeEvent}

// ParseListingType is the boundary check for listing types. The schema
// functions below assume an already-parsed value.
func ParseListingType(raw string) (ListingType, error) {
	switch t := ListingType(strings.ToLower(strings.TrimSpace(raw))); t {
	case ListingTypeService, ListingTypeProduct, ListingTypeEvent:
		return t, nil
	}
	return "", ErrInvalidListingType
}

type PricingType string

const (
	PricingTypePerPerson  PricingType = "per_person"
	PricingTypeFixedGroup PricingType = "fixed_group"
	PricingTypeUnit       PricingType = "unit"
)

func ParsePricingType(raw string) (PricingType, error) {
	switch p := PricingType(strings.ToLower(strings.TrimSpace(raw))); p {
	case PricingTypePerPerson, PricingTypeFixedGroup, PricingTypeUnit:
		return p, nil
	}
	return "", ErrInvalidPricingType
}

// IsExperienceField reports whether the experience field group (duration,
// participants, meeting point, location, includes, requirements, weekdays)
// applies to t. Events share the service group.
func IsExperienceField(t ListingType) bool {
	return t == ListingTypeService || t == ListingTypeEvent
}

// IsProductField reports whether the product field group applies to t.
func IsProductField(t ListingType) bool {
	return t == ListingTypeProduct
}

// AllowedPricingTypes never returns an empty slice for a parsed type.
func AllowedPricingTypes(t ListingType) []PricingType {
	if IsProductField(t) {
		return []PricingType{PricingTypeUnit}
	}
	return []PricingType{PricingTypePerPerson, PricingTypeFixedGroup}
}

// DefaultPricingType is applied every time the listing type is set.
func DefaultPricingType(t ListingType) PricingType {
	return AllowedPricingTypes(t)[0]
}

func (p PricingType) AllowedFor(t ListingType) bool {
	for _, allowed := range AllowedPricingTypes(t) {
		if p == allowed {
			return true
		}
	}
	return false
}

type CancellationPolicy string

const (
	CancellationFlexible CancellationPolicy = "flexible"
	CancellationModerate CancellationPolicy = "moderate"
	CancellationStrict   CancellationPolicy = "strict"
)

var CancellationPolicies = []CancellationPolicy{CancellationFlexible, CancellationModerate, CancellationStrict}

func ParseCancellationPolicy(raw string) (CancellationPolicy, error) {
	switch c := CancellationPolicy(strings.ToLower(strings.TrimSpace(raw))); c {
	case CancellationFlexible, CancellationModerate, CancellationStrict:
		return c, nil
	}
	return "", ErrInvalidCancellation
}

// ListingStatus is attached by the submission pipeline; "draft" keeps the
// listing hidden from the storefront, "published" makes it visible.
type ListingStatus string

const (
	ListingStatusDraft     ListingStatus = "draft"
	ListingStatusPublished ListingStatus = "published"
)

func ParseListingStatus(raw string) (ListingStatus, error) {
	switch s := ListingStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case ListingStatusDraft, ListingStatusPublished:
		return s, nil
	}
	return "", ErrInvalidStatus
}
