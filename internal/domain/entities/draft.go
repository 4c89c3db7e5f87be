package entities

import (
	"errors"
	"sort"
	"strings"
)

var ErrInvalidWeekday = errors.New("invalid weekday")

// Commercial term defaults for new listings.
const (
	DefaultPlatformPercent = 10.0
	DefaultHostPercent     = 5.0
)

type LocalizedText struct {
	PT string `json:"pt"`
	EN string `json:"en"`
	FR string `json:"fr"`
}

type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type GroupDiscount struct {
	MinSize         int     `json:"minSize"`
	DiscountPercent float64 `json:"discountPercent"`
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityException struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Note      string `json:"note,omitempty"`
}

// ExperienceFields apply to service and event listings.
type ExperienceFields struct {
	DurationMinutes *int     `json:"durationMinutes"`
	MinParticipants *int     `json:"minParticipants"`
	MaxParticipants *int     `json:"maxParticipants"`
	MeetingPoint    string   `json:"meetingPoint"`
	Location        Location `json:"location"`
	Includes        []string `json:"includes"`
	Requirements    string   `json:"requirements"`
}

// ProductFields apply to product listings.
type ProductFields struct {
	WeightKg       float64    `json:"weightKg"`
	Dimensions     Dimensions `json:"dimensions"`
	Stock          int        `json:"stock"`
	Origin         string     `json:"origin"`
	Certifications []string   `json:"certifications"`
}

type DetailsKind string

const (
	DetailsExperience DetailsKind = "experience"
	DetailsProduct    DetailsKind = "product"
)

func DetailsKindFor(t ListingType) DetailsKind {
	if IsProductField(t) {
		return DetailsProduct
	}
	return DetailsExperience
}

// Details is a tagged variant: exactly the block named by Kind is non-nil.
type Details struct {
	Kind       DetailsKind       `json:"kind"`
	Experience *ExperienceFields `json:"experience,omitempty"`
	Product    *ProductFields    `json:"product,omitempty"`
}

func newDetails(kind DetailsKind) Details {
	if kind == DetailsProduct {
		return Details{Kind: kind, Product: &ProductFields{}}
	}
	return Details{Kind: DetailsExperience, Experience: &ExperienceFields{}}
}

type Pricing struct {
	PricingType    PricingType     `json:"pricingType"`
	BasePrice      float64         `json:"basePrice"`
	DiscountPrice  *float64        `json:"discountPrice"`
	GroupDiscounts []GroupDiscount `json:"groupDiscounts"`
}

type Availability struct {
	Weekdays   []int                   `json:"weekdays"`
	TimeSlots  []TimeSlot              `json:"timeSlots"`
	Exceptions []AvailabilityException `json:"exceptions"`
}

type Media struct {
	MainImage string   `json:"mainImage"`
	Gallery   []string `json:"gallery"`
	Video     string   `json:"video"`
	Documents []string `json:"documents"`
}

type Policies struct {
	Cancellation     CancellationPolicy `json:"cancellation"`
	CancellationText string             `json:"cancellationText"`
	WeatherPolicy    bool               `json:"weatherPolicy"`
	WheelchairOK     bool               `json:"wheelchairOk"`
	ChildFriendly    bool               `json:"childFriendly"`
	ElderlyFriendly  bool               `json:"elderlyFriendly"`
	PetsAllowed      bool               `json:"petsAllowed"`
	ImportantInfo    string             `json:"importantInfo"`
}

type CommercialTerms struct {
	PlatformPercent float64 `json:"platformPercent"`
	HostPercent     float64 `json:"hostPercent"`
	AcceptsPromos   bool    `json:"acceptsPromos"`
}

// Draft is the listing being authored across the wizard steps. Prices are
// kept in major units; conversion to minor units happens in ToListing.
//
// Shelved holds the details block of the other group after a type switch,
// so values entered before the switch come back if the user switches back.
type Draft struct {
	Type             ListingType   `json:"type"`
	Category         string        `json:"category"`
	Title            LocalizedText `json:"title"`
	ShortDescription LocalizedText `json:"shortDescription"`
	Description      LocalizedText `json:"description"`
	Tags             []string      `json:"tags"`

	Details Details  `json:"details"`
	Shelved *Details `json:"shelved,omitempty"`

	Pricing      Pricing         `json:"pricing"`
	Availability Availability    `json:"availability"`
	Media        Media           `json:"media"`
	Policies     Policies        `json:"policies"`
	Commercial   CommercialTerms `json:"commercial"`
}

func NewDefaultDraft() Draft {
	return Draft{
		Type:    ListingTypeService,
		Tags:    []string{},
		Details: newDetails(DetailsExperience),
		Pricing: Pricing{
			PricingType:    DefaultPricingType(ListingTypeService),
			GroupDiscounts: []GroupDiscount{},
		},
		Availability: Availability{
			Weekdays:   []int{},
			TimeSlots:  []TimeSlot{},
			Exceptions: []AvailabilityException{},
		},
		Media: Media{
			Gallery:   []string{},
			Documents: []string{},
		},
		Policies: Policies{Cancellation: CancellationFlexible},
		Commercial: CommercialTerms{
			PlatformPercent: DefaultPlatformPercent,
			HostPercent:     DefaultHostPercent,
			AcceptsPromos:   true,
		},
	}
}

// Experience returns the active experience block, or nil for products.
func (d Draft) Experience() *ExperienceFields {
	if d.Details.Kind != DetailsExperience {
		return nil
	}
	return d.Details.Experience
}

// Product returns the active product block, or nil for services and events.
func (d Draft) Product() *ProductFields {
	if d.Details.Kind != DetailsProduct {
		return nil
	}
	return d.Details.Product
}

// withType switches the listing type on a draft the caller already owns.
// The pricing type is always reset to the type's default.
func (d *Draft) withType(t ListingType) {
	d.Type = t
	d.Pricing.PricingType = DefaultPricingType(t)

	kind := DetailsKindFor(t)
	if d.Details.Kind == kind {
		return
	}
	current := d.Details
	if d.Shelved != nil && d.Shelved.Kind == kind {
		d.Details = *d.Shelved
	} else {
		d.Details = newDetails(kind)
	}
	d.Shelved = &current
}

// ToggleWeekday adds day if absent and removes it otherwise. The result is
// sorted ascending with no duplicates.
func (d Draft) ToggleWeekday(day int) (Draft, error) {
	if day < 0 || day > 6 {
		return d, ErrInvalidWeekday
	}
	out := d.Clone()
	kept := make([]int, 0, len(out.Availability.Weekdays)+1)
	found := false
	for _, w := range out.Availability.Weekdays {
		if w == day {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	if !found {
		kept = append(kept, day)
	}
	out.Availability.Weekdays = NormalizeWeekdays(kept)
	return out, nil
}

// NormalizeWeekdays drops out-of-range values and duplicates and sorts.
func NormalizeWeekdays(days []int) []int {
	seen := make(map[int]struct{}, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// SplitCommaList turns a comma-separated input into trimmed segments.
// An empty input yields [""], not an empty slice; clients depend on it.
func SplitCommaList(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func (d Draft) Clone() Draft {
	out := d
	out.Tags = cloneStrings(d.Tags)
	out.Details = d.Details.clone()
	if d.Shelved != nil {
		shelved := d.Shelved.clone()
		out.Shelved = &shelved
	}
	out.Pricing.DiscountPrice = clonePtr(d.Pricing.DiscountPrice)
	out.Pricing.GroupDiscounts = cloneSlice(d.Pricing.GroupDiscounts)
	out.Availability.Weekdays = cloneSlice(d.Availability.Weekdays)
	out.Availability.TimeSlots = cloneSlice(d.Availability.TimeSlots)
	out.Availability.Exceptions = cloneSlice(d.Availability.Exceptions)
	out.Media.Gallery = cloneStrings(d.Media.Gallery)
	out.Media.Documents = cloneStrings(d.Media.Documents)
	return out
}

func (d Details) clone() Details {
	out := Details{Kind: d.Kind}
	if d.Experience != nil {
		e := *d.Experience
		e.DurationMinutes = clonePtr(e.DurationMinutes)
		e.MinParticipants = clonePtr(e.MinParticipants)
		e.MaxParticipants = clonePtr(e.MaxParticipants)
		e.Includes = cloneStrings(e.Includes)
		out.Experience = &e
	}
	if d.Product != nil {
		p := *d.Product
		p.Certifications = cloneStrings(p.Certifications)
		out.Product = &p
	}
	return out
}

func cloneStrings(in []string) []string {
	return cloneSlice(in)
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func clonePtr[T any](in *T) *T {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
