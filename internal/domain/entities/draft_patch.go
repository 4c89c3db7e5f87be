package entities

import (
	"bytes"
	"encoding/json"
)

// Optional tells an absent patch field apart from one explicitly set to
// null, for fields where null means "clear".
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

type LocalizedTextPatch struct {
	PT *string `json:"pt,omitempty"`
	EN *string `json:"en,omitempty"`
	FR *string `json:"fr,omitempty"`
}

// DraftPatch is a partial update; nil (or unset) fields are left unchanged.
type DraftPatch struct {
	Type             *ListingType        `json:"type,omitempty"`
	Category         *string             `json:"category,omitempty"`
	Title            *LocalizedTextPatch `json:"title,omitempty"`
	ShortDescription *LocalizedTextPatch `json:"shortDescription,omitempty"`
	Description      *LocalizedTextPatch `json:"description,omitempty"`
	Tags             *[]string           `json:"tags,omitempty"`

	DurationMinutes Optional[int] `json:"durationMinutes"`
	MinParticipants Optional[int] `json:"minParticipants"`
	MaxParticipants Optional[int] `json:"maxParticipants"`
	MeetingPoint    *string       `json:"meetingPoint,omitempty"`
	Location        *Location     `json:"location,omitempty"`
	Includes        *[]string     `json:"includes,omitempty"`
	Requirements    *string       `json:"requirements,omitempty"`

	WeightKg       *float64    `json:"weightKg,omitempty"`
	Dimensions     *Dimensions `json:"dimensions,omitempty"`
	Stock          *int        `json:"stock,omitempty"`
	Origin         *string     `json:"origin,omitempty"`
	Certifications *[]string   `json:"certifications,omitempty"`

	PricingType    *PricingType      `json:"pricingType,omitempty"`
	BasePrice      *float64          `json:"basePrice,omitempty"`
	DiscountPrice  Optional[float64] `json:"discountPrice"`
	GroupDiscounts *[]GroupDiscount  `json:"groupDiscounts,omitempty"`

	Weekdays   *[]int                   `json:"weekdays,omitempty"`
	TimeSlots  *[]TimeSlot              `json:"timeSlots,omitempty"`
	Exceptions *[]AvailabilityException `json:"exceptions,omitempty"`

	MainImage *string   `json:"mainImage,omitempty"`
	Gallery   *[]string `json:"gallery,omitempty"`
	Video     *string   `json:"video,omitempty"`
	Documents *[]string `json:"documents,omitempty"`

	Cancellation     *CancellationPolicy `json:"cancellation,omitempty"`
	CancellationText *string             `json:"cancellationText,omitempty"`
	WeatherPolicy    *bool               `json:"weatherPolicy,omitempty"`
	WheelchairOK     *bool               `json:"wheelchairOk,omitempty"`
	ChildFriendly    *bool               `json:"childFriendly,omitempty"`
	ElderlyFriendly  *bool               `json:"elderlyFriendly,omitempty"`
	PetsAllowed      *bool               `json:"petsAllowed,omitempty"`
	ImportantInfo    *string             `json:"importantInfo,omitempty"`

	PlatformPercent *float64 `json:"platformPercent,omitempty"`
	HostPercent     *float64 `json:"hostPercent,omitempty"`
	AcceptsPromos   *bool    `json:"acceptsPromos,omitempty"`
}

// Apply merges p into a copy of d. d itself is never modified, so callers
// can compare old and new values.
//
// Setting the type resets the pricing type to the type's default; a pricing
// type carried by the same patch is kept only when the new type allows it.
// Fields of the inactive details group are ignored, and so are negative
// prices.
func (d Draft) Apply(p DraftPatch) Draft {
	out := d.Clone()

	if p.Type != nil {
		out.withType(*p.Type)
	}
	setIf(&out.Category, p.Category)
	applyLocalized(&out.Title, p.Title)
	applyLocalized(&out.ShortDescription, p.ShortDescription)
	applyLocalized(&out.Description, p.Description)
	if p.Tags != nil {
		out.Tags = cloneStrings(*p.Tags)
	}

	if e := out.Experience(); e != nil {
		setOptional(&e.DurationMinutes, p.DurationMinutes)
		setOptional(&e.MinParticipants, p.MinParticipants)
		setOptional(&e.MaxParticipants, p.MaxParticipants)
		setIf(&e.MeetingPoint, p.MeetingPoint)
		setIf(&e.Location, p.Location)
		if p.Includes != nil {
			e.Includes = cloneStrings(*p.Includes)
		}
		setIf(&e.Requirements, p.Requirements)
	}
	if pr := out.Product(); pr != nil {
		setIf(&pr.WeightKg, p.WeightKg)
		setIf(&pr.Dimensions, p.Dimensions)
		setIf(&pr.Stock, p.Stock)
		setIf(&pr.Origin, p.Origin)
		if p.Certifications != nil {
			pr.Certifications = cloneStrings(*p.Certifications)
		}
	}

	if p.PricingType != nil && p.PricingType.AllowedFor(out.Type) {
		out.Pricing.PricingType = *p.PricingType
	}
	if p.BasePrice != nil && *p.BasePrice >= 0 {
		out.Pricing.BasePrice = *p.BasePrice
	}
	if p.DiscountPrice.Value == nil || *p.DiscountPrice.Value >= 0 {
		setOptional(&out.Pricing.DiscountPrice, p.DiscountPrice)
	}
	if p.GroupDiscounts != nil {
		out.Pricing.GroupDiscounts = cloneSlice(*p.GroupDiscounts)
	}

	if p.Weekdays != nil {
		out.Availability.Weekdays = NormalizeWeekdays(*p.Weekdays)
	}
	if p.TimeSlots != nil {
		out.Availability.TimeSlots = cloneSlice(*p.TimeSlots)
	}
	if p.Exceptions != nil {
		out.Availability.Exceptions = cloneSlice(*p.Exceptions)
	}

	setIf(&out.Media.MainImage, p.MainImage)
	if p.Gallery != nil {
		out.Media.Gallery = cloneStrings(*p.Gallery)
	}
	setIf(&out.Media.Video, p.Video)
	if p.Documents != nil {
		out.Media.Documents = cloneStrings(*p.Documents)
	}

	setIf(&out.Policies.Cancellation, p.Cancellation)
	setIf(&out.Policies.CancellationText, p.CancellationText)
	setIf(&out.Policies.WeatherPolicy, p.WeatherPolicy)
	setIf(&out.Policies.WheelchairOK, p.WheelchairOK)
	setIf(&out.Policies.ChildFriendly, p.ChildFriendly)
	setIf(&out.Policies.ElderlyFriendly, p.ElderlyFriendly)
	setIf(&out.Policies.PetsAllowed, p.PetsAllowed)
	setIf(&out.Policies.ImportantInfo, p.ImportantInfo)

	setIf(&out.Commercial.PlatformPercent, p.PlatformPercent)
	setIf(&out.Commercial.HostPercent, p.HostPercent)
	setIf(&out.Commercial.AcceptsPromos, p.AcceptsPromos)

	return out
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setOptional[T any](dst **T, src Optional[T]) {
	if src.Set {
		*dst = clonePtr(src.Value)
	}
}

func applyLocalized(dst *LocalizedText, p *LocalizedTextPatch) {
	if p == nil {
		return
	}
	setIf(&dst.PT, p.PT)
	setIf(&dst.EN, p.EN)
	setIf(&dst.FR, p.FR)
}
