package entities

// Listing is the record exchanged with the listings API (GET/POST/PUT
// /listings). Prices are integer minor units; DiscountPrice is serialized as
// null when no discount was entered.
//
// Experience and product fields are omitted when they do not apply to the
// listing type.
type Listing struct {
	ID         string        `json:"id,omitempty"`
	ProviderID string        `json:"providerId"`
	Status     ListingStatus `json:"status"`

	Type             ListingType   `json:"type"`
	Category         string        `json:"category"`
	Title            LocalizedText `json:"title"`
	ShortDescription LocalizedText `json:"shortDescription"`
	Description      LocalizedText `json:"description"`
	Tags             []string      `json:"tags"`

	Duration        *int      `json:"duration,omitempty"`
	MinParticipants *int      `json:"minParticipants,omitempty"`
	MaxParticipants *int      `json:"maxParticipants,omitempty"`
	MeetingPoint    string    `json:"meetingPoint,omitempty"`
	Location        *Location `json:"location,omitempty"`
	Includes        []string  `json:"includes,omitempty"`
	Requirements    string    `json:"requirements,omitempty"`

	Weight         *float64    `json:"weight,omitempty"`
	Dimensions     *Dimensions `json:"dimensions,omitempty"`
	Stock          *int        `json:"stock,omitempty"`
	Origin         string      `json:"origin,omitempty"`
	Certifications []string    `json:"certifications,omitempty"`

	PricingType    PricingType     `json:"pricingType"`
	BasePrice      int64           `json:"basePrice"`
	DiscountPrice  *int64          `json:"discountPrice"`
	GroupDiscounts []GroupDiscount `json:"groupDiscounts,omitempty"`

	Weekdays   []int                   `json:"weekdays,omitempty"`
	TimeSlots  []TimeSlot              `json:"timeSlots,omitempty"`
	Exceptions []AvailabilityException `json:"exceptions,omitempty"`

	MainImage string   `json:"mainImage,omitempty"`
	Gallery   []string `json:"gallery"`
	Video     string   `json:"video,omitempty"`
	Documents []string `json:"documents,omitempty"`

	Cancellation     CancellationPolicy `json:"cancellation"`
	CancellationText string             `json:"cancellationText,omitempty"`
	WeatherPolicy    bool               `json:"weatherPolicy"`
	WheelchairOK     bool               `json:"wheelchairOk"`
	ChildFriendly    bool               `json:"childFriendly"`
	ElderlyFriendly  bool               `json:"elderlyFriendly"`
	PetsAllowed      bool               `json:"petsAllowed"`
	ImportantInfo    string             `json:"importantInfo,omitempty"`

	PlatformPercent *float64 `json:"platformPercent,omitempty"`
	HostPercent     *float64 `json:"hostPercent,omitempty"`
	AcceptsPromos   *bool    `json:"acceptsPromos,omitempty"`
}

// HydrateDraft builds the edit-mode draft from a persisted listing,
// converting prices to major units. Missing values fall back to the
// create-mode defaults.
func HydrateDraft(l Listing) (Draft, error) {
	t, err := ParseListingType(string(l.Type))
	if err != nil {
		return Draft{}, err
	}

	d := NewDefaultDraft()
	d.withType(t)
	d.Shelved = nil

	d.Category = l.Category
	d.Title = l.Title
	d.ShortDescription = l.ShortDescription
	d.Description = l.Description
	if l.Tags != nil {
		d.Tags = cloneStrings(l.Tags)
	}

	if e := d.Experience(); e != nil {
		e.DurationMinutes = clonePtr(l.Duration)
		e.MinParticipants = clonePtr(l.MinParticipants)
		e.MaxParticipants = clonePtr(l.MaxParticipants)
		e.MeetingPoint = l.MeetingPoint
		if l.Location != nil {
			e.Location = *l.Location
		}
		e.Includes = cloneStrings(l.Includes)
		e.Requirements = l.Requirements
	}
	if p := d.Product(); p != nil {
		if l.Weight != nil {
			p.WeightKg = *l.Weight
		}
		if l.Dimensions != nil {
			p.Dimensions = *l.Dimensions
		}
		if l.Stock != nil {
			p.Stock = *l.Stock
		}
		p.Origin = l.Origin
		p.Certifications = cloneStrings(l.Certifications)
	}

	if l.PricingType.AllowedFor(t) {
		d.Pricing.PricingType = l.PricingType
	}
	d.Pricing.BasePrice = ToMajorUnits(l.BasePrice)
	d.Pricing.DiscountPrice = DiscountToMajorUnits(l.DiscountPrice)
	if l.GroupDiscounts != nil {
		d.Pricing.GroupDiscounts = cloneSlice(l.GroupDiscounts)
	}

	if l.Weekdays != nil {
		d.Availability.Weekdays = NormalizeWeekdays(l.Weekdays)
	}
	if l.TimeSlots != nil {
		d.Availability.TimeSlots = cloneSlice(l.TimeSlots)
	}
	if l.Exceptions != nil {
		d.Availability.Exceptions = cloneSlice(l.Exceptions)
	}

	d.Media.MainImage = l.MainImage
	if l.Gallery != nil {
		d.Media.Gallery = cloneStrings(l.Gallery)
	}
	d.Media.Video = l.Video
	if l.Documents != nil {
		d.Media.Documents = cloneStrings(l.Documents)
	}

	if c, err := ParseCancellationPolicy(string(l.Cancellation)); err == nil {
		d.Policies.Cancellation = c
	}
	d.Policies.CancellationText = l.CancellationText
	d.Policies.WeatherPolicy = l.WeatherPolicy
	d.Policies.WheelchairOK = l.WheelchairOK
	d.Policies.ChildFriendly = l.ChildFriendly
	d.Policies.ElderlyFriendly = l.ElderlyFriendly
	d.Policies.PetsAllowed = l.PetsAllowed
	d.Policies.ImportantInfo = l.ImportantInfo

	setIf(&d.Commercial.PlatformPercent, l.PlatformPercent)
	setIf(&d.Commercial.HostPercent, l.HostPercent)
	setIf(&d.Commercial.AcceptsPromos, l.AcceptsPromos)

	return d, nil
}

// ToListing converts the draft into the outgoing payload. Only the active
// details group is emitted.
func (d Draft) ToListing(providerID string, status ListingStatus) Listing {
	l := Listing{
		ProviderID:       providerID,
		Status:           status,
		Type:             d.Type,
		Category:         d.Category,
		Title:            d.Title,
		ShortDescription: d.ShortDescription,
		Description:      d.Description,
		Tags:             cloneStrings(d.Tags),

		PricingType:    d.Pricing.PricingType,
		BasePrice:      ToMinorUnits(d.Pricing.BasePrice),
		DiscountPrice:  DiscountToMinorUnits(d.Pricing.DiscountPrice),
		GroupDiscounts: cloneSlice(d.Pricing.GroupDiscounts),

		TimeSlots:  cloneSlice(d.Availability.TimeSlots),
		Exceptions: cloneSlice(d.Availability.Exceptions),

		MainImage: d.Media.MainImage,
		Gallery:   cloneStrings(d.Media.Gallery),
		Video:     d.Media.Video,
		Documents: cloneStrings(d.Media.Documents),

		Cancellation:     d.Policies.Cancellation,
		CancellationText: d.Policies.CancellationText,
		WeatherPolicy:    d.Policies.WeatherPolicy,
		WheelchairOK:     d.Policies.WheelchairOK,
		ChildFriendly:    d.Policies.ChildFriendly,
		ElderlyFriendly:  d.Policies.ElderlyFriendly,
		PetsAllowed:      d.Policies.PetsAllowed,
		ImportantInfo:    d.Policies.ImportantInfo,

		PlatformPercent: clonePtr(&d.Commercial.PlatformPercent),
		HostPercent:     clonePtr(&d.Commercial.HostPercent),
		AcceptsPromos:   clonePtr(&d.Commercial.AcceptsPromos),
	}
	if l.Tags == nil {
		l.Tags = []string{}
	}
	if l.Gallery == nil {
		l.Gallery = []string{}
	}

	if e := d.Experience(); e != nil {
		l.Duration = clonePtr(e.DurationMinutes)
		l.MinParticipants = clonePtr(e.MinParticipants)
		l.MaxParticipants = clonePtr(e.MaxParticipants)
		l.MeetingPoint = e.MeetingPoint
		loc := e.Location
		l.Location = &loc
		l.Includes = cloneStrings(e.Includes)
		l.Requirements = e.Requirements
		l.Weekdays = cloneSlice(d.Availability.Weekdays)
	}
	if p := d.Product(); p != nil {
		l.Weight = clonePtr(&p.WeightKg)
		dims := p.Dimensions
		l.Dimensions = &dims
		l.Stock = clonePtr(&p.Stock)
		l.Origin = p.Origin
		l.Certifications = cloneStrings(p.Certifications)
	}
	return l
}
