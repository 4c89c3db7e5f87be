package wizard

import (
	"strconv"
	"strings"

	"vitrine/internal/domain/entities"
)

// AllDaysLabel is shown on the review step when no weekday is selected.
const AllDaysLabel = "all days"

var weekdayNames = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

type FieldKind string

const (
	KindText           FieldKind = "text"
	KindTextArea       FieldKind = "textarea"
	KindNumber         FieldKind = "number"
	KindMoney          FieldKind = "money"
	KindSelect         FieldKind = "select"
	KindToggle         FieldKind = "toggle"
	KindList           FieldKind = "list"
	KindWeekdays       FieldKind = "weekdays"
	KindLocation       FieldKind = "location"
	KindDimensions     FieldKind = "dimensions"
	KindGroupDiscounts FieldKind = "group_discounts"
	KindTimeSlots      FieldKind = "time_slots"
	KindExceptions     FieldKind = "exceptions"
	KindImage          FieldKind = "image"
	KindGallery        FieldKind = "gallery"
	KindVideo          FieldKind = "video"
	KindDocuments      FieldKind = "documents"
	KindSummary        FieldKind = "summary"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldView is one input (or read-only row) of a step. Name is the draft
// patch key the input writes to.
type FieldView struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Value    any       `json:"value"`
	Options  []Option  `json:"options,omitempty"`
	Required bool      `json:"required,omitempty"`
}

type StepView struct {
	Step     string      `json:"step"`
	Index    int         `json:"index"`
	Title    string      `json:"title"`
	ReadOnly bool        `json:"readOnly"`
	Fields   []FieldView `json:"fields"`
}

var listingTypeLabels = map[entities.ListingType]string{
	entities.ListingTypeService: "Serviço",
	entities.ListingTypeProduct: "Produto",
	entities.ListingTypeEvent:   "Evento",
}

var pricingTypeLabels = map[entities.PricingType]string{
	entities.PricingTypePerPerson:  "Por pessoa",
	entities.PricingTypeFixedGroup: "Grupo fechado",
	entities.PricingTypeUnit:       "Por unidade",
}

var cancellationLabels = map[entities.CancellationPolicy]string{
	entities.CancellationFlexible: "Flexível",
	entities.CancellationModerate: "Moderada",
	entities.CancellationStrict:   "Rígida",
}

// Render projects the draft onto the fields of one step. It reads only and
// keeps no state between calls.
func Render(step Step, d entities.Draft) StepView {
	view := StepView{Step: step.Key(), Index: int(step), Title: step.Title()}
	switch step {
	case StepBasicInfo:
		view.Fields = renderBasicInfo(d)
	case StepDetails:
		view.Fields = renderDetails(d)
	case StepPricingAvailability:
		view.Fields = renderPricingAvailability(d)
	case StepMedia:
		view.Fields = renderMedia(d)
	case StepPolicies:
		view.Fields = renderPolicies(d)
	case StepMultilingual:
		view.Fields = renderMultilingual(d)
	case StepReview:
		view.ReadOnly = true
		view.Fields = renderReview(d)
	}
	return view
}

func renderBasicInfo(d entities.Draft) []FieldView {
	typeOptions := make([]Option, 0, len(entities.ListingTypes))
	for _, t := range entities.ListingTypes {
		typeOptions = append(typeOptions, Option{Value: string(t), Label: listingTypeLabels[t]})
	}
	return []FieldView{
		{Name: "type", Label: "Tipo de anúncio", Kind: KindSelect, Value: string(d.Type), Options: typeOptions, Required: true},
		{Name: "category", Label: "Categoria", Kind: KindText, Value: d.Category},
		{Name: "title.pt", Label: "Título", Kind: KindText, Value: d.Title.PT, Required: true},
		{Name: "shortDescription.pt", Label: "Descrição curta", Kind: KindTextArea, Value: d.ShortDescription.PT},
		{Name: "description.pt", Label: "Descrição completa", Kind: KindTextArea, Value: d.Description.PT},
		{Name: "tags", Label: "Tags (separadas por vírgula)", Kind: KindList, Value: strings.Join(d.Tags, ", ")},
	}
}

func renderDetails(d entities.Draft) []FieldView {
	if entities.IsExperienceField(d.Type) {
		e := d.Experience()
		if e == nil {
			return nil
		}
		return []FieldView{
			{Name: "durationMinutes", Label: "Duração (minutos)", Kind: KindNumber, Value: intValue(e.DurationMinutes)},
			{Name: "minParticipants", Label: "Mínimo de participantes", Kind: KindNumber, Value: intValue(e.MinParticipants)},
			{Name: "maxParticipants", Label: "Máximo de participantes", Kind: KindNumber, Value: intValue(e.MaxParticipants)},
			{Name: "meetingPoint", Label: "Ponto de encontro", Kind: KindText, Value: e.MeetingPoint},
			{Name: "location", Label: "Localização", Kind: KindLocation, Value: e.Location},
			{Name: "includes", Label: "O que está incluído (separado por vírgula)", Kind: KindList, Value: strings.Join(e.Includes, ", ")},
			{Name: "requirements", Label: "Requisitos", Kind: KindTextArea, Value: e.Requirements},
		}
	}
	if entities.IsProductField(d.Type) {
		p := d.Product()
		if p == nil {
			return nil
		}
		return []FieldView{
			{Name: "weightKg", Label: "Peso (kg)", Kind: KindNumber, Value: p.WeightKg},
			{Name: "dimensions", Label: "Dimensões (cm)", Kind: KindDimensions, Value: p.Dimensions},
			{Name: "stock", Label: "Estoque", Kind: KindNumber, Value: p.Stock},
			{Name: "origin", Label: "Origem", Kind: KindText, Value: p.Origin},
			{Name: "certifications", Label: "Certificações (separadas por vírgula)", Kind: KindList, Value: strings.Join(p.Certifications, ", ")},
		}
	}
	return nil
}

func renderPricingAvailability(d entities.Draft) []FieldView {
	allowed := entities.AllowedPricingTypes(d.Type)
	pricingOptions := make([]Option, 0, len(allowed))
	for _, p := range allowed {
		pricingOptions = append(pricingOptions, Option{Value: string(p), Label: pricingTypeLabels[p]})
	}

	discount := ""
	if d.Pricing.DiscountPrice != nil {
		discount = entities.FormatMajorUnits(*d.Pricing.DiscountPrice)
	}

	fields := []FieldView{
		{Name: "pricingType", Label: "Tipo de preço", Kind: KindSelect, Value: string(d.Pricing.PricingType), Options: pricingOptions, Required: true},
		{Name: "basePrice", Label: "Preço base", Kind: KindMoney, Value: entities.FormatMajorUnits(d.Pricing.BasePrice), Required: true},
		{Name: "discountPrice", Label: "Preço promocional", Kind: KindMoney, Value: discount},
		{Name: "groupDiscounts", Label: "Descontos para grupos", Kind: KindGroupDiscounts, Value: d.Pricing.GroupDiscounts},
	}

	if entities.IsExperienceField(d.Type) {
		dayOptions := make([]Option, 0, len(weekdayNames))
		for i, name := range weekdayNames {
			dayOptions = append(dayOptions, Option{Value: strconv.Itoa(i), Label: name})
		}
		fields = append(fields,
			FieldView{Name: "weekdays", Label: "Dias da semana", Kind: KindWeekdays, Value: d.Availability.Weekdays, Options: dayOptions},
		)
	}

	fields = append(fields,
		FieldView{Name: "timeSlots", Label: "Horários", Kind: KindTimeSlots, Value: d.Availability.TimeSlots},
		FieldView{Name: "exceptions", Label: "Exceções", Kind: KindExceptions, Value: d.Availability.Exceptions},
		FieldView{Name: "platformPercent", Label: "Comissão da plataforma (%)", Kind: KindNumber, Value: d.Commercial.PlatformPercent},
		FieldView{Name: "hostPercent", Label: "Comissão do anfitrião (%)", Kind: KindNumber, Value: d.Commercial.HostPercent},
		FieldView{Name: "acceptsPromos", Label: "Aceita promoções", Kind: KindToggle, Value: d.Commercial.AcceptsPromos},
	)
	return fields
}

func renderMedia(d entities.Draft) []FieldView {
	return []FieldView{
		{Name: "mainImage", Label: "Imagem principal", Kind: KindImage, Value: d.Media.MainImage},
		{Name: "gallery", Label: "Galeria", Kind: KindGallery, Value: d.Media.Gallery},
		{Name: "video", Label: "Vídeo", Kind: KindVideo, Value: d.Media.Video},
		{Name: "documents", Label: "Documentos", Kind: KindDocuments, Value: d.Media.Documents},
	}
}

func renderPolicies(d entities.Draft) []FieldView {
	options := make([]Option, 0, len(entities.CancellationPolicies))
	for _, c := range entities.CancellationPolicies {
		options = append(options, Option{Value: string(c), Label: cancellationLabels[c]})
	}
	p := d.Policies
	return []FieldView{
		{Name: "cancellation", Label: "Política de cancelamento", Kind: KindSelect, Value: string(p.Cancellation), Options: options},
		{Name: "cancellationText", Label: "Detalhes do cancelamento", Kind: KindTextArea, Value: p.CancellationText},
		{Name: "weatherPolicy", Label: "Sujeito às condições meteorológicas", Kind: KindToggle, Value: p.WeatherPolicy},
		{Name: "wheelchairOk", Label: "Acessível a cadeirantes", Kind: KindToggle, Value: p.WheelchairOK},
		{Name: "childFriendly", Label: "Adequado para crianças", Kind: KindToggle, Value: p.ChildFriendly},
		{Name: "elderlyFriendly", Label: "Adequado para idosos", Kind: KindToggle, Value: p.ElderlyFriendly},
		{Name: "petsAllowed", Label: "Aceita animais", Kind: KindToggle, Value: p.PetsAllowed},
		{Name: "importantInfo", Label: "Informações importantes", Kind: KindTextArea, Value: p.ImportantInfo},
	}
}

func renderMultilingual(d entities.Draft) []FieldView {
	return []FieldView{
		{Name: "title.en", Label: "Título (EN)", Kind: KindText, Value: d.Title.EN},
		{Name: "title.fr", Label: "Título (FR)", Kind: KindText, Value: d.Title.FR},
		{Name: "shortDescription.en", Label: "Descrição curta (EN)", Kind: KindTextArea, Value: d.ShortDescription.EN},
		{Name: "shortDescription.fr", Label: "Descrição curta (FR)", Kind: KindTextArea, Value: d.ShortDescription.FR},
		{Name: "description.en", Label: "Descrição completa (EN)", Kind: KindTextArea, Value: d.Description.EN},
		{Name: "description.fr", Label: "Descrição completa (FR)", Kind: KindTextArea, Value: d.Description.FR},
	}
}

func renderReview(d entities.Draft) []FieldView {
	discount := "-"
	if d.Pricing.DiscountPrice != nil {
		discount = entities.FormatMajorUnits(*d.Pricing.DiscountPrice)
	}
	fields := []FieldView{
		{Name: "type", Label: "Tipo de anúncio", Kind: KindSummary, Value: listingTypeLabels[d.Type]},
		{Name: "category", Label: "Categoria", Kind: KindSummary, Value: d.Category},
		{Name: "title.pt", Label: "Título", Kind: KindSummary, Value: d.Title.PT},
		{Name: "tags", Label: "Tags", Kind: KindSummary, Value: strings.Join(d.Tags, ", ")},
		{Name: "pricingType", Label: "Tipo de preço", Kind: KindSummary, Value: pricingTypeLabels[d.Pricing.PricingType]},
		{Name: "basePrice", Label: "Preço base", Kind: KindSummary, Value: entities.FormatMajorUnits(d.Pricing.BasePrice)},
		{Name: "discountPrice", Label: "Preço promocional", Kind: KindSummary, Value: discount},
	}
	if entities.IsExperienceField(d.Type) {
		fields = append(fields, FieldView{Name: "weekdays", Label: "Dias da semana", Kind: KindSummary, Value: WeekdayNames(d.Availability.Weekdays)})
	}
	fields = append(fields,
		FieldView{Name: "gallery", Label: "Fotos", Kind: KindSummary, Value: len(d.Media.Gallery)},
		FieldView{Name: "cancellation", Label: "Política de cancelamento", Kind: KindSummary, Value: cancellationLabels[d.Policies.Cancellation]},
	)
	return fields
}

// WeekdayNames renders weekday indexes as short Portuguese names, or
// AllDaysLabel when none is selected.
func WeekdayNames(days []int) string {
	if len(days) == 0 {
		return AllDaysLabel
	}
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d < 0 || d >= len(weekdayNames) {
			continue
		}
		names = append(names, weekdayNames[d])
	}
	return strings.Join(names, ", ")
}

func intValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
