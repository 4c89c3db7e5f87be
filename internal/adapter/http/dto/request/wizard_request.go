package request

import (
	"errors"
	"strconv"
	"strings"

	"vitrine/internal/domain/entities"
	"vitrine/internal/domain/wizard"
	"vitrine/internal/usecase"
)

var (
	ErrInvalidWeekdays = errors.New("invalid weekdays")
)

// StartWizardRequest mounts a wizard. Sending initialData (or a listingId)
// opens it in edit mode.
type StartWizardRequest struct {
	ProviderID  string            `json:"providerId" binding:"required"`
	IsEditing   bool              `json:"isEditing"`
	ListingID   string            `json:"listingId"`
	InitialData *entities.Listing `json:"initialData"`
}

func (r StartWizardRequest) ToCommand() usecase.StartCommand {
	return usecase.StartCommand{
		ProviderID:  strings.TrimSpace(r.ProviderID),
		IsEditing:   r.IsEditing,
		ListingID:   strings.TrimSpace(r.ListingID),
		InitialData: r.InitialData,
	}
}

// PatchDraftRequest is the body of PATCH /wizards/:id/draft. Only the keys
// present in the body are applied.
type PatchDraftRequest struct {
	entities.DraftPatch
}

// Normalize checks and canonicalizes the enumerated fields of the patch.
func (r PatchDraftRequest) Normalize() (entities.DraftPatch, error) {
	p := r.DraftPatch
	if p.Type != nil {
		t, err := entities.ParseListingType(string(*p.Type))
		if err != nil {
			return entities.DraftPatch{}, err
		}
		p.Type = &t
	}
	if p.PricingType != nil {
		pt, err := entities.ParsePricingType(string(*p.PricingType))
		if err != nil {
			return entities.DraftPatch{}, err
		}
		p.PricingType = &pt
		if p.Type != nil && !pt.AllowedFor(*p.Type) {
			return entities.DraftPatch{}, entities.ErrInvalidPricingType
		}
	}
	if p.BasePrice != nil && *p.BasePrice < 0 {
		return entities.DraftPatch{}, entities.ErrNegativePrice
	}
	if p.DiscountPrice.Value != nil && *p.DiscountPrice.Value < 0 {
		return entities.DraftPatch{}, entities.ErrNegativePrice
	}
	if p.Cancellation != nil {
		c, err := entities.ParseCancellationPolicy(string(*p.Cancellation))
		if err != nil {
			return entities.DraftPatch{}, err
		}
		p.Cancellation = &c
	}
	if p.Weekdays != nil {
		for _, d := range *p.Weekdays {
			if d < 0 || d > 6 {
				return entities.DraftPatch{}, ErrInvalidWeekdays
			}
		}
	}
	return p, nil
}

// ListTextRequest carries the raw comma-separated text of a list field.
// An empty text is valid and clears the field to [""].
type ListTextRequest struct {
	Text string `json:"text"`
}

// JumpRequest accepts a step key ("media") or its index ("3").
type JumpRequest struct {
	Step string `json:"step" binding:"required"`
}

func (r JumpRequest) ResolveStep() (wizard.Step, error) {
	return ParseStepParam(r.Step)
}

// ParseStepParam resolves a step from a key or a numeric index.
func ParseStepParam(raw string) (wizard.Step, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		s := wizard.Step(n)
		if !s.Valid() {
			return 0, wizard.ErrStepOutOfRange
		}
		return s, nil
	}
	return wizard.ParseStep(raw)
}

type SubmitRequest struct {
	Mode string `json:"mode" binding:"required"`
}

func (r SubmitRequest) ResolveMode() (entities.ListingStatus, error) {
	return entities.ParseListingStatus(r.Mode)
}
