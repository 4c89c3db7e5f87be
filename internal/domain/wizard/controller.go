package wizard

import (
	"errors"
	"strings"
)

var (
	ErrStepOutOfRange = errors.New("step out of range")
	ErrStepLocked     = errors.New("step not reached yet")
	ErrInvalidMode    = errors.New("invalid wizard mode")
)

type Step int

const (
	StepBasicInfo Step = iota
	StepDetails
	StepPricingAvailability
	StepMedia
	StepPolicies
	StepMultilingual
	StepReview
)

const (
	FirstStep = StepBasicInfo
	LastStep  = StepReview
)

var stepKeys = [...]string{
	StepBasicInfo:           "basic_info",
	StepDetails:             "details",
	StepPricingAvailability: "pricing_availability",
	StepMedia:               "media",
	StepPolicies:            "policies",
	StepMultilingual:        "multilingual",
	StepReview:              "review",
}

var stepTitles = [...]string{
	StepBasicInfo:           "Informações básicas",
	StepDetails:             "Detalhes",
	StepPricingAvailability: "Preço e disponibilidade",
	StepMedia:               "Mídia",
	StepPolicies:            "Políticas",
	StepMultilingual:        "Traduções",
	StepReview:              "Revisão",
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) Key() string {
	if !s.Valid() {
		return ""
	}
	return stepKeys[s]
}

func (s Step) Title() string {
	if !s.Valid() {
		return ""
	}
	return stepTitles[s]
}

// ParseStep accepts a step key ("pricing_availability").
func ParseStep(raw string) (Step, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for i, key := range stepKeys {
		if key == raw {
			return Step(i), nil
		}
	}
	return 0, ErrStepOutOfRange
}

func Steps() []Step {
	out := make([]Step, 0, len(stepKeys))
	for s := FirstStep; s <= LastStep; s++ {
		out = append(out, s)
	}
	return out
}

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

func ModeFor(isEditing bool) Mode {
	if isEditing {
		return ModeEdit
	}
	return ModeCreate
}

func ParseMode(raw string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(raw))); m {
	case ModeCreate, ModeEdit:
		return m, nil
	}
	return "", ErrInvalidMode
}

// StepController tracks the current step of one wizard instance.
//
// MaxVisited is the high-water mark: it never decreases, and in create mode
// JumpTo is gated on it rather than on Current, so going back does not lock
// steps that were already reached.
type StepController struct {
	Mode       Mode `json:"mode"`
	Current    Step `json:"current"`
	MaxVisited Step `json:"maxVisited"`
}

func NewStepController(mode Mode) StepController {
	return StepController{Mode: mode, Current: FirstStep, MaxVisited: FirstStep}
}

// Next is a no-op on the last step.
func (c *StepController) Next() {
	if c.Current < LastStep {
		c.Current++
	}
	c.markVisited()
}

// Back is a no-op on the first step.
func (c *StepController) Back() {
	if c.Current > FirstStep {
		c.Current--
	}
}

func (c *StepController) JumpTo(s Step) error {
	if err := c.CheckJump(s); err != nil {
		return err
	}
	c.Current = s
	c.markVisited()
	return nil
}

// CheckJump reports whether JumpTo(s) would succeed without moving.
func (c StepController) CheckJump(s Step) error {
	if !s.Valid() {
		return ErrStepOutOfRange
	}
	if c.Mode == ModeEdit {
		return nil
	}
	if s > c.MaxVisited {
		return ErrStepLocked
	}
	return nil
}

func (c StepController) CanJumpTo(s Step) bool {
	return c.CheckJump(s) == nil
}

// IsTerminal is true on the review step, where the only moves left are
// Back and submitting.
func (c StepController) IsTerminal() bool {
	return c.Current == LastStep
}

func (c *StepController) markVisited() {
	if c.Current > c.MaxVisited {
		c.MaxVisited = c.Current
	}
}
