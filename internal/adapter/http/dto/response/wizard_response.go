package response

import (
	"time"

	"vitrine/internal/domain/entities"
	"vitrine/internal/domain/wizard"
	"vitrine/internal/usecase"
)

type StepSummary struct {
	Index    int    `json:"index"`
	Key      string `json:"key"`
	Title    string `json:"title"`
	Jumpable bool   `json:"jumpable"`
}

// WizardResponse is the full state the storefront needs to draw the wizard.
type WizardResponse struct {
	ID             string          `json:"id"`
	ProviderID     string          `json:"providerId"`
	ListingID      string          `json:"listingId,omitempty"`
	Mode           string          `json:"mode"`
	CurrentStep    int             `json:"currentStep"`
	CurrentStepKey string          `json:"currentStepKey"`
	MaxVisitedStep int             `json:"maxVisitedStep"`
	Steps          []StepSummary   `json:"steps"`
	Loading        bool            `json:"loading"`
	Error          string          `json:"error,omitempty"`
	View           wizard.StepView `json:"view"`
	Draft          entities.Draft  `json:"draft"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func FromSession(s wizard.Session) WizardResponse {
	steps := make([]StepSummary, 0, len(wizard.Steps()))
	for _, st := range wizard.Steps() {
		steps = append(steps, StepSummary{
			Index:    int(st),
			Key:      st.Key(),
			Title:    st.Title(),
			Jumpable: s.Steps.CanJumpTo(st),
		})
	}
	return WizardResponse{
		ID:             s.ID,
		ProviderID:     s.ProviderID,
		ListingID:      s.ListingID,
		Mode:           string(s.Steps.Mode),
		CurrentStep:    int(s.Steps.Current),
		CurrentStepKey: s.Steps.Current.Key(),
		MaxVisitedStep: int(s.Steps.MaxVisited),
		Steps:          steps,
		Loading:        s.Loading,
		Error:          s.LastError,
		View:           s.CurrentView(),
		Draft:          s.Draft,
		UpdatedAt:      s.UpdatedAt,
	}
}

// SubmitResponse is returned once the listings API accepted the submission.
type SubmitResponse struct {
	ListingID string `json:"listingId"`
	Status    string `json:"status"`
	Redirect  string `json:"redirect"`
}

func FromSubmitOutcome(o usecase.SubmitOutcome) SubmitResponse {
	return SubmitResponse{
		ListingID: o.Listing.ID,
		Status:    string(o.Listing.Status),
		Redirect:  o.Redirect,
	}
}

// SubmissionFailedResponse carries the message to show next to the submit
// button and the wizard state after the failed attempt.
type SubmissionFailedResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Wizard  WizardResponse `json:"wizard"`
}
