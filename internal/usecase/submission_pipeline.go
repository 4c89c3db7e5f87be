package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"vitrine/internal/domain/entities"
	"vitrine/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

const (
	msgTitleRequired       = "Título obrigatório"
	msgProviderRequired    = "Prestador obrigatório"
	msgInvalidBasePrice    = "Preço base inválido"
	msgInvalidDiscount     = "Preço promocional inválido"
	msgPricingNotAllowed   = "Tipo de preço não permitido para este tipo de anúncio"
	msgMissingListingID    = "Anúncio a editar não informado"
	msgSubmissionFailed    = "Não foi possível salvar o anúncio"
	msgInvalidSubmitStatus = "Modo de envio inválido"
)

// SubmitCommand carries everything one submission attempt needs.
type SubmitCommand struct {
	SessionID  string
	Draft      entities.Draft
	ProviderID string
	Mode       entities.ListingStatus
	IsEditing  bool
	ExistingID string
}

type SubmissionResult struct {
	Listing  entities.Listing
	Redirect string
}

// ISubmissionPipeline validates a draft, converts it to the wire record and
// hands it to the listings API.
//
// Every failure is returned as *entities.SubmissionError. The draft in the
// command is never modified.
type ISubmissionPipeline interface {
	Submit(ctx context.Context, cmd SubmitCommand) (SubmissionResult, error)
}

type SubmissionPipeline struct {
	gateway   interfaces.IListingGateway
	navigator interfaces.INavigator
	publisher interfaces.IListingEventPublisher
	validate  *validator.Validate
}

var _ ISubmissionPipeline = (*SubmissionPipeline)(nil)

// NewSubmissionPipeline builds the pipeline. publisher may be nil, in which
// case no event is emitted.
func NewSubmissionPipeline(gateway interfaces.IListingGateway, navigator interfaces.INavigator, publisher interfaces.IListingEventPublisher) *SubmissionPipeline {
	return &SubmissionPipeline{
		gateway:   gateway,
		navigator: navigator,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// submissionCheck is the subset of the outgoing record that is validated
// before any call is made.
type submissionCheck struct {
	ProviderID    string   `validate:"required"`
	Title         string   `validate:"required"`
	BasePrice     float64  `validate:"gte=0"`
	DiscountPrice *float64 `validate:"omitempty,gte=0"`
}

var checkMessages = map[string]string{
	"ProviderID":    msgProviderRequired,
	"Title":         msgTitleRequired,
	"BasePrice":     msgInvalidBasePrice,
	"DiscountPrice": msgInvalidDiscount,
}

func (p *SubmissionPipeline) Submit(ctx context.Context, cmd SubmitCommand) (SubmissionResult, error) {
	providerID := strings.TrimSpace(cmd.ProviderID)
	existingID := strings.TrimSpace(cmd.ExistingID)
	log.Printf("[wizard][submission] start session_id=%s provider_id=%s mode=%s editing=%t listing_id=%s",
		cmd.SessionID, providerID, cmd.Mode, cmd.IsEditing, existingID)

	mode, err := entities.ParseListingStatus(string(cmd.Mode))
	if err != nil {
		log.Printf("[wizard][submission] invalid mode session_id=%s mode=%q", cmd.SessionID, cmd.Mode)
		return SubmissionResult{}, entities.NewSubmissionError(msgInvalidSubmitStatus, err)
	}
	if err := p.check(cmd.Draft, providerID, cmd.IsEditing, existingID); err != nil {
		log.Printf("[wizard][submission] validation failed session_id=%s err=%v", cmd.SessionID, err)
		return SubmissionResult{}, err
	}
	if p.gateway == nil {
		log.Printf("[wizard][submission] listing gateway not configured session_id=%s", cmd.SessionID)
		return SubmissionResult{}, entities.NewSubmissionError(msgSubmissionFailed, errors.New("listing gateway not configured"))
	}

	payload := cmd.Draft.ToListing(providerID, mode)

	var saved entities.Listing
	if cmd.IsEditing {
		payload.ID = existingID
		saved, err = p.gateway.Update(ctx, existingID, payload)
	} else {
		saved, err = p.gateway.Create(ctx, payload)
	}
	if err != nil {
		log.Printf("[wizard][submission] listings api failed session_id=%s err=%v", cmd.SessionID, err)
		return SubmissionResult{}, asSubmissionError(err)
	}
	if saved.ID == "" {
		saved.ID = payload.ID
	}
	if saved.ProviderID == "" {
		saved.ProviderID = payload.ProviderID
	}
	if saved.Status == "" {
		saved.Status = payload.Status
	}
	if saved.Type == "" {
		saved.Type = payload.Type
	}
	log.Printf("[wizard][submission] saved session_id=%s listing_id=%s status=%s", cmd.SessionID, saved.ID, saved.Status)

	if p.publisher != nil {
		evt := entities.NewListingSubmittedEvent(cmd.SessionID, saved, cmd.IsEditing, time.Now())
		if err := p.publisher.PublishSubmitted(ctx, evt); err != nil {
			log.Printf("[wizard][submission] publish event failed listing_id=%s err=%v", saved.ID, err)
		}
	}

	redirect := ""
	if p.navigator != nil {
		redirect = p.navigator.ProviderDashboard(providerID)
	}
	return SubmissionResult{Listing: saved, Redirect: redirect}, nil
}

func (p *SubmissionPipeline) check(d entities.Draft, providerID string, isEditing bool, existingID string) error {
	in := submissionCheck{
		ProviderID:    providerID,
		Title:         strings.TrimSpace(d.Title.PT),
		BasePrice:     d.Pricing.BasePrice,
		DiscountPrice: d.Pricing.DiscountPrice,
	}
	if err := p.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			msg, ok := checkMessages[verrs[0].StructField()]
			if !ok {
				msg = msgSubmissionFailed
			}
			return entities.NewSubmissionError(msg, err)
		}
		return entities.NewSubmissionError(msgSubmissionFailed, err)
	}

	if !d.Pricing.PricingType.AllowedFor(d.Type) {
		return entities.NewSubmissionError(msgPricingNotAllowed, entities.ErrInvalidPricingType)
	}
	if isEditing && existingID == "" {
		return entities.NewSubmissionError(msgMissingListingID, ErrMissingListingID)
	}
	return nil
}

// asSubmissionError keeps the collaborator's message when it has one.
func asSubmissionError(err error) *entities.SubmissionError {
	var se *entities.SubmissionError
	if errors.As(err, &se) {
		return se
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = msgSubmissionFailed
	}
	return entities.NewSubmissionError(msg, err)
}
