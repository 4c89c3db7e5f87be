package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	request "vitrine/internal/adapter/http/dto/request"
	response "vitrine/internal/adapter/http/dto/response"
	"vitrine/internal/domain/entities"
	"vitrine/internal/domain/wizard"
	"vitrine/internal/usecase"
	"vitrine/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
)

// WizardHandler exposes the listing wizard sessions over HTTP.
//
// Every successful call answers with the full wizard state, so the
// storefront only ever redraws from the last response.

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

func (h *WizardHandler) Start(c *gin.Context) {
	var payload request.StartWizardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Start(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[wizard][handler] start failed provider_id=%s err=%v", payload.ProviderID, err)
		writeWizardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(s))
}

func (h *WizardHandler) Get(c *gin.Context) {
	h.respond(c, h.usecase.Get)
}

// RenderStep previews one step without moving the wizard.
func (h *WizardHandler) RenderStep(c *gin.Context) {
	step, err := request.ParseStepParam(c.Param("step"))
	if err != nil {
		writeWizardError(c, err)
		return
	}

	view, err := h.usecase.RenderStep(c.Request.Context(), c.Param("id"), step)
	if err != nil {
		writeWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *WizardHandler) PatchDraft(c *gin.Context) {
	var payload request.PatchDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	patch, err := payload.Normalize()
	if err != nil {
		writeWizardError(c, err)
		return
	}

	h.respond(c, func(ctx context.Context, id string) (wizard.Session, error) {
		return h.usecase.Patch(ctx, id, patch)
	})
}

func (h *WizardHandler) SetListText(c *gin.Context) {
	field, err := entities.ParseListField(c.Param("field"))
	if err != nil {
		writeWizardError(c, err)
		return
	}
	var payload request.ListTextRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	h.respond(c, func(ctx context.Context, id string) (wizard.Session, error) {
		return h.usecase.SetListText(ctx, id, field, payload.Text)
	})
}

func (h *WizardHandler) ToggleWeekday(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		writeWizardError(c, entities.ErrInvalidWeekday)
		return
	}

	h.respond(c, func(ctx context.Context, id string) (wizard.Session, error) {
		return h.usecase.ToggleWeekday(ctx, id, day)
	})
}

func (h *WizardHandler) Next(c *gin.Context) {
	h.respond(c, h.usecase.Next)
}

func (h *WizardHandler) Back(c *gin.Context) {
	h.respond(c, h.usecase.Back)
}

func (h *WizardHandler) Jump(c *gin.Context) {
	var payload request.JumpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	step, err := payload.ResolveStep()
	if err != nil {
		writeWizardError(c, err)
		return
	}

	h.respond(c, func(ctx context.Context, id string) (wizard.Session, error) {
		return h.usecase.JumpTo(ctx, id, step)
	})
}

// AttachMedia expects a multipart form with a "file" part.
func (h *WizardHandler) AttachMedia(c *gin.Context) {
	slot, err := entities.ParseMediaSlot(c.Param("slot"))
	if err != nil {
		writeWizardError(c, err)
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	f, err := header.Open()
	if err != nil {
		writeWizardError(c, err)
		return
	}
	defer f.Close()

	file := usecase.MediaFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	}
	h.respond(c, func(ctx context.Context, id string) (wizard.Session, error) {
		return h.usecase.AttachMedia(ctx, id, slot, file)
	})
}

func (h *WizardHandler) RemoveMedia(c *gin.Context) {
	slot, err := entities.ParseMediaSlot(c.Param("slot"))
	if err != nil {
		writeWizardError(c, err)
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeWizardError(c, entities.ErrMediaIndexInvalid)
		return
	}

	h.respond(c, func(ctx context.Context, id string) (wizard.Session, error) {
		return h.usecase.RemoveMedia(ctx, id, slot, index)
	})
}

// Submit answers 200 with the redirect target, or 422 with the message and
// the wizard state when the submission failed.
func (h *WizardHandler) Submit(c *gin.Context) {
	var payload request.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	mode, err := payload.ResolveMode()
	if err != nil {
		writeWizardError(c, err)
		return
	}

	id := c.Param("id")
	log.Printf("[wizard][handler] submit start session_id=%s mode=%s", id, mode)
	out, err := h.usecase.Submit(c.Request.Context(), id, mode)
	if err != nil {
		var se *entities.SubmissionError
		if errors.As(err, &se) {
			log.Printf("[wizard][handler] submit rejected session_id=%s message=%q", id, se.Message)
			c.JSON(http.StatusUnprocessableEntity, response.SubmissionFailedResponse{
				Code:    "SUBMISSION_FAILED",
				Message: se.Message,
				Wizard:  response.FromSession(out.Session),
			})
			return
		}
		log.Printf("[wizard][handler] submit failed session_id=%s err=%v", id, err)
		writeWizardError(c, err)
		return
	}
	log.Printf("[wizard][handler] submit success session_id=%s listing_id=%s", id, out.Listing.ID)

	c.JSON(http.StatusOK, response.FromSubmitOutcome(out))
}

func (h *WizardHandler) Discard(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		writeWizardError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) respond(c *gin.Context, op func(ctx context.Context, id string) (wizard.Session, error)) {
	s, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func writeWizardError(c *gin.Context, err error) {
	appErr := mapWizardError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapWizardError(err error) *pkg.AppError {
	var se *entities.SubmissionError
	switch {
	case errors.As(err, &se):
		return pkg.NewDomainError("SUBMISSION_FAILED", se.Message, err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidProviderID),
		errors.Is(err, usecase.ErrMissingListingID), errors.Is(err, usecase.ErrEmptyMediaFile),
		errors.Is(err, request.ErrInvalidWeekdays), errors.Is(err, entities.ErrInvalidWeekday),
		errors.Is(err, entities.ErrInvalidListingType), errors.Is(err, entities.ErrInvalidPricingType),
		errors.Is(err, entities.ErrInvalidCancellation), errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrInvalidListField), errors.Is(err, entities.ErrInvalidMediaSlot),
		errors.Is(err, entities.ErrMediaIndexInvalid), errors.Is(err, entities.ErrNegativePrice):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, wizard.ErrStepOutOfRange):
		return pkg.NewDomainErrorSimple("STEP_OUT_OF_RANGE", "Step out of range", http.StatusBadRequest)
	case errors.Is(err, wizard.ErrStepLocked):
		return pkg.NewDomainErrorSimple("STEP_LOCKED", "Step not reached yet", http.StatusConflict)
	case errors.Is(err, wizard.ErrSessionConflict):
		return pkg.NewDomainErrorSimple("SESSION_CONFLICT", "Wizard changed in the meantime, reload and try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "A submission is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrWizardNotFound):
		return pkg.NewDomainErrorSimple("WIZARD_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrListingNotFound):
		return pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUploaderNotReady):
		return pkg.NewDomainErrorSimple("UPLOAD_UNAVAILABLE", "Media upload is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
