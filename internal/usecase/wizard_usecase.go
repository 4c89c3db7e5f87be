package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"vitrine/internal/domain/entities"
	"vitrine/internal/domain/wizard"
	"vitrine/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWizardNotFound     = errors.New("wizard session not found")
	ErrInvalidSessionID   = errors.New("invalid wizard session id")
	ErrInvalidProviderID  = errors.New("invalid provider id")
	ErrMissingListingID   = errors.New("listing id required in edit mode")
	ErrListingNotFound    = errors.New("listing not found")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrEmptyMediaFile     = errors.New("empty media file")
	ErrUploaderNotReady   = errors.New("media uploader not configured")
)

// clearLoadingAttempts bounds the saves that reset Loading after a failed
// submission.
const clearLoadingAttempts = 3

// StartCommand mounts a wizard. InitialData implies edit mode; so does
// ListingID, in which case the listing is fetched first.
type StartCommand struct {
	ProviderID  string
	IsEditing   bool
	ListingID   string
	InitialData *entities.Listing
}

// MediaFile is an upload received from the storefront.
type MediaFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// SubmitOutcome is the result of Submit. On success Session is the final
// state before it was dropped and Redirect is where the provider goes next.
type SubmitOutcome struct {
	Session  wizard.Session
	Listing  entities.Listing
	Redirect string
}

// IWizardUseCase exposes the wizard session operations.
//
// Every mutation loads the session, applies one pure transition and saves it
// back. Mutations are rejected while a submission is in flight.

type IWizardUseCase interface {
	Start(ctx context.Context, cmd StartCommand) (wizard.Session, error)
	Get(ctx context.Context, id string) (wizard.Session, error)
	RenderStep(ctx context.Context, id string, step wizard.Step) (wizard.StepView, error)
	Patch(ctx context.Context, id string, patch entities.DraftPatch) (wizard.Session, error)
	SetListText(ctx context.Context, id string, field entities.ListField, text string) (wizard.Session, error)
	ToggleWeekday(ctx context.Context, id string, day int) (wizard.Session, error)
	Next(ctx context.Context, id string) (wizard.Session, error)
	Back(ctx context.Context, id string) (wizard.Session, error)
	JumpTo(ctx context.Context, id string, step wizard.Step) (wizard.Session, error)
	AttachMedia(ctx context.Context, id string, slot entities.MediaSlot, file MediaFile) (wizard.Session, error)
	RemoveMedia(ctx context.Context, id string, slot entities.MediaSlot, index int) (wizard.Session, error)
	Submit(ctx context.Context, id string, mode entities.ListingStatus) (SubmitOutcome, error)
	Discard(ctx context.Context, id string) error
}

type WizardUseCase struct {
	repo     interfaces.IWizardSessionRepository
	gateway  interfaces.IListingGateway
	uploader interfaces.IMediaUploader
	lock     interfaces.ISubmissionLock
	pipeline ISubmissionPipeline
	now      func() time.Time
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(
	repo interfaces.IWizardSessionRepository,
	gateway interfaces.IListingGateway,
	uploader interfaces.IMediaUploader,
	lock interfaces.ISubmissionLock,
	pipeline ISubmissionPipeline,
) *WizardUseCase {
	return &WizardUseCase{
		repo:     repo,
		gateway:  gateway,
		uploader: uploader,
		lock:     lock,
		pipeline: pipeline,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *WizardUseCase) Start(ctx context.Context, cmd StartCommand) (wizard.Session, error) {
	providerID := strings.TrimSpace(cmd.ProviderID)
	if providerID == "" {
		return wizard.Session{}, ErrInvalidProviderID
	}
	listingID := strings.TrimSpace(cmd.ListingID)
	editing := cmd.IsEditing || cmd.InitialData != nil || listingID != ""

	draft := entities.NewDefaultDraft()
	if editing {
		initial := cmd.InitialData
		if initial == nil {
			if listingID == "" {
				return wizard.Session{}, ErrMissingListingID
			}
			fetched, err := u.fetchListing(ctx, listingID)
			if err != nil {
				return wizard.Session{}, err
			}
			initial = &fetched
		}
		if initial.ID != "" {
			listingID = initial.ID
		}
		if listingID == "" {
			return wizard.Session{}, ErrMissingListingID
		}
		hydrated, err := entities.HydrateDraft(*initial)
		if err != nil {
			log.Printf("[wizard][usecase] hydrate failed listing_id=%s err=%v", listingID, err)
			return wizard.Session{}, err
		}
		draft = hydrated
	}

	now := u.now()
	s := wizard.Session{
		ID:         uuid.NewString(),
		ProviderID: providerID,
		ListingID:  listingID,
		Steps:      wizard.NewStepController(wizard.ModeFor(editing)),
		Draft:      draft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	log.Printf("[wizard][usecase] start session_id=%s provider_id=%s mode=%s listing_id=%s", s.ID, providerID, s.Steps.Mode, listingID)
	return u.repo.Create(ctx, s)
}

func (u *WizardUseCase) fetchListing(ctx context.Context, id string) (entities.Listing, error) {
	if u.gateway == nil {
		return entities.Listing{}, errors.New("listing gateway not configured")
	}
	l, err := u.gateway.Get(ctx, id)
	if err != nil {
		log.Printf("[wizard][usecase] fetch listing failed listing_id=%s err=%v", id, err)
		return entities.Listing{}, err
	}
	if l.ID == "" {
		return entities.Listing{}, ErrListingNotFound
	}
	return l, nil
}

func (u *WizardUseCase) Get(ctx context.Context, id string) (wizard.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return wizard.Session{}, ErrInvalidSessionID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return wizard.Session{}, err
	}
	if s.ID == "" {
		return wizard.Session{}, ErrWizardNotFound
	}
	return s, nil
}

func (u *WizardUseCase) RenderStep(ctx context.Context, id string, step wizard.Step) (wizard.StepView, error) {
	s, err := u.Get(ctx, id)
	if err != nil {
		return wizard.StepView{}, err
	}
	if err := s.Steps.CheckJump(step); err != nil {
		return wizard.StepView{}, err
	}
	return wizard.Render(step, s.Draft), nil
}

// mutate runs fn on the loaded session and saves the result.
func (u *WizardUseCase) mutate(ctx context.Context, id string, fn func(s *wizard.Session) error) (wizard.Session, error) {
	s, err := u.Get(ctx, id)
	if err != nil {
		return wizard.Session{}, err
	}
	if err := u.ensureIdle(ctx, &s); err != nil {
		return wizard.Session{}, err
	}
	if err := fn(&s); err != nil {
		return wizard.Session{}, err
	}
	s.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, s)
	if err != nil {
		return wizard.Session{}, err
	}
	if saved.ID == "" {
		return wizard.Session{}, ErrWizardNotFound
	}
	return saved, nil
}

func (u *WizardUseCase) Patch(ctx context.Context, id string, patch entities.DraftPatch) (wizard.Session, error) {
	return u.mutate(ctx, id, func(s *wizard.Session) error {
		s.Draft = s.Draft.Apply(patch)
		return nil
	})
}

func (u *WizardUseCase) SetListText(ctx context.Context, id string, field entities.ListField, text string) (wizard.Session, error) {
	patch, err := entities.ListTextPatch(field, text)
	if err != nil {
		return wizard.Session{}, err
	}
	return u.Patch(ctx, id, patch)
}

func (u *WizardUseCase) ToggleWeekday(ctx context.Context, id string, day int) (wizard.Session, error) {
	return u.mutate(ctx, id, func(s *wizard.Session) error {
		d, err := s.Draft.ToggleWeekday(day)
		if err != nil {
			return err
		}
		s.Draft = d
		return nil
	})
}

func (u *WizardUseCase) Next(ctx context.Context, id string) (wizard.Session, error) {
	return u.mutate(ctx, id, func(s *wizard.Session) error {
		s.Steps.Next()
		return nil
	})
}

func (u *WizardUseCase) Back(ctx context.Context, id string) (wizard.Session, error) {
	return u.mutate(ctx, id, func(s *wizard.Session) error {
		s.Steps.Back()
		return nil
	})
}

func (u *WizardUseCase) JumpTo(ctx context.Context, id string, step wizard.Step) (wizard.Session, error) {
	return u.mutate(ctx, id, func(s *wizard.Session) error {
		return s.Steps.JumpTo(step)
	})
}

func (u *WizardUseCase) AttachMedia(ctx context.Context, id string, slot entities.MediaSlot, file MediaFile) (wizard.Session, error) {
	if _, err := entities.ParseMediaSlot(string(slot)); err != nil {
		return wizard.Session{}, err
	}
	if file.Body == nil || file.Size == 0 {
		return wizard.Session{}, ErrEmptyMediaFile
	}
	if u.uploader == nil {
		return wizard.Session{}, ErrUploaderNotReady
	}

	s, err := u.Get(ctx, id)
	if err != nil {
		return wizard.Session{}, err
	}
	if s.Loading {
		return wizard.Session{}, ErrSubmissionInFlight
	}

	url, err := u.uploader.Upload(ctx, file.Filename, file.ContentType, file.Body)
	if err != nil {
		log.Printf("[wizard][usecase] upload failed session_id=%s slot=%s err=%v", s.ID, slot, err)
		return wizard.Session{}, err
	}
	log.Printf("[wizard][usecase] uploaded session_id=%s slot=%s url=%s", s.ID, slot, url)

	return u.mutate(ctx, s.ID, func(s *wizard.Session) error {
		patch, err := s.Draft.MediaPatch(slot, url)
		if err != nil {
			return err
		}
		s.Draft = s.Draft.Apply(patch)
		return nil
	})
}

func (u *WizardUseCase) RemoveMedia(ctx context.Context, id string, slot entities.MediaSlot, index int) (wizard.Session, error) {
	return u.mutate(ctx, id, func(s *wizard.Session) error {
		patch, err := s.Draft.RemoveMediaPatch(slot, index)
		if err != nil {
			return err
		}
		s.Draft = s.Draft.Apply(patch)
		return nil
	})
}

// Submit runs the submission pipeline once. The call is not cancelled when
// ctx is; the lock and the loading flag are always cleared before returning.
//
// On failure the session keeps its step, LastError carries the message and
// the returned error is the *entities.SubmissionError. On success the
// session is dropped.
func (u *WizardUseCase) Submit(ctx context.Context, id string, mode entities.ListingStatus) (SubmitOutcome, error) {
	s, err := u.Get(ctx, id)
	if err != nil {
		return SubmitOutcome{}, err
	}
	if s.Loading && u.lock == nil {
		return SubmitOutcome{}, ErrSubmissionInFlight
	}
	if u.pipeline == nil {
		return SubmitOutcome{}, errors.New("submission pipeline not configured")
	}

	ctx = context.WithoutCancel(ctx)
	lockKey := submissionLockKey(s.ID)
	if u.lock != nil {
		ok, err := u.lock.Acquire(ctx, lockKey)
		if err != nil {
			log.Printf("[wizard][usecase] acquire lock failed session_id=%s err=%v", s.ID, err)
			return SubmitOutcome{}, err
		}
		if !ok {
			log.Printf("[wizard][usecase] submission already in flight session_id=%s", s.ID)
			return SubmitOutcome{}, ErrSubmissionInFlight
		}
		defer func() {
			if err := u.lock.Release(ctx, lockKey); err != nil {
				log.Printf("[wizard][usecase] release lock failed session_id=%s err=%v", s.ID, err)
			}
		}()
		if s.Loading {
			log.Printf("[wizard][usecase] clearing stale loading flag session_id=%s", s.ID)
		}
	}

	s.Loading = true
	s.LastError = ""
	s.UpdatedAt = u.now()
	if s, err = u.repo.Save(ctx, s); err != nil {
		return SubmitOutcome{}, err
	}
	if s.ID == "" {
		return SubmitOutcome{}, ErrWizardNotFound
	}

	log.Printf("[wizard][usecase] submit start session_id=%s mode=%s step=%s", s.ID, mode, s.Steps.Current.Key())
	res, subErr := u.pipeline.Submit(ctx, SubmitCommand{
		SessionID:  s.ID,
		Draft:      s.Draft,
		ProviderID: s.ProviderID,
		Mode:       mode,
		IsEditing:  s.IsEditing(),
		ExistingID: s.ListingID,
	})

	s.Loading = false
	s.UpdatedAt = u.now()
	if subErr != nil {
		s.LastError = subErr.Error()
		saved, err := u.saveWithRetry(ctx, s)
		if err != nil {
			log.Printf("[wizard][usecase] save failed submission state failed session_id=%s err=%v", s.ID, err)
			return SubmitOutcome{Session: s}, subErr
		}
		log.Printf("[wizard][usecase] submit failed session_id=%s err=%v", s.ID, subErr)
		return SubmitOutcome{Session: saved}, subErr
	}

	if err := u.repo.Delete(ctx, s.ID); err != nil {
		log.Printf("[wizard][usecase] drop session failed session_id=%s err=%v", s.ID, err)
	}
	log.Printf("[wizard][usecase] submit done session_id=%s listing_id=%s redirect=%s", s.ID, res.Listing.ID, res.Redirect)
	return SubmitOutcome{Session: s, Listing: res.Listing, Redirect: res.Redirect}, nil
}

func (u *WizardUseCase) Discard(ctx context.Context, id string) error {
	s, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := u.ensureIdle(ctx, &s); err != nil {
		return err
	}
	log.Printf("[wizard][usecase] discard session_id=%s", s.ID)
	return u.repo.Delete(ctx, s.ID)
}

// ensureIdle rejects work on a session whose submission is still running.
// A persisted Loading flag whose lock is free belongs to a submission that
// ended without clearing it, and is dropped.
func (u *WizardUseCase) ensureIdle(ctx context.Context, s *wizard.Session) error {
	if !s.Loading {
		return nil
	}
	if u.lock == nil {
		return ErrSubmissionInFlight
	}

	key := submissionLockKey(s.ID)
	ok, err := u.lock.Acquire(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSubmissionInFlight
	}
	if err := u.lock.Release(ctx, key); err != nil {
		log.Printf("[wizard][usecase] release lock failed session_id=%s err=%v", s.ID, err)
	}
	log.Printf("[wizard][usecase] clearing stale loading flag session_id=%s", s.ID)
	s.Loading = false
	return nil
}

// saveWithRetry is used for the save that clears Loading after a failed
// submission. A version conflict is not retried.
func (u *WizardUseCase) saveWithRetry(ctx context.Context, s wizard.Session) (wizard.Session, error) {
	var err error
	for attempt := 1; attempt <= clearLoadingAttempts; attempt++ {
		var saved wizard.Session
		saved, err = u.repo.Save(ctx, s)
		if err == nil || errors.Is(err, wizard.ErrSessionConflict) {
			return saved, err
		}
		log.Printf("[wizard][usecase] save attempt failed session_id=%s attempt=%d err=%v", s.ID, attempt, err)
	}
	return wizard.Session{}, err
}

func submissionLockKey(sessionID string) string {
	return "wizard:submit:" + sessionID
}
