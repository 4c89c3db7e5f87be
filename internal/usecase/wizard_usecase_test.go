package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vitrine/internal/domain/entities"
	"vitrine/internal/domain/wizard"
	mock_interfaces "vitrine/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type wizardMocks struct {
	repo      *mock_interfaces.MockIWizardSessionRepository
	gateway   *mock_interfaces.MockIListingGateway
	uploader  *mock_interfaces.MockIMediaUploader
	lock      *mock_interfaces.MockISubmissionLock
	navigator *mock_interfaces.MockINavigator
}

func newWizardUseCaseForTest(t *testing.T) (*WizardUseCase, wizardMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := wizardMocks{
		repo:      mock_interfaces.NewMockIWizardSessionRepository(ctrl),
		gateway:   mock_interfaces.NewMockIListingGateway(ctrl),
		uploader:  mock_interfaces.NewMockIMediaUploader(ctrl),
		lock:      mock_interfaces.NewMockISubmissionLock(ctrl),
		navigator: mock_interfaces.NewMockINavigator(ctrl),
	}
	pipeline := NewSubmissionPipeline(m.gateway, m.navigator, nil)
	return NewWizardUseCase(m.repo, m.gateway, m.uploader, m.lock, pipeline), m
}

func echoSave(_ context.Context, s wizard.Session) (wizard.Session, error) {
	return s, nil
}

func storedSession(mode wizard.Mode) wizard.Session {
	return wizard.Session{
		ID:         "s-1",
		ProviderID: "p-1",
		Steps:      wizard.NewStepController(mode),
		Draft:      entities.NewDefaultDraft(),
	}
}

func TestWizardUseCase_Start(t *testing.T) {
	t.Run("invalid provider", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Start(context.Background(), StartCommand{ProviderID: "  "})
		if !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
	})

	t.Run("create mode uses defaults", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(wizard.Session{})).DoAndReturn(echoSave)

		s, err := uc.Start(context.Background(), StartCommand{ProviderID: " p-1 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" || s.ProviderID != "p-1" || s.Steps.Mode != wizard.ModeCreate {
			t.Fatalf("unexpected session: %+v", s)
		}
		if s.Steps.Current != wizard.StepBasicInfo || s.Draft.Type != entities.ListingTypeService {
			t.Fatalf("expected defaults, got %+v", s)
		}
		if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
			t.Fatalf("expected timestamps")
		}
	})

	t.Run("initial data implies edit mode", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)

		initial := &entities.Listing{ID: "lst-1", Type: entities.ListingTypeEvent, BasePrice: 4500}
		s, err := uc.Start(context.Background(), StartCommand{ProviderID: "p-1", InitialData: initial})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Steps.Mode != wizard.ModeEdit || s.ListingID != "lst-1" {
			t.Fatalf("expected edit session for lst-1, got %+v", s)
		}
		if s.Draft.Pricing.BasePrice != 45.0 {
			t.Fatalf("expected 45.0, got %v", s.Draft.Pricing.BasePrice)
		}
	})

	t.Run("listing id fetches through gateway", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.gateway.EXPECT().Get(gomock.Any(), "lst-2").Return(entities.Listing{ID: "lst-2", Type: entities.ListingTypeProduct}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)

		s, err := uc.Start(context.Background(), StartCommand{ProviderID: "p-1", IsEditing: true, ListingID: "lst-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Draft.Product() == nil || s.Draft.Pricing.PricingType != entities.PricingTypeUnit {
			t.Fatalf("expected product draft, got %+v", s.Draft)
		}
	})

	t.Run("listing not found", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.gateway.EXPECT().Get(gomock.Any(), "lst-3").Return(entities.Listing{}, nil)

		_, err := uc.Start(context.Background(), StartCommand{ProviderID: "p-1", ListingID: "lst-3"})
		if !errors.Is(err, ErrListingNotFound) {
			t.Fatalf("expected ErrListingNotFound, got %v", err)
		}
	})

	t.Run("editing without listing", func(t *testing.T) {
		uc, _ := newWizardUseCaseForTest(t)
		_, err := uc.Start(context.Background(), StartCommand{ProviderID: "p-1", IsEditing: true})
		if !errors.Is(err, ErrMissingListingID) {
			t.Fatalf("expected ErrMissingListingID, got %v", err)
		}
	})

	t.Run("invalid listing type", func(t *testing.T) {
		uc, _ := newWizardUseCaseForTest(t)
		_, err := uc.Start(context.Background(), StartCommand{ProviderID: "p-1", InitialData: &entities.Listing{ID: "x", Type: "boat"}})
		if !errors.Is(err, entities.ErrInvalidListingType) {
			t.Fatalf("expected ErrInvalidListingType, got %v", err)
		}
	})
}

func TestWizardUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Get(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-9").Return(wizard.Session{}, nil)
		_, err := uc.Get(context.Background(), "s-9")
		if !errors.Is(err, ErrWizardNotFound) {
			t.Fatalf("expected ErrWizardNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(wizard.Session{}, errors.New("db"))
		_, err := uc.Get(context.Background(), "s-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestWizardUseCase_Navigation(t *testing.T) {
	t.Run("next then jump back", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		stored := storedSession(wizard.ModeCreate)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").DoAndReturn(func(context.Context, string) (wizard.Session, error) {
			return stored, nil
		}).AnyTimes()
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s wizard.Session) (wizard.Session, error) {
			stored = s
			return s, nil
		}).AnyTimes()

		for i := 0; i < 2; i++ {
			if _, err := uc.Next(context.Background(), "s-1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if stored.Steps.Current != wizard.StepPricingAvailability {
			t.Fatalf("expected pricing step, got %d", stored.Steps.Current)
		}

		s, err := uc.Back(context.Background(), "s-1")
		if err != nil || s.Steps.Current != wizard.StepDetails {
			t.Fatalf("expected details step, got %d err=%v", s.Steps.Current, err)
		}

		if _, err := uc.JumpTo(context.Background(), "s-1", wizard.StepReview); !errors.Is(err, wizard.ErrStepLocked) {
			t.Fatalf("expected ErrStepLocked, got %v", err)
		}
		s, err = uc.JumpTo(context.Background(), "s-1", wizard.StepPricingAvailability)
		if err != nil || s.Steps.Current != wizard.StepPricingAvailability {
			t.Fatalf("expected jump to pricing, got %d err=%v", s.Steps.Current, err)
		}

		if _, err := uc.RenderStep(context.Background(), "s-1", wizard.StepMedia); !errors.Is(err, wizard.ErrStepLocked) {
			t.Fatalf("expected ErrStepLocked on preview, got %v", err)
		}
		view, err := uc.RenderStep(context.Background(), "s-1", wizard.StepDetails)
		if err != nil || view.Step != "details" {
			t.Fatalf("unexpected view %+v err=%v", view, err)
		}
	})

	t.Run("mutations rejected while loading", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		stored := storedSession(wizard.ModeEdit)
		stored.Loading = true
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(stored, nil).Times(4)
		m.lock.EXPECT().Acquire(gomock.Any(), "wizard:submit:s-1").Return(false, nil).Times(4)

		if _, err := uc.Next(context.Background(), "s-1"); !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}
		if _, err := uc.Patch(context.Background(), "s-1", entities.DraftPatch{}); !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}
		if _, err := uc.Submit(context.Background(), "s-1", entities.ListingStatusDraft); !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}
		if err := uc.Discard(context.Background(), "s-1"); !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}
	})

	t.Run("stale loading cleared once lock is free", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		stored := storedSession(wizard.ModeEdit)
		stored.Loading = true
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(stored, nil).Times(2)
		m.lock.EXPECT().Acquire(gomock.Any(), "wizard:submit:s-1").Return(true, nil).Times(2)
		m.lock.EXPECT().Release(gomock.Any(), "wizard:submit:s-1").Return(nil).Times(2)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)
		m.repo.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)

		s, err := uc.Next(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Loading || s.Steps.Current != wizard.StepDetails {
			t.Fatalf("expected loading cleared and step advanced, got %+v", s)
		}
		if err := uc.Discard(context.Background(), "s-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("loading without lock stays blocked", func(t *testing.T) {
		repo := mock_interfaces.NewMockIWizardSessionRepository(gomock.NewController(t))
		uc := NewWizardUseCase(repo, nil, nil, nil, nil)
		stored := storedSession(wizard.ModeEdit)
		stored.Loading = true
		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(stored, nil)

		if _, err := uc.Next(context.Background(), "s-1"); !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}
	})
}

func TestWizardUseCase_DraftEdits(t *testing.T) {
	uc, m := newWizardUseCaseForTest(t)
	stored := storedSession(wizard.ModeCreate)
	m.repo.EXPECT().GetByID(gomock.Any(), "s-1").DoAndReturn(func(context.Context, string) (wizard.Session, error) {
		return stored, nil
	}).AnyTimes()
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s wizard.Session) (wizard.Session, error) {
		stored = s
		return s, nil
	}).AnyTimes()

	fixed := entities.PricingTypeFixedGroup
	if _, err := uc.Patch(context.Background(), "s-1", entities.DraftPatch{PricingType: &fixed}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	product := entities.ListingTypeProduct
	s, err := uc.Patch(context.Background(), "s-1", entities.DraftPatch{Type: &product})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Draft.Pricing.PricingType != entities.PricingTypeUnit {
		t.Fatalf("expected unit pricing after type change, got %s", s.Draft.Pricing.PricingType)
	}

	s, err = uc.SetListText(context.Background(), "s-1", entities.ListFieldTags, "tours, gastronomia")
	if err != nil || strings.Join(s.Draft.Tags, "|") != "tours|gastronomia" {
		t.Fatalf("unexpected tags %v err=%v", s.Draft.Tags, err)
	}
	if _, err := uc.SetListText(context.Background(), "s-1", entities.ListField("keywords"), "x"); !errors.Is(err, entities.ErrInvalidListField) {
		t.Fatalf("expected ErrInvalidListField, got %v", err)
	}

	s, err = uc.ToggleWeekday(context.Background(), "s-1", 3)
	if err != nil || len(s.Draft.Availability.Weekdays) != 1 {
		t.Fatalf("unexpected weekdays %v err=%v", s.Draft.Availability.Weekdays, err)
	}
	if _, err := uc.ToggleWeekday(context.Background(), "s-1", 7); !errors.Is(err, entities.ErrInvalidWeekday) {
		t.Fatalf("expected ErrInvalidWeekday, got %v", err)
	}
}

func TestWizardUseCase_Media(t *testing.T) {
	t.Run("upload then remove", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		stored := storedSession(wizard.ModeCreate)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").DoAndReturn(func(context.Context, string) (wizard.Session, error) {
			return stored, nil
		}).AnyTimes()
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s wizard.Session) (wizard.Session, error) {
			stored = s
			return s, nil
		}).AnyTimes()
		m.uploader.EXPECT().Upload(gomock.Any(), "a.jpg", "image/jpeg", gomock.Any()).Return("https://cdn.example/a.jpg", nil)
		m.uploader.EXPECT().Upload(gomock.Any(), "b.jpg", "image/jpeg", gomock.Any()).Return("https://cdn.example/b.jpg", nil)

		for _, name := range []string{"a.jpg", "b.jpg"} {
			file := MediaFile{Filename: name, ContentType: "image/jpeg", Size: 3, Body: strings.NewReader("abc")}
			if _, err := uc.AttachMedia(context.Background(), "s-1", entities.MediaSlotGallery, file); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if len(stored.Draft.Media.Gallery) != 2 {
			t.Fatalf("expected two gallery entries, got %v", stored.Draft.Media.Gallery)
		}

		s, err := uc.RemoveMedia(context.Background(), "s-1", entities.MediaSlotGallery, 0)
		if err != nil || len(s.Draft.Media.Gallery) != 1 || s.Draft.Media.Gallery[0] != "https://cdn.example/b.jpg" {
			t.Fatalf("unexpected gallery %v err=%v", s.Draft.Media.Gallery, err)
		}
		if _, err := uc.RemoveMedia(context.Background(), "s-1", entities.MediaSlotGallery, 5); !errors.Is(err, entities.ErrMediaIndexInvalid) {
			t.Fatalf("expected ErrMediaIndexInvalid, got %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		uc, _ := newWizardUseCaseForTest(t)
		_, err := uc.AttachMedia(context.Background(), "s-1", entities.MediaSlotMainImage, MediaFile{Filename: "a.jpg"})
		if !errors.Is(err, ErrEmptyMediaFile) {
			t.Fatalf("expected ErrEmptyMediaFile, got %v", err)
		}
	})

	t.Run("invalid slot", func(t *testing.T) {
		uc, _ := newWizardUseCaseForTest(t)
		_, err := uc.AttachMedia(context.Background(), "s-1", entities.MediaSlot("avatar"), MediaFile{Size: 1, Body: strings.NewReader("a")})
		if !errors.Is(err, entities.ErrInvalidMediaSlot) {
			t.Fatalf("expected ErrInvalidMediaSlot, got %v", err)
		}
	})

	t.Run("upload failure leaves draft", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(storedSession(wizard.ModeCreate), nil)
		m.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3"))

		_, err := uc.AttachMedia(context.Background(), "s-1", entities.MediaSlotVideo, MediaFile{Size: 1, Body: strings.NewReader("a")})
		if err == nil || err.Error() != "s3" {
			t.Fatalf("expected s3 error, got %v", err)
		}
	})
}

func TestWizardUseCase_Submit(t *testing.T) {
	reviewSession := func() wizard.Session {
		s := storedSession(wizard.ModeCreate)
		s.Steps = wizard.StepController{Mode: wizard.ModeCreate, Current: wizard.StepReview, MaxVisited: wizard.StepReview}
		title := "Passeio de barco"
		base := 45.0
		s.Draft = s.Draft.Apply(entities.DraftPatch{Title: &entities.LocalizedTextPatch{PT: &title}, BasePrice: &base})
		return s
	}

	t.Run("api rejection keeps session on review", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		var saves []wizard.Session
		gomock.InOrder(
			m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(reviewSession(), nil),
			m.lock.EXPECT().Acquire(gomock.Any(), "wizard:submit:s-1").Return(true, nil),
		)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s wizard.Session) (wizard.Session, error) {
			saves = append(saves, s)
			return s, nil
		}).Times(2)
		m.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Listing{}, apiError{msg: "Título obrigatório"})
		m.lock.EXPECT().Release(gomock.Any(), "wizard:submit:s-1").Return(nil)

		out, err := uc.Submit(context.Background(), "s-1", entities.ListingStatusPublished)
		var se *entities.SubmissionError
		if !errors.As(err, &se) || se.Message != "Título obrigatório" {
			t.Fatalf("expected submission error, got %v", err)
		}
		if !saves[0].Loading {
			t.Fatalf("expected loading persisted while in flight")
		}
		if out.Session.Loading || out.Session.LastError != "Título obrigatório" || out.Session.Steps.Current != wizard.StepReview {
			t.Fatalf("unexpected session after failure: %+v", out.Session)
		}
	})

	t.Run("failed clearing save is retried", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(reviewSession(), nil)
		m.lock.EXPECT().Acquire(gomock.Any(), "wizard:submit:s-1").Return(true, nil)
		gomock.InOrder(
			m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave),
			m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(wizard.Session{}, errors.New("throttled")),
			m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s wizard.Session) (wizard.Session, error) {
				if s.Loading {
					t.Fatalf("expected loading cleared on retry")
				}
				return s, nil
			}),
		)
		m.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Listing{}, apiError{msg: "Título obrigatório"})
		m.lock.EXPECT().Release(gomock.Any(), "wizard:submit:s-1").Return(nil)

		out, err := uc.Submit(context.Background(), "s-1", entities.ListingStatusPublished)
		var se *entities.SubmissionError
		if !errors.As(err, &se) {
			t.Fatalf("expected submission error, got %v", err)
		}
		if out.Session.Loading || out.Session.LastError != "Título obrigatório" {
			t.Fatalf("unexpected session after failure: %+v", out.Session)
		}
	})

	t.Run("retry after lost clearing save", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		stored := reviewSession()
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").DoAndReturn(func(context.Context, string) (wizard.Session, error) {
			return stored, nil
		}).Times(2)
		saveErr := errors.New("throttled")
		calls := 0
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s wizard.Session) (wizard.Session, error) {
			calls++
			if calls >= 2 && calls <= 1+clearLoadingAttempts {
				return wizard.Session{}, saveErr
			}
			stored = s
			return s, nil
		}).Times(2 + clearLoadingAttempts)
		m.lock.EXPECT().Acquire(gomock.Any(), "wizard:submit:s-1").Return(true, nil).Times(2)
		m.lock.EXPECT().Release(gomock.Any(), "wizard:submit:s-1").Return(nil).Times(2)
		gomock.InOrder(
			m.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Listing{}, apiError{msg: "indisponível"}),
			m.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Listing{ID: "lst-9"}, nil),
		)
		m.navigator.EXPECT().ProviderDashboard("p-1").Return("/provider/dashboard")
		m.repo.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)

		if _, err := uc.Submit(context.Background(), "s-1", entities.ListingStatusPublished); err == nil {
			t.Fatalf("expected first submission to fail")
		}
		if !stored.Loading {
			t.Fatalf("expected loading left behind by the lost save")
		}
		out, err := uc.Submit(context.Background(), "s-1", entities.ListingStatusPublished)
		if err != nil {
			t.Fatalf("expected retry to go through, got %v", err)
		}
		if out.Listing.ID != "lst-9" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("conflicting loading save is returned", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(reviewSession(), nil)
		m.lock.EXPECT().Acquire(gomock.Any(), "wizard:submit:s-1").Return(true, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(wizard.Session{}, wizard.ErrSessionConflict)
		m.lock.EXPECT().Release(gomock.Any(), "wizard:submit:s-1").Return(nil)

		if _, err := uc.Submit(context.Background(), "s-1", entities.ListingStatusPublished); !errors.Is(err, wizard.ErrSessionConflict) {
			t.Fatalf("expected ErrSessionConflict, got %v", err)
		}
	})

	t.Run("success drops session", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(reviewSession(), nil)
		m.lock.EXPECT().Acquire(gomock.Any(), "wizard:submit:s-1").Return(true, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)
		m.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Listing{ID: "lst-1"}, nil)
		m.navigator.EXPECT().ProviderDashboard("p-1").Return("/provider/dashboard")
		m.repo.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)
		m.lock.EXPECT().Release(gomock.Any(), "wizard:submit:s-1").Return(nil)

		out, err := uc.Submit(context.Background(), "s-1", entities.ListingStatusDraft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Redirect != "/provider/dashboard" || out.Listing.ID != "lst-1" || out.Session.Loading {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("lock held", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(reviewSession(), nil)
		m.lock.EXPECT().Acquire(gomock.Any(), "wizard:submit:s-1").Return(false, nil)

		_, err := uc.Submit(context.Background(), "s-1", entities.ListingStatusDraft)
		if !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}
	})

	t.Run("cancelled request still completes", func(t *testing.T) {
		uc, m := newWizardUseCaseForTest(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(reviewSession(), nil)
		m.lock.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)
		m.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, l entities.Listing) (entities.Listing, error) {
			if ctx.Err() != nil {
				t.Fatalf("expected detached context, got %v", ctx.Err())
			}
			l.ID = "lst-5"
			return l, nil
		})
		m.navigator.EXPECT().ProviderDashboard(gomock.Any()).Return("/dash")
		m.repo.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)
		m.lock.EXPECT().Release(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Submit(ctx, "s-1", entities.ListingStatusPublished); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWizardUseCase_Discard(t *testing.T) {
	uc, m := newWizardUseCaseForTest(t)
	m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(storedSession(wizard.ModeCreate), nil)
	m.repo.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)

	if err := uc.Discard(context.Background(), "s-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
