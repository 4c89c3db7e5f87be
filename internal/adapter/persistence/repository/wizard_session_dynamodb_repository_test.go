package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"vitrine/internal/domain/entities"
	"vitrine/internal/domain/wizard"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type memoryTable struct {
	items map[string]map[string]types.AttributeValue
	err   error
}

func newMemoryTable() *memoryTable {
	return &memoryTable{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func numberAttr(item map[string]types.AttributeValue, name string) (string, bool) {
	v, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return "", false
	}
	return v.Value, true
}

func (m *memoryTable) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	id := keyOf(in.Item)
	existing, exists := m.items[id]
	stored, hasVersion := numberAttr(existing, "version")

	ok := true
	switch *in.ConditionExpression {
	case "attribute_not_exists(#id)":
		ok = !exists
	case "attribute_exists(#id) AND attribute_not_exists(#version)":
		ok = exists && !hasVersion
	case "attribute_exists(#id) AND #version = :expected":
		expected, _ := numberAttr(in.ExpressionAttributeValues, ":expected")
		ok = exists && hasVersion && stored == expected
	}
	if !ok {
		cfe := &types.ConditionalCheckFailedException{}
		if in.ReturnValuesOnConditionCheckFailure == types.ReturnValuesOnConditionCheckFailureAllOld {
			cfe.Item = existing
		}
		return nil, cfe
	}
	m.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *memoryTable) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dynamodb.GetItemOutput{Item: m.items[keyOf(in.Key)]}, nil
}

func (m *memoryTable) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(m.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func sampleWizardSession() wizard.Session {
	title := "Passeio de barco"
	base := 45.0
	discount := 39.9
	now := time.Now().UTC().Truncate(time.Millisecond)

	steps := wizard.NewStepController(wizard.ModeEdit)
	steps.Next()
	steps.Next()

	return wizard.Session{
		ID:         "s-1",
		ProviderID: "p-1",
		ListingID:  "lst-1",
		Steps:      steps,
		Draft: entities.NewDefaultDraft().Apply(entities.DraftPatch{
			Title:         &entities.LocalizedTextPatch{PT: &title},
			BasePrice:     &base,
			DiscountPrice: entities.Some(discount),
		}),
		LastError: "Título obrigatório",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestWizardSessionDynamoRepository_RoundTrip(t *testing.T) {
	table := newMemoryTable()
	repo := &WizardSessionDynamoRepository{ddb: table, tableName: "wizard_sessions", ttl: time.Hour}
	ctx := context.Background()
	s := sampleWizardSession()

	if _, err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetByID(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != s.ID || got.ListingID != "lst-1" || got.Steps != s.Steps || got.LastError != s.LastError || got.Version != 1 {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.Draft.Title.PT != "Passeio de barco" || got.Draft.Pricing.DiscountPrice == nil || *got.Draft.Pricing.DiscountPrice != 39.9 {
		t.Fatalf("draft not restored: %+v", got.Draft)
	}
	if !got.CreatedAt.Equal(s.CreatedAt) {
		t.Fatalf("created_at mismatch: %v vs %v", got.CreatedAt, s.CreatedAt)
	}

	if _, err := repo.Create(ctx, s); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}
}

func TestWizardSessionDynamoRepository_Save(t *testing.T) {
	ctx := context.Background()
	newRepo := func() (*WizardSessionDynamoRepository, *memoryTable) {
		table := newMemoryTable()
		return &WizardSessionDynamoRepository{ddb: table, tableName: "wizard_sessions", ttl: time.Hour}, table
	}

	t.Run("missing item gives zero session", func(t *testing.T) {
		repo, _ := newRepo()
		s := sampleWizardSession()
		s.Version = 3
		got, err := repo.Save(ctx, s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero session, got %+v", got)
		}
	})

	t.Run("save bumps version", func(t *testing.T) {
		repo, _ := newRepo()
		created, err := repo.Create(ctx, sampleWizardSession())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.Version != 1 {
			t.Fatalf("expected version 1 after create, got %d", created.Version)
		}
		created.Loading = true
		saved, err := repo.Save(ctx, created)
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if saved.Version != 2 {
			t.Fatalf("expected version 2, got %d", saved.Version)
		}
		got, _ := repo.GetByID(ctx, created.ID)
		if !got.Loading || got.Version != 2 {
			t.Fatalf("unexpected stored session: %+v", got)
		}
	})

	t.Run("stale save is rejected", func(t *testing.T) {
		repo, _ := newRepo()
		created, _ := repo.Create(ctx, sampleWizardSession())

		submit := created
		submit.Loading = true
		if _, err := repo.Save(ctx, submit); err != nil {
			t.Fatalf("first save: %v", err)
		}

		patch := created
		patch.Draft.Category = "passeios"
		if _, err := repo.Save(ctx, patch); !errors.Is(err, wizard.ErrSessionConflict) {
			t.Fatalf("expected ErrSessionConflict, got %v", err)
		}

		got, _ := repo.GetByID(ctx, created.ID)
		if !got.Loading || got.Draft.Category == "passeios" {
			t.Fatalf("stale save must not overwrite: %+v", got)
		}
	})

	t.Run("item without version accepts a first save", func(t *testing.T) {
		repo, table := newRepo()
		created, _ := repo.Create(ctx, sampleWizardSession())
		delete(table.items[created.ID], "version")

		legacy := created
		legacy.Version = 0
		saved, err := repo.Save(ctx, legacy)
		if err != nil || saved.Version != 1 {
			t.Fatalf("unexpected result %+v err=%v", saved, err)
		}
	})

	t.Run("store error is returned", func(t *testing.T) {
		boom := errors.New("throttled")
		failing := &WizardSessionDynamoRepository{ddb: &memoryTable{err: boom}, tableName: "t"}
		if _, err := failing.Save(ctx, sampleWizardSession()); !errors.Is(err, boom) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestWizardSessionDynamoRepository_GetAndDelete(t *testing.T) {
	table := newMemoryTable()
	repo := &WizardSessionDynamoRepository{ddb: table, tableName: "wizard_sessions", ttl: time.Hour}
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "missing")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero session, got %+v err=%v", got, err)
	}

	expired := sampleWizardSession()
	expired.UpdatedAt = time.Now().Add(-2 * time.Hour)
	if _, err := repo.Create(ctx, expired); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err = repo.GetByID(ctx, expired.ID)
	if err != nil || got.ID != "" {
		t.Fatalf("expected expired session to be hidden, got %+v err=%v", got, err)
	}

	if err := repo.Delete(ctx, expired.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(table.items) != 0 {
		t.Fatalf("expected table to be empty")
	}
}

func TestWizardSessionItem_Conversion(t *testing.T) {
	s := sampleWizardSession()
	it, err := toWizardSessionItem(s, 72*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Mode != "edit" || it.CurrentStep != 2 || it.MaxVisitedStep != 2 {
		t.Fatalf("unexpected item: %+v", it)
	}
	if it.ExpiresAt != s.UpdatedAt.Add(72*time.Hour).Unix() {
		t.Fatalf("unexpected expires_at %d", it.ExpiresAt)
	}

	noTTL, _ := toWizardSessionItem(s, 0)
	if noTTL.ExpiresAt != 0 {
		t.Fatalf("expected no expiry without ttl")
	}

	it.Mode = "bogus"
	if _, err := fromWizardSessionItem(it); err == nil {
		t.Fatalf("expected invalid mode error")
	}
}
