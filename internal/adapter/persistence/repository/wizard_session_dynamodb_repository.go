package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"vitrine/internal/domain/entities"
	"vitrine/internal/domain/wizard"
	"vitrine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "wizard_sessions"

type wizardSessionItem struct {
	ID             string `dynamodbav:"id"`
	ProviderID     string `dynamodbav:"provider_id"`
	ListingID      string `dynamodbav:"listing_id,omitempty"`
	Mode           string `dynamodbav:"mode"`
	CurrentStep    int    `dynamodbav:"current_step"`
	MaxVisitedStep int    `dynamodbav:"max_visited_step"`
	Loading        bool   `dynamodbav:"loading"`
	LastError      string `dynamodbav:"last_error,omitempty"`
	Draft          string `dynamodbav:"draft"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	ExpiresAt      int64  `dynamodbav:"expires_at"`
	Version        int64  `dynamodbav:"version"`
}

type sessionStore interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// WizardSessionDynamoRepository persists wizard sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// The draft is stored as a JSON document; every save rewrites the whole item,
// pushes expires_at forward and bumps version. Save only succeeds when the
// stored version is the one the session was loaded with.
type WizardSessionDynamoRepository struct {
	ddb       sessionStore
	tableName string
	ttl       time.Duration
}

var _ interfaces.IWizardSessionRepository = (*WizardSessionDynamoRepository)(nil)

func NewWizardSessionDynamoRepository(ddb *dynamodb.Client, tableName string, ttl time.Duration) *WizardSessionDynamoRepository {
	if tableName == "" {
		tableName = defaultSessionsTableName
	}
	return &WizardSessionDynamoRepository{ddb: ddb, tableName: tableName, ttl: ttl}
}

func (r *WizardSessionDynamoRepository) Create(ctx context.Context, s wizard.Session) (wizard.Session, error) {
	s.Version = 1
	if err := r.put(ctx, s, "attribute_not_exists(#id)", nil); err != nil {
		return wizard.Session{}, err
	}
	return s, nil
}

func (r *WizardSessionDynamoRepository) GetByID(ctx context.Context, id string) (wizard.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return wizard.Session{}, err
	}
	if len(out.Item) == 0 {
		return wizard.Session{}, nil
	}

	var it wizardSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return wizard.Session{}, err
	}
	if it.ExpiresAt > 0 && time.Unix(it.ExpiresAt, 0).Before(time.Now()) {
		// TTL deletion is lazy on the DynamoDB side.
		return wizard.Session{}, nil
	}
	return fromWizardSessionItem(it)
}

// Save returns a zero Session when the item no longer exists and
// wizard.ErrSessionConflict when it was saved by someone else since s was
// loaded. The returned session carries the new version.
func (r *WizardSessionDynamoRepository) Save(ctx context.Context, s wizard.Session) (wizard.Session, error) {
	expected := s.Version
	condition := "attribute_exists(#id) AND #version = :expected"
	values := map[string]types.AttributeValue{
		":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
	}
	if expected == 0 {
		condition = "attribute_exists(#id) AND attribute_not_exists(#version)"
		values = nil
	}

	s.Version = expected + 1
	err := r.put(ctx, s, condition, values)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return wizard.Session{}, nil
			}
			log.Printf("[wizard][repository] stale save session_id=%s version=%d", s.ID, expected)
			return wizard.Session{}, wizard.ErrSessionConflict
		}
		return wizard.Session{}, err
	}
	return s, nil
}

func (r *WizardSessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func (r *WizardSessionDynamoRepository) put(ctx context.Context, s wizard.Session, condition string, values map[string]types.AttributeValue) error {
	it, err := toWizardSessionItem(s, r.ttl)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	names := map[string]string{"#id": "id"}
	if strings.Contains(condition, "#version") {
		names["#version"] = "version"
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                           aws.String(r.tableName),
		Item:                                av,
		ConditionExpression:                 aws.String(condition),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		log.Printf("[wizard][repository] put failed session_id=%s condition=%q err=%v", s.ID, condition, err)
	}
	return err
}

func toWizardSessionItem(s wizard.Session, ttl time.Duration) (wizardSessionItem, error) {
	draft, err := json.Marshal(s.Draft)
	if err != nil {
		return wizardSessionItem{}, err
	}
	it := wizardSessionItem{
		ID:             s.ID,
		ProviderID:     s.ProviderID,
		ListingID:      s.ListingID,
		Mode:           string(s.Steps.Mode),
		CurrentStep:    int(s.Steps.Current),
		MaxVisitedStep: int(s.Steps.MaxVisited),
		Loading:        s.Loading,
		LastError:      s.LastError,
		Draft:          string(draft),
		CreatedAt:      formatTime(s.CreatedAt),
		UpdatedAt:      formatTime(s.UpdatedAt),
		Version:        s.Version,
	}
	if ttl > 0 {
		it.ExpiresAt = expiryFrom(s.UpdatedAt, ttl)
	}
	return it, nil
}

func fromWizardSessionItem(it wizardSessionItem) (wizard.Session, error) {
	var draft entities.Draft
	if err := json.Unmarshal([]byte(it.Draft), &draft); err != nil {
		return wizard.Session{}, err
	}
	mode, err := wizard.ParseMode(it.Mode)
	if err != nil {
		return wizard.Session{}, err
	}
	return wizard.Session{
		ID:         it.ID,
		ProviderID: it.ProviderID,
		ListingID:  it.ListingID,
		Steps: wizard.StepController{
			Mode:       mode,
			Current:    wizard.Step(it.CurrentStep),
			MaxVisited: wizard.Step(it.MaxVisitedStep),
		},
		Draft:     draft,
		Loading:   it.Loading,
		LastError: it.LastError,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		Version:   it.Version,
	}, nil
}
