package listings

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vitrine/internal/domain/entities"
	"vitrine/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

const msgServiceUnavailable = "Serviço de anúncios indisponível"

// APIError is a non-2xx answer from the listings API. Error() is the message
// the API sent, so it can be shown to the provider as is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// APIClient talks to the listings API over HTTP.
type APIClient struct {
	http *resty.Client
}

var _ interfaces.IListingGateway = (*APIClient)(nil)

func NewAPIClient(baseURL, token string, timeout time.Duration) *APIClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "vitrine-wizard/1.0")
	if token != "" {
		client.SetAuthToken(token)
	}
	return &APIClient{http: client}
}

// Get returns a zero Listing (empty ID) when the API answers 404.
func (c *APIClient) Get(ctx context.Context, id string) (entities.Listing, error) {
	var out entities.Listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/listings/" + url.PathEscape(id))
	if err != nil {
		return entities.Listing{}, transportError("get", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return entities.Listing{}, nil
	}
	if resp.IsError() {
		return entities.Listing{}, apiError(resp)
	}
	return out, nil
}

func (c *APIClient) Create(ctx context.Context, l entities.Listing) (entities.Listing, error) {
	var out entities.Listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(l).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/listings")
	if err != nil {
		return entities.Listing{}, transportError("create", err)
	}
	if resp.IsError() {
		return entities.Listing{}, apiError(resp)
	}
	log.Printf("[listings][client] created listing_id=%s status=%d", out.ID, resp.StatusCode())
	return out, nil
}

func (c *APIClient) Update(ctx context.Context, id string, l entities.Listing) (entities.Listing, error) {
	var out entities.Listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(l).
		SetResult(&out).
		SetError(&errorBody{}).
		Put("/listings/" + url.PathEscape(id))
	if err != nil {
		return entities.Listing{}, transportError("update", err)
	}
	if resp.IsError() {
		return entities.Listing{}, apiError(resp)
	}
	log.Printf("[listings][client] updated listing_id=%s status=%d", id, resp.StatusCode())
	return out, nil
}

func apiError(resp *resty.Response) *APIError {
	msg := ""
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		msg = strings.TrimSpace(body.Error)
		if msg == "" {
			msg = strings.TrimSpace(body.Message)
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("Erro ao salvar anúncio (HTTP %d)", resp.StatusCode())
	}
	log.Printf("[listings][client] api error status=%d message=%q", resp.StatusCode(), msg)
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}

func transportError(op string, err error) error {
	log.Printf("[listings][client] %s request failed err=%v", op, err)
	return entities.NewSubmissionError(msgServiceUnavailable, err)
}
