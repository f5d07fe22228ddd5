package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/neluchetraru/prop-track/internal/dtos"
)

const propertiesCacheKey = "properties"

// APIError is a non-2xx response decoded from the server's envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound reports whether err is the server's not-found answer. That
// answer covers both absent ids and ids owned by someone else.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client speaks the property wire contract. The list of properties is
// cached; mutations do not invalidate it implicitly. The caller decides
// when a write has been confirmed and calls InvalidateProperties.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
	cache   *gocache.Cache
}

// New builds a client. token is called per request so the caller can
// rotate session tokens without rebuilding the client.
func New(baseURL string, token func() string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		token:   token,
		cache:   gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *Client) ListProperties(ctx context.Context) ([]dtos.PropertyDTO, error) {
	if v, ok := c.cache.Get(propertiesCacheKey); ok {
		return v.([]dtos.PropertyDTO), nil
	}

	var out []dtos.PropertyDTO
	if err := c.do(ctx, http.MethodGet, "/properties", nil, &out); err != nil {
		return nil, err
	}
	c.cache.Set(propertiesCacheKey, out, gocache.DefaultExpiration)
	return out, nil
}

func (c *Client) GetProperty(ctx context.Context, id uuid.UUID) (*dtos.PropertyDTO, error) {
	var out dtos.PropertyDTO
	if err := c.do(ctx, http.MethodGet, "/properties/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProperty(ctx context.Context, req dtos.CreatePropertyRequest) (*dtos.PropertyDTO, error) {
	var out dtos.PropertyDTO
	if err := c.do(ctx, http.MethodPost, "/properties", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id uuid.UUID, req dtos.UpdatePropertyRequest) (*dtos.PropertyDTO, error) {
	var out dtos.PropertyDTO
	if err := c.do(ctx, http.MethodPut, "/properties/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/properties/"+id.String(), nil, nil)
}

// InvalidateProperties drops the cached list so the next read refetches.
func (c *Client) InvalidateProperties() {
	c.cache.Delete(propertiesCacheKey)
}

/* ---------- transport ---------- */

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if env.Status != "success" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       env.Code,
			Message:    env.Message,
		}
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}
