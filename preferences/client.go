// Package preferences reads a user's preferred food categories from the
// user service.
package preferences

//go:generate mockgen -source=client.go -destination=mock_source.go -package=preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnavailable covers every way the lookup can fail: transport errors,
// non-2xx responses and undecodable bodies.
var ErrUnavailable = errors.New("preference service unavailable")

// Source looks up category preferences for a user
type Source interface {
	Categories(ctx context.Context, userID string) ([]string, error)
}

// Client calls GET {baseURL}/api/user/preferences/{userID}
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type preferenceResponse struct {
	Categories json.RawMessage `json:"categories"`
}

// Categories returns the user's preferences. A user with no stored
// preferences yields an empty list and a nil error.
func (c *Client) Categories(ctx context.Context, userID string) ([]string, error) {
	endpoint := c.baseURL + "/api/user/preferences/" + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body preferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return ParseList(body.Categories), nil
}

// ParseList accepts the "a, b,c" string the user service sends. A JSON
// array of strings is accepted too; anything else is treated as empty.
func ParseList(raw json.RawMessage) []string {
	var joined string
	if err := json.Unmarshal(raw, &joined); err != nil {
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return []string{}
		}
		joined = strings.Join(list, ",")
	}

	out := []string{}
	for _, part := range strings.Split(joined, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
