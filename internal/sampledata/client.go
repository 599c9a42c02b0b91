// Package sampledata fetches candidate customer records from a public
// sample API. It is the engine's only networked collaborator: any failure
// degrades to "no data available" and never propagates a crash.
package sampledata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
)

// Candidate is one raw record from the sample source. It carries no
// customer type; the caller assigns one before importing.
type Candidate struct {
	ID      int
	Name    string
	Email   string
	Phone   string
	Address string
}

// apiUser mirrors the jsonplaceholder /users payload, reduced to the fields
// the engine cares about.
type apiUser struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address struct {
		Street string `json:"street"`
		City   string `json:"city"`
	} `json:"address"`
}

type Client struct {
	baseURL string
	client  *http.Client
	log     logging.Logger
}

// NewClient builds a sample-data client. The timeout bounds the whole
// fetch, including body read.
func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log.With("component", "sampledata"),
	}
}

// Fetch returns candidate records from the sample source. Transport errors,
// timeouts, non-200 responses and malformed payloads all return an error
// matching common.ErrorExternalSource together with an empty list; the
// caller must skip the import in that case.
func (c *Client) Fetch(ctx context.Context) ([]Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users", nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", common.ErrorExternalSource)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn(ctx, "sample fetch failed", "error", err)
		return nil, fmt.Errorf("fetching sample data: %w", common.ErrorExternalSource)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn(ctx, "sample source rejected the request", "status", resp.Status)
		return nil, fmt.Errorf("sample source returned %s: %w", resp.Status, common.ErrorExternalSource)
	}

	var users []apiUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decoding sample data: %w", common.ErrorExternalSource)
	}

	out := make([]Candidate, 0, len(users))
	for _, u := range users {
		out = append(out, Candidate{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Phone:   u.Phone,
			Address: fmt.Sprintf("%s, %s", u.Address.Street, u.Address.City),
		})
	}
	return out, nil
}
