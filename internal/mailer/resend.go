package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultResendBaseURL = "https://api.resend.com"

// Email is a single outbound message handed to the Resend API.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// ResendClient is a minimal client for the Resend transactional email API.
type ResendClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewResendClient builds a client. baseURL may be empty for the production
// API; tests point it at a local server.
func NewResendClient(apiKey, baseURL string, httpClient *http.Client) *ResendClient {
	if baseURL == "" {
		baseURL = defaultResendBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ResendClient{baseURL: baseURL, apiKey: apiKey, http: httpClient}
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send delivers one email and returns the provider's delivery id.
func (c *ResendClient) Send(ctx context.Context, email Email) (string, error) {
	body, err := json.Marshal(email)
	if err != nil {
		return "", fmt.Errorf("encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read resend response: %w", err)
	}

	var out resendResponse
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := out.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("resend returned %d: %s", resp.StatusCode, msg)
	}

	return out.ID, nil
}
