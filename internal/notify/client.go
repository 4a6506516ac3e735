package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP Sink: it POSTs the order email payload to the mailer's
// function endpoint and treats anything but a 2xx success response as a
// failed delivery.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient builds a Client for the given endpoint URL. The endpoint is not
// validated up front; a malformed one surfaces as an error from the first
// SendOrderEmail call.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

type sendResponse struct {
	Success         bool   `json:"success"`
	CustomerEmailID string `json:"customerEmailId"`
	OwnerEmailID    string `json:"ownerEmailId"`
	Error           string `json:"error"`
}

func (c *Client) SendOrderEmail(ctx context.Context, req OrderEmail) (Receipt, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("encode order email: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Receipt{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Receipt{}, fmt.Errorf("order email request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Receipt{}, fmt.Errorf("read order email response: %w", err)
	}

	var out sendResponse
	// A non-JSON body is still a usable failure signal, keep the status.
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := out.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return Receipt{}, fmt.Errorf("order email endpoint returned %d: %s", resp.StatusCode, msg)
	}
	if !out.Success {
		return Receipt{}, fmt.Errorf("order email endpoint reported failure: %s", out.Error)
	}

	return Receipt{CustomerEmailID: out.CustomerEmailID, OwnerEmailID: out.OwnerEmailID}, nil
}
