package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SMSSender delivers an outbound text message. Invite dispatch treats
// delivery as fire-and-forget, so implementations only need best-effort
// semantics.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// TwilioClient sends SMS through the Twilio Messages REST API.
type TwilioClient struct {
	apiURL     string
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
}

func NewTwilioClient(apiURL, accountSID, authToken, fromNumber string) *TwilioClient {
	return &TwilioClient{
		apiURL:     apiURL,
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// IsAvailable checks if Twilio credentials are configured.
func (t *TwilioClient) IsAvailable() bool {
	return t.accountSID != "" && t.authToken != "" && t.fromNumber != ""
}

func (t *TwilioClient) Send(ctx context.Context, to, body string) error {
	if !t.IsAvailable() {
		return fmt.Errorf("twilio is not configured")
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", t.apiURL, t.accountSID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.accountSID, t.authToken)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Twilio API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Twilio API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
