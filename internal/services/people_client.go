package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	noNamePlaceholder   = "No display name found"
	noNumberPlaceholder = "No Phone Number found"
)

// PeopleClient fetches the caller's address book from the Google People API.
type PeopleClient struct {
	apiURL     string
	pageSize   string
	httpClient *http.Client
}

type peopleResponse struct {
	Connections []struct {
		Names []struct {
			DisplayName string `json:"displayName"`
		} `json:"names"`
		PhoneNumbers []struct {
			Value string `json:"value"`
		} `json:"phoneNumbers"`
	} `json:"connections"`
}

func NewPeopleClient(apiURL, pageSize string) *PeopleClient {
	return &PeopleClient{
		apiURL:     apiURL,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListConnections returns the contact display names and phone numbers,
// index-aligned. Contacts missing a name or number get a placeholder entry
// so alignment between the two slices is preserved.
func (p *PeopleClient) ListConnections(ctx context.Context, accessToken string) ([]string, []string, error) {
	q := url.Values{}
	q.Set("personFields", "names,phoneNumbers,emailAddresses")
	q.Set("pageSize", p.pageSize)

	req, err := http.NewRequestWithContext(ctx, "GET", p.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to call People API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("People API returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed peopleResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, nil, fmt.Errorf("failed to parse People API response: %w", err)
	}

	names := make([]string, 0, len(parsed.Connections))
	numbers := make([]string, 0, len(parsed.Connections))
	for _, person := range parsed.Connections {
		name := noNamePlaceholder
		if len(person.Names) > 0 && person.Names[0].DisplayName != "" {
			name = person.Names[0].DisplayName
		}
		number := noNumberPlaceholder
		if len(person.PhoneNumbers) > 0 && person.PhoneNumbers[0].Value != "" {
			number = person.PhoneNumbers[0].Value
		}
		names = append(names, name)
		numbers = append(numbers, number)
	}

	return names, numbers, nil
}
