package extraction

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls the vision extraction endpoint with a note photograph and
// maps the response into a Suggestion.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type extractRequest struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type extractResponse struct {
	Date        string `json:"date,omitempty"`
	Counterpart string `json:"counterpart,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Items       []struct {
		Name      string `json:"name"`
		Quantity  int64  `json:"quantity"`
		UnitPrice *int64 `json:"unit_price,omitempty"`
	} `json:"items"`
}

// ExtractNote sends the image and returns the extractor's best-effort guess.
// A malformed date in the response is dropped rather than failing the whole
// extraction.
func (c *Client) ExtractNote(ctx context.Context, image []byte, mimeType string) (*Suggestion, error) {
	body, err := json.Marshal(extractRequest{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(image),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from extraction endpoint", resp.StatusCode)
	}

	var er extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	s := &Suggestion{
		Counterpart: er.Counterpart,
		Notes:       er.Notes,
	}

	if er.Date != "" {
		if t, err := time.Parse("2006-01-02", er.Date); err == nil {
			s.Date = &t
		}
	}

	for _, item := range er.Items {
		s.Items = append(s.Items, SuggestedItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return s, nil
}
