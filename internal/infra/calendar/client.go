// Package calendar is a thin client for the hosted calendar API the meeting
// scheduler syncs against. It only covers the three event operations the
// product uses.
package calendar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
)

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL string, apiKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type eventBody struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Attendees   []string  `json:"attendees,omitempty"`
}

type eventResponse struct {
	Id string `json:"id"`
}

func (c *Client) CreateEvent(input *usecase.CalendarEventInput) (string, error) {
	var created eventResponse
	err := c.do(http.MethodPost, "/v1/events", input, &created)
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

func (c *Client) UpdateEvent(eventId string, input *usecase.CalendarEventInput) error {
	return c.do(http.MethodPut, "/v1/events/"+eventId, input, nil)
}

func (c *Client) DeleteEvent(eventId string) error {
	return c.do(http.MethodDelete, "/v1/events/"+eventId, nil, nil)
}

func (c *Client) do(method string, path string, input *usecase.CalendarEventInput, out any) error {
	var body bytes.Buffer
	if input != nil {
		payload := eventBody{
			Title:       input.Title,
			Description: input.Description,
			StartsAt:    input.StartsAt,
			EndsAt:      input.EndsAt,
			Attendees:   input.Attendees,
		}
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.BaseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("calendar API returned status %d for %s %s", resp.StatusCode, method, path)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
