// Package mail posts invitation emails to the transactional mail provider.
// Delivery is best-effort; the invitation itself is already persisted when
// this runs.
package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Mailer struct {
	APIURL     string
	APIKey     string
	HTTPClient *http.Client
}

func NewMailer(apiURL string, apiKey string) *Mailer {
	return &Mailer{
		APIURL:     apiURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *Mailer) SendInvitation(email string, workspaceName string, acceptURL string) error {
	payload := map[string]string{
		"to":       email,
		"template": "workspace-invitation",
		"subject":  fmt.Sprintf("You have been invited to %s", workspaceName),
		"link":     acceptURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.APIKey)

	resp, err := m.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}
	return nil
}
