package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"portfolio-backend/config"
	"portfolio-backend/models"
)

// Notifier tells the site owner about a new contact message. Delivery is
// best-effort: callers log failures and never fail the originating request.
type Notifier interface {
	ContactReceived(contact *models.Contact) error
}

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendNotifier emails contact notifications through the Resend HTTP API.
type ResendNotifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

// NewResendNotifier builds a notifier from RESEND_API_KEY, RESEND_FROM_EMAIL
// and CONTACT_NOTIFY_EMAIL. Returns nil when the key or recipient is unset;
// a nil notifier disables notification rather than failing startup.
func NewResendNotifier(c map[string]string) *ResendNotifier {
	apiKey := config.GetString(c, "RESEND_API_KEY", "")
	toEmail := config.GetString(c, "CONTACT_NOTIFY_EMAIL", "")
	if apiKey == "" || toEmail == "" {
		log.Warn().Msg("contact notification disabled: RESEND_API_KEY or CONTACT_NOTIFY_EMAIL not set")
		return nil
	}

	return &ResendNotifier{
		apiKey:    apiKey,
		fromEmail: config.GetString(c, "RESEND_FROM_EMAIL", "Portfolio <onboarding@resend.dev>"),
		toEmail:   toEmail,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *ResendNotifier) ContactReceived(contact *models.Contact) error {
	subject := fmt.Sprintf("New contact message from %s", contact.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", contact.Name, contact.Email, contact.Message)

	payload, err := json.Marshal(ResendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var emailResp ResendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&emailResp); err == nil {
		log.Info().Str("emailID", emailResp.ID).Msg("contact notification sent")
	}

	return nil
}
