package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// WhatsAppClient posts template messages to the configured WhatsApp
// provider. A nil client means WhatsApp is not configured; sends
// become no-ops. WhatsApp failures never block the caller; they are
// logged and swallowed upstream.
type WhatsAppClient struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewWhatsAppFromEnv returns a client when WHATSAPP_API_URL and
// WHATSAPP_API_TOKEN are both set, nil otherwise.
func NewWhatsAppFromEnv(log zerolog.Logger) *WhatsAppClient {
	endpoint := os.Getenv("WHATSAPP_API_URL")
	token := os.Getenv("WHATSAPP_API_TOKEN")
	if endpoint == "" || token == "" {
		log.Info().Msg("whatsapp provider not configured; whatsapp sends disabled")
		return nil
	}
	return &WhatsAppClient{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SendTemplate posts one template message. Calling on a nil client
// returns nil.
func (w *WhatsAppClient) SendTemplate(ctx context.Context, phone, template string, params map[string]string) error {
	if w == nil {
		return nil
	}
	payload, err := json.Marshal(map[string]any{
		"to":       phone,
		"template": template,
		"params":   params,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+w.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp: unexpected status %d", resp.StatusCode)
	}
	return nil
}
