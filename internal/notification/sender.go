package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
)

// Sender delivers one message to a normalized phone number. A nil error means
// the provider accepted it; callers treat every error as a soft failure.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// NewSender picks the transport once, from validated configuration.
func NewSender(cfg config.WhatsAppConfig, logger *zap.Logger) Sender {
	if cfg.Simulated {
		return NewSimulated(logger)
	}

	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case config.ProviderTwilio:
		return &Twilio{
			client:      client,
			baseURL:     cfg.TwilioBaseURL,
			accountSID:  cfg.TwilioAccountSID,
			authToken:   cfg.TwilioAuthToken,
			from:        cfg.TwilioFrom,
			countryCode: cfg.CountryCode,
		}
	case config.ProviderGeneric:
		return &GenericWebhook{client: client, url: cfg.APIURL, token: cfg.APIToken}
	}

	if cfg.PhoneNumberID != "" && cfg.APIToken != "" {
		return &MetaCloudAPI{
			client:        client,
			baseURL:       cfg.GraphBaseURL,
			version:       cfg.APIVersion,
			phoneNumberID: cfg.PhoneNumberID,
			token:         cfg.APIToken,
		}
	}
	return &GenericWebhook{client: client, url: cfg.APIURL, token: cfg.APIToken}
}

type StatusError struct {
	Provider string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.Status, e.Body)
}

func do(client *http.Client, req *http.Request, provider string) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Provider: provider, Status: resp.StatusCode, Body: string(body)}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
