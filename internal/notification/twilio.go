package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Twilio sends through the Messages resource with Basic auth and a
// form-encoded body.
type Twilio struct {
	client      *http.Client
	baseURL     string
	accountSID  string
	authToken   string
	from        string
	countryCode string
}

func (t *Twilio) Send(ctx context.Context, phone, message string) error {
	to := NormalizePhone(phone, t.countryCode)
	if to == "" {
		return errors.New("twilio: empty destination")
	}

	form := url.Values{}
	form.Set("To", "whatsapp:+"+to)
	form.Set("From", t.from)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", strings.TrimRight(t.baseURL, "/"), t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.accountSID, t.authToken)

	return do(t.client, req, "twilio")
}
