package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// MetaCloudAPI posts text messages to the WhatsApp Cloud API.
type MetaCloudAPI struct {
	client        *http.Client
	baseURL       string
	version       string
	phoneNumberID string
	token         string
}

type metaTextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

func (m *MetaCloudAPI) Send(ctx context.Context, phone, message string) error {
	msg := metaTextMessage{MessagingProduct: "whatsapp", To: phone, Type: "text"}
	msg.Text.Body = message

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("meta: encode payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/messages", strings.TrimRight(m.baseURL, "/"), m.version, m.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("meta: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.token)

	return do(m.client, req, "meta")
}
