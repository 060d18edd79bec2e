package notification

import (
	"encoding/json"
	"strings"
)

// InboundMessage is a client reply extracted from a provider webhook.
type InboundMessage struct {
	From string
	Body string
}

type metaWebhook struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// ParseMetaPayload walks entry → changes → value → messages and keeps text
// messages only. A body that is not valid JSON yields no messages.
func ParseMetaPayload(body []byte) []InboundMessage {
	var payload metaWebhook
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}

	var out []InboundMessage
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, m := range change.Value.Messages {
				if m.Type != "text" {
					continue
				}
				out = append(out, InboundMessage{From: m.From, Body: m.Text.Body})
			}
		}
	}
	return out
}

// ParseTwilioForm reads the From/Body form fields, dropping the "whatsapp:"
// channel prefix from the sender.
func ParseTwilioForm(from, body string) InboundMessage {
	if strings.HasPrefix(strings.ToLower(from), "whatsapp:") {
		from = from[len("whatsapp:"):]
	}
	return InboundMessage{From: from, Body: body}
}
