package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	"github.com/BruksfildServices01/agenda-scheduler/internal/notification"
	ucReminder "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/reminder"
)

const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	reply       *ucReminder.ProcessReply
	provider    config.Provider
	verifyToken string
	logger      *zap.Logger
}

func NewWebhookHandler(
	reply *ucReminder.ProcessReply,
	cfg config.WhatsAppConfig,
	logger *zap.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		reply:       reply,
		provider:    cfg.Provider,
		verifyToken: cfg.WebhookVerifyToken,
		logger:      logger,
	}
}

// Verify answers the subscription handshake. An unset verify token rejects
// every attempt.
func (h *WebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")

	if mode == "subscribe" && h.verifyToken != "" && token == h.verifyToken {
		c.String(http.StatusOK, c.Query("hub.challenge"))
		return
	}
	c.String(http.StatusForbidden, "Token inválido")
}

// Receive applies inbound replies. Providers retry on non-2xx, so individual
// failures are logged and the webhook still acknowledges.
func (h *WebhookHandler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	if h.provider == config.ProviderTwilio {
		msg := notification.ParseTwilioForm(c.PostForm("From"), c.PostForm("Body"))
		h.apply(c, msg)
		c.Status(http.StatusOK)
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		h.logger.Warn("webhook body unreadable", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	for _, msg := range notification.ParseMetaPayload(body) {
		if ctx.Err() != nil {
			break
		}
		h.apply(c, msg)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WebhookHandler) apply(c *gin.Context, msg notification.InboundMessage) {
	matched, err := h.reply.Execute(c.Request.Context(), msg.From, msg.Body)
	if err != nil {
		h.logger.Error("whatsapp reply not applied", zap.Error(err))
		return
	}
	if !matched {
		h.logger.Debug("whatsapp reply ignored", zap.String("body", msg.Body))
	}
}
