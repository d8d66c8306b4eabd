package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/checkout-payments/internal/transport"
)

// ConfigHandler exposes the client-safe half of the Stripe configuration so
// the browser can initialize Stripe.js. The secret key never passes through
// this package.
type ConfigHandler struct {
	transport.BaseHandler
	publishableKey string
}

func NewConfigHandler(publishableKey string, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{
		BaseHandler:    transport.BaseHandler{Logger: logger},
		publishableKey: publishableKey,
	}
}

// GetConfig handles GET /api/config
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]string{
		"publishableKey": h.publishableKey,
	})
}
