package health

import (
	"net/http"

	"fauget/config"
	"fauget/shared/constant"
	"fauget/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) Handler {
	return Handler{cfg: cfg}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/health", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Health)
	})
}

// Health reports service liveness and external integration readiness.
// @Summary Health check
// @Description Report service status and whether payment and storage integrations are configured.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Base "Service status"
// @Router /api/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"status": "ok",
		"mercadopago": map[string]bool{
			"configured": handler.cfg.External.MercadoPago.AccessToken != constant.Empty,
		},
		"storage": map[string]bool{
			"configured": handler.cfg.External.S3.BucketName != constant.Empty,
		},
	}

	response.WithJSON(w, http.StatusOK, data)
}
