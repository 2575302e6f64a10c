package share

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/grid-tools/fuelmix/pkg/adapters"
	"github.com/grid-tools/fuelmix/pkg/models/api"
	"github.com/grid-tools/fuelmix/pkg/models/domain"
	shareservice "github.com/grid-tools/fuelmix/pkg/services/share"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	registry shareservice.Registry
}

func NewHandler(registry shareservice.Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) ListNetworks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	response := make([]api.Network, 0)
	for _, name := range h.registry.ListNetworks() {
		ctrl, err := h.registry.Create(name)
		if err != nil {
			logger.Error().Err(err).Str("network", name).Msg("failed to create controller")
			continue
		}
		response = append(response, api.Network{
			Name: ctrl.Profile().Name,
			Code: ctrl.Profile().Code,
		})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode networks")
	}
}

func (h *Handler) GetShares(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	network := chi.URLParam(r, "network")

	asOf := domain.DateOf(time.Now())
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			http.Error(w, "invalid 'as_of' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		asOf = parsed
	}

	ctrl, err := h.registry.Create(network)
	if err != nil {
		http.Error(w, "unknown network", http.StatusNotFound)
		return
	}

	series, err := ctrl.ComputeShares(ctx, asOf)
	if err != nil {
		logger.Error().Err(err).Str("network", network).Msg("failed to compute shares")
		http.Error(w, "failed to compute shares", http.StatusInternalServerError)
		return
	}

	set, err := adapters.MapShareSeriesToStatSet(series, ctrl.Profile(), time.Now())
	if err != nil {
		logger.Error().Err(err).Str("network", network).Msg("failed to build statset")
		http.Error(w, "failed to build statset", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(set); err != nil {
		logger.Error().Err(err).Str("network", network).Msg("failed to encode statset")
	}
}
