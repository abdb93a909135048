package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"freefire-bot/internal/constants"
	"freefire-bot/internal/middleware"
	"freefire-bot/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// StatusServer exposes the fetch pipeline over a small JSON API, next to
// the chat surface. Absence maps to 404, upstream rejections to 502 with
// the upstream message.
type StatusServer struct {
	players *service.PlayerService
	guilds  *service.GuildService
	logger  zerolog.Logger
}

func NewStatusServer(players *service.PlayerService, guilds *service.GuildService, logger zerolog.Logger) *StatusServer {
	return &StatusServer{players: players, guilds: guilds, logger: logger}
}

func (s *StatusServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(s.logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler)

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/regions", s.handleRegions)
	r.Get("/v1/players/{uid}", s.handlePlayer)
	r.Get("/v1/guilds/{guildID}", s.handleGuild)
	return r
}

func (s *StatusServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *StatusServer) handleRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"regions": constants.Regions,
		"default": constants.DefaultRegion,
	})
}

func (s *StatusServer) handlePlayer(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	region, ok := regionParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown region code")
		return
	}

	rec, err := s.players.FetchPlayerStats(r.Context(), uid, region)
	if err != nil {
		s.writeLookupError(w, r, err, "player not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *StatusServer) handleGuild(w http.ResponseWriter, r *http.Request) {
	guildID := chi.URLParam(r, "guildID")
	region, ok := regionParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown region code")
		return
	}

	guild, err := s.guilds.FetchGuildInfo(r.Context(), guildID, region)
	if err != nil {
		s.writeLookupError(w, r, err, "guild not found")
		return
	}
	writeJSON(w, http.StatusOK, guild)
}

func (s *StatusServer) writeLookupError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var upstreamErr *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.As(err, &upstreamErr):
		writeError(w, http.StatusBadGateway, upstreamErr.Message)
	default:
		s.logger.Error().Err(err).Str("request_id", middleware.GetRequestID(r.Context())).Msg("lookup failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func regionParam(r *http.Request) (string, bool) {
	region := r.URL.Query().Get("region")
	if region == "" {
		return constants.DefaultRegion, true
	}
	if !constants.IsValidRegion(region) {
		return "", false
	}
	return region, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
