package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freefire-bot/internal/api"
	"freefire-bot/internal/cache"
	"freefire-bot/internal/domain"
	"freefire-bot/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, upstream http.HandlerFunc) http.Handler {
	t.Helper()

	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	src := api.SourceDescriptor{
		Name:      "test",
		BaseURL:   ts.URL,
		QueryKind: api.QueryByUID,
		Endpoints: map[string]string{
			api.EndpointAccount:     "/account",
			api.EndpointPlayerStats: "/stats",
			api.EndpointGuildInfo:   "/guild",
		},
		Reliability: 90,
		Format:      api.FormatJSON,
	}

	log := zerolog.Nop()
	client := api.NewClient(log)
	registry := api.NewRegistry(src)
	players := service.NewPlayerService(client, registry, cache.New[*domain.PlayerRecord]("players", 5*time.Minute, log), log)
	guilds := service.NewGuildService(client, registry, cache.New[*api.RawGuildPayload]("guilds", 5*time.Minute, log), log)
	return NewStatusServer(players, guilds, log).Handler()
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegionsEndpoint(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/regions", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Regions []string `json:"regions"`
		Default string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "IND", body.Default)
	assert.Contains(t, body.Regions, "BR")
}

func TestPlayerEndpointReturnsRecord(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/account":
			io.WriteString(w, `{"basicInfo":{"nickname":"ShadowFiend","level":54,"rank":220}}`)
		case "/stats":
			io.WriteString(w, `{"soloStats":{"gamesPlayed":10,"wins":4,"kills":30,"detailedStats":{"deaths":10}}}`)
		default:
			http.NotFound(w, r)
		}
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players/12345?region=BR", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var record domain.PlayerRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "ShadowFiend", record.Nickname)
	assert.Equal(t, "BR", record.Region)
	assert.Equal(t, "40.0", record.WinRate)
	assert.Equal(t, "3.00", record.KDRatio)
}

func TestPlayerEndpointRejectsUnknownRegion(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players/12345?region=EU", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayerEndpointNotFound(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players/12345", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlayerEndpointUpstreamErrorIsBadGateway(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"error":true,"message":"uid not found"}`)
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players/12345", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "uid not found", body["error"])
}

func TestGuildEndpointReturnsRawPayload(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/guild" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, `{"guildID":"777","guildName":"NightRaiders","memberNum":42}`)
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/guilds/777", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var guild api.RawGuildPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guild))
	assert.Equal(t, "NightRaiders", guild.GuildName)
	assert.Equal(t, 42, guild.MemberCount)
}
