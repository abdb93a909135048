package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"freefire-bot/internal/api"
	"freefire-bot/internal/cache"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guildBody = `{"guildID":"777","guildName":"NightRaiders","region":"IND","level":4,"memberNum":42,"capacity":50,"captainId":"12345","slogan":"rush and win"}`

func guildUpstream(requests *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/guild" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, guildBody)
	}
}

func newGuildService(t *testing.T, ttl time.Duration, sources ...api.SourceDescriptor) *GuildService {
	t.Helper()
	log := zerolog.Nop()
	return NewGuildService(
		api.NewClient(log),
		api.NewRegistry(sources...),
		cache.New[*api.RawGuildPayload]("guilds", ttl, log),
		log,
	)
}

func TestFetchGuildInfoReturnsRawPayload(t *testing.T) {
	var requests atomic.Int32
	ts := httptest.NewServer(guildUpstream(&requests))
	defer ts.Close()

	svc := newGuildService(t, 5*time.Minute, testSource("primary", ts.URL, 90))

	guild, err := svc.FetchGuildInfo(context.Background(), "777", "IND")
	require.NoError(t, err)
	assert.Equal(t, "NightRaiders", guild.GuildName)
	assert.Equal(t, 42, guild.MemberCount)
	assert.Equal(t, 50, guild.Capacity)
	assert.Equal(t, "12345", guild.LeaderUID)
	assert.Equal(t, "rush and win", guild.Slogan)
}

func TestFetchGuildInfoCachesWithinTTL(t *testing.T) {
	var requests atomic.Int32
	ts := httptest.NewServer(guildUpstream(&requests))
	defer ts.Close()

	svc := newGuildService(t, 5*time.Minute, testSource("primary", ts.URL, 90))

	first, err := svc.FetchGuildInfo(context.Background(), "777", "IND")
	require.NoError(t, err)
	second, err := svc.FetchGuildInfo(context.Background(), "777", "IND")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, requests.Load(), "cache hit must issue zero upstream requests")
}

func TestGuildSendsGuildIDParam(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "777", r.URL.Query().Get("guildID"))
		assert.Empty(t, r.URL.Query().Get("uid"))
		io.WriteString(w, guildBody)
	}))
	defer ts.Close()

	svc := newGuildService(t, 5*time.Minute, testSource("primary", ts.URL, 90))
	_, err := svc.FetchGuildInfo(context.Background(), "777", "IND")
	require.NoError(t, err)
}

func TestGuildUpstreamErrorIsAbsence(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"error":true,"message":"guild not found"}`)
	}))
	defer ts.Close()

	svc := newGuildService(t, 5*time.Minute, testSource("primary", ts.URL, 90))

	_, err := svc.FetchGuildInfo(context.Background(), "404404", "IND")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGuildTransportFailureFallsThrough(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer primary.Close()

	var secondaryRequests atomic.Int32
	secondary := httptest.NewServer(guildUpstream(&secondaryRequests))
	defer secondary.Close()

	svc := newGuildService(t, 5*time.Minute,
		testSource("primary", primary.URL, 90),
		testSource("secondary", secondary.URL, 60),
	)

	guild, err := svc.FetchGuildInfo(context.Background(), "777", "IND")
	require.NoError(t, err)
	assert.Equal(t, "NightRaiders", guild.GuildName)
	assert.EqualValues(t, 1, secondaryRequests.Load())
}
