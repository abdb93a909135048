package bot

import (
	"testing"

	"freefire-bot/internal/domain"
	"freefire-bot/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestRenderPlayerIncludesDerivedFields(t *testing.T) {
	rec := &domain.PlayerRecord{
		Nickname:     "ShadowFiend",
		UID:          "12345",
		Region:       "IND",
		Rank:         "Grandmaster",
		WinRate:      "43.0",
		KDRatio:      "3.00",
		TotalMatches: 100,
		LastLogin:    "14 Nov 2023 22:13:20",
	}

	out := renderPlayer(rec)
	assert.Contains(t, out, "ShadowFiend")
	assert.Contains(t, out, "Grandmaster")
	assert.Contains(t, out, "43.0%")
	assert.Contains(t, out, "K/D: 3.00")
	assert.Contains(t, out, "Last login: 14 Nov 2023 22:13:20")
}

func TestRenderPlayerOmitsClanWhenAbsent(t *testing.T) {
	out := renderPlayer(&domain.PlayerRecord{Nickname: "Solo"})
	assert.NotContains(t, out, "Clan:")
}

func TestRenderCandidatesEmpty(t *testing.T) {
	out := renderCandidates("ghost", nil)
	assert.Contains(t, out, "No players found")
}

func TestRenderLookupErrorMapping(t *testing.T) {
	out := renderLookupError(service.ErrNotFound, "No player found.")
	assert.Equal(t, "No player found.", out)

	out = renderLookupError(&service.UpstreamError{Message: "uid not found"}, "No player found.")
	assert.Contains(t, out, "uid not found")
}

func TestResolveRegion(t *testing.T) {
	b := &Bot{defaultRegion: "IND"}

	region, ok := b.resolveRegion("")
	assert.True(t, ok)
	assert.Equal(t, "IND", region)

	region, ok = b.resolveRegion("BR")
	assert.True(t, ok)
	assert.Equal(t, "BR", region)

	_, ok = b.resolveRegion("EU")
	assert.False(t, ok)
}
