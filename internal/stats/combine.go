package stats

import (
	"fmt"
	"strconv"
	"time"

	"freefire-bot/internal/api"
	"freefire-bot/internal/domain"
)

const lastLoginLayout = "02 Jan 2006 15:04:05"

// Combine merges the account and stats payloads of one source into a single
// PlayerRecord. It is pure: identical inputs produce identical output and
// neither payload is mutated. Missing sub-objects default to zero values.
func Combine(account *api.RawAccountPayload, statsPayload *api.RawStatsPayload, uid, region string) *domain.PlayerRecord {
	var basic api.BasicInfo
	if account != nil && account.BasicInfo != nil {
		basic = *account.BasicInfo
	}

	var solo, quad domain.ModeStats
	if statsPayload != nil {
		solo = flattenMode(statsPayload.SoloStats)
		quad = flattenMode(statsPayload.QuadStats)
	}

	totalMatches := solo.GamesPlayed + quad.GamesPlayed
	totalWins := solo.Wins + quad.Wins
	totalKills := solo.Kills + quad.Kills
	totalDeaths := solo.Deaths + quad.Deaths
	headshots := solo.Headshots + quad.Headshots
	damage := solo.Damage + quad.Damage

	// Win rate carries one decimal digit; K/D carries two, except that a
	// zero-death record reports the raw kill count.
	winRate := "0.0"
	if totalMatches > 0 {
		winRate = fmt.Sprintf("%.1f", 100*float64(totalWins)/float64(totalMatches))
	}
	kdRatio := strconv.Itoa(totalKills)
	if totalDeaths > 0 {
		kdRatio = fmt.Sprintf("%.2f", float64(totalKills)/float64(totalDeaths))
	}

	return &domain.PlayerRecord{
		Nickname:      basic.Nickname,
		UID:           uid,
		Level:         clampNonNegative(basic.Level),
		Region:        region,
		Likes:         clampNonNegative(basic.Liked),
		Rank:          RankLabel(basic.Rank),
		RankingPoints: clampNonNegative(basic.RankingPoints),
		KDRatio:       kdRatio,
		TotalMatches:  totalMatches,
		TotalWins:     totalWins,
		WinRate:       winRate,
		TotalKills:    totalKills,
		Headshots:     headshots,
		Damage:        damage,
		MaxRank:       RankLabel(basic.MaxRank),
		BadgeCount:    clampNonNegative(basic.BadgeCount),
		ClanInfo:      clanInfo(account),
		LastLogin:     formatLastLogin(basic.LastLoginAt),
		SoloStats:     solo,
		QuadStats:     quad,
	}
}

// flattenMode clamps every counter to zero: upstream payloads are untrusted
// and a normalized record must never carry negative numbers.
func flattenMode(m *api.RawModeStats) domain.ModeStats {
	if m == nil {
		return domain.ModeStats{}
	}
	out := domain.ModeStats{
		GamesPlayed: clampNonNegative(m.GamesPlayed),
		Wins:        clampNonNegative(m.Wins),
		Kills:       clampNonNegative(m.Kills),
	}
	if m.DetailedStats != nil {
		out.Deaths = clampNonNegative(m.DetailedStats.Deaths)
		out.Headshots = clampNonNegative(m.DetailedStats.Headshots)
		out.Damage = clampNonNegative(m.DetailedStats.Damage)
	}
	return out
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func clanInfo(account *api.RawAccountPayload) *domain.ClanInfo {
	if account == nil || account.ClanInfo == nil {
		return nil
	}
	return &domain.ClanInfo{
		ClanID:      account.ClanInfo.ClanID,
		ClanName:    account.ClanInfo.ClanName,
		CaptainUID:  account.ClanInfo.CaptainID,
		MemberCount: account.ClanInfo.MemberNum,
		Level:       account.ClanInfo.ClanLevel,
	}
}

func formatLastLogin(raw string) string {
	if raw == "" {
		return "Unknown"
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "Unknown"
	}
	return time.Unix(sec, 0).Format(lastLoginLayout)
}
