package bot

import (
	"errors"
	"fmt"
	"strings"

	"freefire-bot/internal/api"
	"freefire-bot/internal/constants"
	"freefire-bot/internal/domain"
	"freefire-bot/internal/service"
)

func renderPlayer(rec *domain.PlayerRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** (UID %s, %s)\n", rec.Nickname, rec.UID, rec.Region)
	fmt.Fprintf(&sb, "Level %d | %d likes | %d badges\n", rec.Level, rec.Likes, rec.BadgeCount)
	fmt.Fprintf(&sb, "Rank: **%s** (%d pts) | Best: %s\n", rec.Rank, rec.RankingPoints, rec.MaxRank)
	fmt.Fprintf(&sb, "Matches: %d | Wins: %d | Win rate: %s%%\n", rec.TotalMatches, rec.TotalWins, rec.WinRate)
	fmt.Fprintf(&sb, "Kills: %d | K/D: %s | Headshots: %d | Damage: %d\n", rec.TotalKills, rec.KDRatio, rec.Headshots, rec.Damage)
	fmt.Fprintf(&sb, "Solo: %d played / %d won | Squad: %d played / %d won\n",
		rec.SoloStats.GamesPlayed, rec.SoloStats.Wins, rec.QuadStats.GamesPlayed, rec.QuadStats.Wins)
	if rec.ClanInfo != nil {
		fmt.Fprintf(&sb, "Clan: **%s** (lvl %d, %d members)\n", rec.ClanInfo.ClanName, rec.ClanInfo.Level, rec.ClanInfo.MemberCount)
	}
	fmt.Fprintf(&sb, "Last login: %s", rec.LastLogin)
	return sb.String()
}

func renderGuild(g *api.RawGuildPayload) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** (ID %s, %s)\n", g.GuildName, g.GuildID, g.Region)
	fmt.Fprintf(&sb, "Level %d | Members: %d/%d\n", g.Level, g.MemberCount, g.Capacity)
	fmt.Fprintf(&sb, "Leader UID: %s\n", g.LeaderUID)
	if g.Slogan != "" {
		fmt.Fprintf(&sb, "_%s_", g.Slogan)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderCandidates(nickname string, candidates []domain.PlayerCandidate) string {
	if len(candidates) == 0 {
		return fmt.Sprintf("No players found matching **%s**.", nickname)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Players matching **%s**:\n", nickname)
	for _, c := range candidates {
		fmt.Fprintf(&sb, "**%s** - UID `%s`, level %d, %s\n", c.Nickname, c.UID, c.Level, c.Region)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderRegions() string {
	return fmt.Sprintf("Supported regions: `%s`\nDefault: `%s`",
		strings.Join(constants.Regions, "`, `"), constants.DefaultRegion)
}

func renderHelp() string {
	return strings.Join([]string{
		"**Commands**",
		"`/stats uid [region]` - player stats by UID",
		"`/guild id [region]` - guild info by ID",
		"`/search nickname` - find players by nickname",
		"`/regions` - supported region codes",
		"`/help` - this message",
	}, "\n")
}

func renderBadRegion(region string) string {
	return fmt.Sprintf("Unknown region `%s`. Use `/regions` to list valid codes.", region)
}

// renderLookupError maps pipeline failures to chat messages: an upstream
// rejection keeps its message, anything else reads as not found.
func renderLookupError(err error, notFoundMsg string) string {
	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		return fmt.Sprintf("Upstream error: %s", upstreamErr.Message)
	}
	return notFoundMsg
}
