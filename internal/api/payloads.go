package api

// Upstream payloads are untrusted and partially populated; every field may
// be missing. Sources that fail application-side answer with the error
// envelope instead of a domain payload.

type ErrorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type RawAccountPayload struct {
	ErrorEnvelope
	BasicInfo *BasicInfo     `json:"basicInfo"`
	ClanInfo  *ClanBasicInfo `json:"clanBasicInfo"`
}

type BasicInfo struct {
	AccountID     string `json:"accountId"`
	Nickname      string `json:"nickname"`
	Level         int    `json:"level"`
	Region        string `json:"region"`
	Liked         int    `json:"liked"`
	Rank          *int   `json:"rank"`
	MaxRank       *int   `json:"maxRank"`
	RankingPoints int    `json:"rankingPoints"`
	BadgeCount    int    `json:"badgeCnt"`
	LastLoginAt   string `json:"lastLoginAt"`
}

type ClanBasicInfo struct {
	ClanID    string `json:"clanId"`
	ClanName  string `json:"clanName"`
	CaptainID string `json:"captainId"`
	MemberNum int    `json:"memberNum"`
	ClanLevel int    `json:"clanLevel"`
}

type RawStatsPayload struct {
	ErrorEnvelope
	SoloStats *RawModeStats `json:"soloStats"`
	QuadStats *RawModeStats `json:"quadStats"`
}

type RawModeStats struct {
	GamesPlayed   int               `json:"gamesPlayed"`
	Wins          int               `json:"wins"`
	Kills         int               `json:"kills"`
	DetailedStats *RawDetailedStats `json:"detailedStats"`
}

type RawDetailedStats struct {
	Deaths    int `json:"deaths"`
	Headshots int `json:"headshots"`
	Damage    int `json:"damage"`
}

// RawGuildPayload is cached and returned as-is; guild data bypasses the
// record normalizer.
type RawGuildPayload struct {
	ErrorEnvelope
	GuildID     string `json:"guildID"`
	GuildName   string `json:"guildName"`
	Region      string `json:"region"`
	Level       int    `json:"level"`
	MemberCount int    `json:"memberNum"`
	Capacity    int    `json:"capacity"`
	LeaderUID   string `json:"captainId"`
	Slogan      string `json:"slogan"`
}

type SearchPayload struct {
	ErrorEnvelope
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	Nickname string `json:"nickname"`
	UID      string `json:"uid"`
	Level    int    `json:"level"`
	Region   string `json:"region"`
}
