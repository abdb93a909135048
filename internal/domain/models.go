package domain

// PlayerRecord is the merged, derived-field-complete view of a player,
// built from the account and stats payloads of one upstream source.
// Immutable once produced; lives as long as its cache entry.
type PlayerRecord struct {
	Nickname      string    `json:"nickname"`
	UID           string    `json:"uid"`
	Level         int       `json:"level"`
	Region        string    `json:"region"`
	Likes         int       `json:"likes"`
	Rank          string    `json:"rank"`
	RankingPoints int       `json:"ranking_points"`
	KDRatio       string    `json:"kd_ratio"`
	TotalMatches  int       `json:"total_matches"`
	TotalWins     int       `json:"total_wins"`
	WinRate       string    `json:"win_rate"`
	TotalKills    int       `json:"total_kills"`
	Headshots     int       `json:"headshots"`
	Damage        int       `json:"damage"`
	MaxRank       string    `json:"max_rank"`
	BadgeCount    int       `json:"badge_count"`
	ClanInfo      *ClanInfo `json:"clan_info,omitempty"`
	LastLogin     string    `json:"last_login"`
	SoloStats     ModeStats `json:"solo_stats"`
	QuadStats     ModeStats `json:"quad_stats"`
}

// ModeStats holds per-mode totals with the detailed sub-stats flattened in.
type ModeStats struct {
	GamesPlayed int `json:"games_played"`
	Wins        int `json:"wins"`
	Kills       int `json:"kills"`
	Deaths      int `json:"deaths"`
	Headshots   int `json:"headshots"`
	Damage      int `json:"damage"`
}

type ClanInfo struct {
	ClanID      string `json:"clan_id"`
	ClanName    string `json:"clan_name"`
	CaptainUID  string `json:"captain_uid"`
	MemberCount int    `json:"member_count"`
	Level       int    `json:"level"`
}

// PlayerCandidate is the lightweight record returned by nickname search.
type PlayerCandidate struct {
	Nickname string `json:"nickname"`
	UID      string `json:"uid"`
	Level    int    `json:"level"`
	Region   string `json:"region"`
}
