package model

const (
	LeagueTypePublic  = "Public"
	LeagueTypePrivate = "Private"
)

type League struct {
	ID        int32
	Name      string
	Type      string
	Sport     Sport
	MaxNumber int
}

// LeagueRanking is one row of the user leagues-and-rankings views: the
// league joined with the standing of the user's team in it.
type LeagueRanking struct {
	LeagueID   int32
	LeagueName string
	LeagueType string
	Sport      Sport
	TeamID     int32
	TeamName   string
	// Ranking is 0 until the league ranking has been computed.
	Ranking     int32
	TotalPoints float64
}
