package model

const (
	// TeamStatusActive is the status assigned to every newly created team.
	TeamStatusActive = "A"
)

type Team struct {
	ID          int32
	Name        string
	ManagerID   int32
	LeagueID    int32
	TotalPoints float64
	// Ranking is 0 until the league ranking has been computed.
	Ranking int32
	Status  string
	Sport   Sport
}

// TeamInfo is a row of the team-info-by-name view: the team joined with
// its league and manager names.
type TeamInfo struct {
	TeamID      int32
	TeamName    string
	LeagueName  string
	ManagerName string
	Sport       Sport
	TotalPoints float64
	Ranking     int32
	Status      string
}
