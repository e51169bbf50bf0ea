package model

const (
	// PlayerAvailable marks a player who can be traded or claimed. Any
	// other value means unavailable.
	PlayerAvailable   = "A"
	PlayerUnavailable = "U"
)

type Player struct {
	ID       int32
	FullName string
	Sport    Sport
	Position string
	RealTeam string
	// TeamID is 0 when the player is unattached (waiver pool).
	TeamID        int32
	DraftID       int32
	FantasyPoints float64
	AvaiStatus    string
	PhotoURL      string
}

func (p *Player) Available() bool {
	return p.AvaiStatus == PlayerAvailable
}

// PlayerStats is one row of the all-player-stats view.
type PlayerStats struct {
	PlayerID      int32
	FullName      string
	Sport         Sport
	Position      string
	RealTeam      string
	TeamName      string
	FantasyPoints float64
	AvaiStatus    string
}
