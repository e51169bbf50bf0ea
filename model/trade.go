package model

import "time"

const (
	// TradeFrom tags the player leaving the team, TradeTo the player
	// joining it.
	TradeFrom = "F"
	TradeTo   = "T"
)

// TradeRecord is one row of the trade listing: a traded player joined
// with the trade event and the team involved.
type TradeRecord struct {
	PlayerID  int32
	FullName  string
	PhotoURL  string
	RealTeam  string
	TeamName  string
	Sport     Sport
	FromOrTo  string
	TradeDate time.Time
}

// TradeOptions is everything the start-trade form needs: the acting
// user's team, the teams they can trade with, and the available players
// on both sides.
type TradeOptions struct {
	BuyerTeam     *Team
	SellerTeams   []Team
	SellerPlayers []Player
	OwnPlayers    []Player
}
