package model

import (
	"strings"
	"time"
)

type DraftOrder string

const (
	DraftOrderRound DraftOrder = "R"
	DraftOrderSnake DraftOrder = "S"
)

func ParseDraftOrder(s string) (DraftOrder, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "R":
		return DraftOrderRound, true
	case "S":
		return DraftOrderSnake, true
	default:
		return "", false
	}
}

type Draft struct {
	ID         int32
	LeagueID   int32
	Date       time.Time
	Order      DraftOrder
	Status     string
	LeagueName string
	LeagueType string
}

// DraftPlayer is a player assigned to a draft, joined with the team that
// picked them.
type DraftPlayer struct {
	PlayerID      int32
	FullName      string
	Position      string
	FantasyPoints float64
	TeamName      string
}
