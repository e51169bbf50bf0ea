package model

import "time"

type Match struct {
	ID       int32
	Sport    Sport
	Date     time.Time
	HomeTeam string
	AwayTeam string
	Venue    string
}

type MatchEvent struct {
	ID         int32
	MatchID    int32
	PlayerID   int32
	PlayerName string
	EventType  string
	// Time is the minute offset of the event within the match.
	Time int
}
