package db

import (
	"context"
	"testing"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

// The softball fixtures are only used here, so these tests can assert on
// exact result sets.
func TestGetMatches(t *testing.T) {
	ctx := context.Background()

	seedExec(t, `INSERT INTO matches (sport, match_date, home_team, away_team, venue) VALUES
		('SB', '2024-06-10', 'Comets', 'Stars', 'North Park'),
		('SB', '2024-06-03', 'Stars', 'Meteors', 'South Park'),
		('SB', '2024-06-17', 'Meteors', 'Comets', 'North Park')`)

	byDate, err := testDB.GetMatches(ctx, model.SportSoftball, "Date")
	assertFatalf(t, err == nil, "error getting matches: %v", err)
	assertEquals(t, "len(byDate)", 3, len(byDate))
	assertEquals(t, "first home team", "Stars", byDate[0].HomeTeam)
	assertEquals(t, "last home team", "Meteors", byDate[2].HomeTeam)
	assertEquals(t, "Sport", model.SportSoftball, byDate[0].Sport)

	byTeam, err := testDB.GetMatches(ctx, model.SportSoftball, "Team")
	assertFatalf(t, err == nil, "error getting matches: %v", err)
	assertEquals(t, "len(byTeam)", 3, len(byTeam))
	assertEquals(t, "first home team", "Comets", byTeam[0].HomeTeam)
	assertEquals(t, "last home team", "Stars", byTeam[2].HomeTeam)

	_, err = testDB.GetMatches(ctx, model.Sport("XX"), "Date")
	assertRejection(t, err, "Invalid sport: XX")
}

func TestGetMatchEvents(t *testing.T) {
	ctx := context.Background()

	p1 := seedPlayer(t, 0, 5.0)
	p2 := seedPlayer(t, 0, 7.0)
	matchID := seedID(t,
		`INSERT INTO matches (sport, match_date, home_team, away_team)
		 VALUES ('FTB', '2024-09-22', 'A', 'B') RETURNING match_id`)
	seedExec(t, `INSERT INTO match_events (match_id, player_id, event_type, event_time) VALUES
		($1, $2, 'Touchdown', 44),
		($1, $3, 'Interception', 12),
		($1, $2, 'Touchdown', 71)`, matchID, p1, p2)

	byTime, err := testDB.GetMatchEvents(ctx, matchID, "Time")
	assertFatalf(t, err == nil, "error getting events: %v", err)
	assertEquals(t, "len(byTime)", 3, len(byTime))
	assertEquals(t, "first event minute", 12, byTime[0].Time)
	assertEquals(t, "last event minute", 71, byTime[2].Time)
	assertTrue(t, "player name joined", byTime[0].PlayerName != "")

	byPlayer, err := testDB.GetMatchEvents(ctx, matchID, "Player")
	assertFatalf(t, err == nil, "error getting events: %v", err)
	assertEquals(t, "len(byPlayer)", 3, len(byPlayer))
	assertEquals(t, "first player", p1, byPlayer[0].PlayerID)
	assertEquals(t, "second player", p1, byPlayer[1].PlayerID)
	assertEquals(t, "third player", p2, byPlayer[2].PlayerID)

	// A match without events is an empty list, not an error.
	events, err := testDB.GetMatchEvents(ctx, 999999, "Time")
	assertFatalf(t, err == nil, "unexpected error: %v", err)
	assertEquals(t, "len(events)", 0, len(events))
}
