package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func TestPlayers_createAndLoad(t *testing.T) {
	ctx := context.Background()

	p := &model.Player{
		FullName:      fmt.Sprintf("Quinn Passer %d", nextID()),
		Sport:         model.SportFootball,
		Position:      "QB",
		RealTeam:      "Hawks",
		FantasyPoints: 55.25,
		AvaiStatus:    model.PlayerAvailable,
		PhotoURL:      "https://example.com/quinn.jpg",
	}
	err := testDB.CreatePlayer(ctx, p)
	assertFatalf(t, err == nil, "error creating player: %v", err)
	assertTrue(t, "ID assigned", p.ID > 0)

	got, err := testDB.GetPlayerDetails(ctx, p.ID)
	assertFatalf(t, err == nil, "error loading player: %v", err)
	assertEquals(t, "FullName", p.FullName, got.FullName)
	assertEquals(t, "Sport", model.SportFootball, got.Sport)
	assertEquals(t, "Position", "QB", got.Position)
	assertEquals(t, "FantasyPoints", 55.25, got.FantasyPoints)
	assertEquals(t, "PhotoURL", p.PhotoURL, got.PhotoURL)
	// New players start in the pool.
	assertEquals(t, "TeamID", int32(0), got.TeamID)
}

func TestPlayers_update(t *testing.T) {
	ctx := context.Background()

	p := &model.Player{
		FullName:   fmt.Sprintf("Robin Rusher %d", nextID()),
		Sport:      model.SportFootball,
		Position:   "RB",
		RealTeam:   "Bears",
		AvaiStatus: model.PlayerAvailable,
	}
	err := testDB.CreatePlayer(ctx, p)
	assertFatalf(t, err == nil, "error creating player: %v", err)

	p.FantasyPoints = 99.5
	p.AvaiStatus = model.PlayerUnavailable
	err = testDB.UpdatePlayer(ctx, p)
	assertFatalf(t, err == nil, "error updating player: %v", err)

	got, err := testDB.GetPlayerDetails(ctx, p.ID)
	assertFatalf(t, err == nil, "error loading player: %v", err)
	assertEquals(t, "FantasyPoints", 99.5, got.FantasyPoints)
	assertEquals(t, "AvaiStatus", model.PlayerUnavailable, got.AvaiStatus)

	missing := &model.Player{ID: 999999, FullName: "Nobody", Sport: model.SportFootball}
	err = testDB.UpdatePlayer(ctx, missing)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got: %v", err)
	}
}

func TestPlayers_deleteCascades(t *testing.T) {
	ctx := context.Background()

	playerID := seedPlayer(t, 0, 12.0)
	matchID := seedID(t,
		`INSERT INTO matches (sport, match_date, home_team, away_team)
		 VALUES ('FTB', '2024-09-15', 'A', 'B') RETURNING match_id`)
	seedExec(t, `INSERT INTO match_events (match_id, player_id, event_type, event_time)
		 VALUES ($1, $2, 'Touchdown', 3)`, matchID, playerID)
	seedExec(t, `INSERT INTO player_stats (player_id, match_id, points)
		 VALUES ($1, $2, 6.0)`, playerID, matchID)
	seedExec(t, `INSERT INTO waivers (player_id, waiver_status, request_date)
		 VALUES ($1, 'P', '2024-09-01')`, playerID)

	err := testDB.DeletePlayer(ctx, playerID)
	assertFatalf(t, err == nil, "error deleting player: %v", err)

	_, err = testDB.GetPlayerDetails(ctx, playerID)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got: %v", err)
	}

	var remaining int
	err = testPG.pool.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM match_events WHERE player_id=$1)
		      + (SELECT COUNT(*) FROM player_stats WHERE player_id=$1)
		      + (SELECT COUNT(*) FROM waivers WHERE player_id=$1)`, playerID).Scan(&remaining)
	assertFatalf(t, err == nil, "error counting dependents: %v", err)
	assertEquals(t, "remaining dependents", 0, remaining)

	err = testDB.DeletePlayer(ctx, playerID)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound on second delete, got: %v", err)
	}
}

func TestPlayers_statsListing(t *testing.T) {
	ctx := context.Background()
	playerID := seedPlayer(t, 0, 31.5)

	stats, err := testDB.GetAllPlayerStats(ctx, "Name")
	assertFatalf(t, err == nil, "error listing player stats: %v", err)

	found := false
	for _, s := range stats {
		if s.PlayerID == playerID {
			found = true
			assertEquals(t, "FantasyPoints", 31.5, s.FantasyPoints)
			// Pool players have no team name.
			assertEquals(t, "TeamName", "", s.TeamName)
		}
	}
	assertTrue(t, "seeded player listed", found)

	_, err = testDB.GetAllPlayerStats(ctx, "DROP TABLE players")
	assertRejection(t, err, "Invalid order option: DROP TABLE players")
}

func TestPlayers_listAvailable(t *testing.T) {
	ctx := context.Background()
	u := seedUser(t, model.PositionUser)
	league := seedLeague(t, model.LeagueTypePublic, model.SportFootball)
	teamID, err := testDB.CreateTeam(ctx, fmt.Sprintf("Roster %d", nextID()), model.SportFootball, league, u.ID)
	assertFatalf(t, err == nil, "error creating team: %v", err)

	available := seedPlayer(t, teamID, 20.0)
	unavailable := seedID(t,
		`INSERT INTO players (full_name, sport, position, real_team, team_id, fantasy_points, avai_status)
		 VALUES ($1, 'FTB', 'WR', 'Lions', $2, 10.0, 'U') RETURNING player_id`,
		fmt.Sprintf("Benched %d", nextID()), teamID)

	own, err := testDB.ListAvailablePlayers(ctx, teamID, true)
	assertFatalf(t, err == nil, "error listing own players: %v", err)
	assertEquals(t, "len(own)", 1, len(own))
	assertEquals(t, "ID", available, own[0].ID)

	others, err := testDB.ListAvailablePlayers(ctx, teamID, false)
	assertFatalf(t, err == nil, "error listing other players: %v", err)
	for _, p := range others {
		if p.ID == available || p.ID == unavailable {
			t.Errorf("player %d from own team listed as opposing", p.ID)
		}
		assertEquals(t, "AvaiStatus", model.PlayerAvailable, p.AvaiStatus)
	}
}
