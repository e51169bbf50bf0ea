package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func TestCreateTeam(t *testing.T) {
	ctx := context.Background()
	u := seedUser(t, model.PositionUser)
	league := seedLeague(t, model.LeagueTypePublic, model.SportFootball)

	name := fmt.Sprintf("Rockets %d", nextID())
	id, err := testDB.CreateTeam(ctx, name, model.SportFootball, league, u.ID)
	assertFatalf(t, err == nil, "error creating team: %v", err)
	assertTrue(t, "team id assigned", id > 0)

	teams, err := testDB.GetUserTeams(ctx, u.ID)
	assertFatalf(t, err == nil, "error loading teams: %v", err)
	assertEquals(t, "len(teams)", 1, len(teams))
	assertEquals(t, "Name", name, teams[0].Name)
	assertEquals(t, "Status", model.TeamStatusActive, teams[0].Status)
	assertEquals(t, "LeagueID", league, teams[0].LeagueID)
}

func TestCreateTeam_duplicateName(t *testing.T) {
	ctx := context.Background()
	u := seedUser(t, model.PositionUser)
	league := seedLeague(t, model.LeagueTypePublic, model.SportFootball)

	name := fmt.Sprintf("Rockets %d", nextID())
	_, err := testDB.CreateTeam(ctx, name, model.SportFootball, league, u.ID)
	assertFatalf(t, err == nil, "error creating team: %v", err)

	_, err = testDB.CreateTeam(ctx, name, model.SportFootball, league, u.ID)
	if !errors.Is(err, ErrDuplicateTeamName) {
		t.Errorf("expected ErrDuplicateTeamName, got: %v", err)
	}

	// The same name in a different league is fine.
	other := seedLeague(t, model.LeagueTypePublic, model.SportFootball)
	_, err = testDB.CreateTeam(ctx, name, model.SportFootball, other, u.ID)
	assertFatalf(t, err == nil, "error creating team in other league: %v", err)
}

func TestCreateTeam_leagueNotFound(t *testing.T) {
	ctx := context.Background()
	u := seedUser(t, model.PositionUser)

	_, err := testDB.CreateTeam(ctx, "No League", model.SportFootball, 999999, u.ID)
	if !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound, got: %v", err)
	}

	// A real league in a different sport is the same as no league.
	basketball := seedLeague(t, model.LeagueTypePublic, model.SportBasketball)
	_, err = testDB.CreateTeam(ctx, "Wrong Sport", model.SportFootball, basketball, u.ID)
	if !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound for a sport mismatch, got: %v", err)
	}
}

// Concurrent creations must never hand out the same team id. The insert
// allocates max(team_id)+1 under a row lock, so the losers wait and then
// see the winner's id.
func TestCreateTeam_concurrent(t *testing.T) {
	ctx := context.Background()
	league := seedLeague(t, model.LeagueTypePublic, model.SportFootball)

	const n = 8
	ids := make([]int32, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := seedUser(t, model.PositionUser)
			name := fmt.Sprintf("Racer %d-%d", i, nextID())
			ids[i], errs[i] = testDB.CreateTeam(ctx, name, model.SportFootball, league, u.ID)
		}(i)
	}
	wg.Wait()

	seen := make(map[int32]bool)
	for i := 0; i < n; i++ {
		assertFatalf(t, errs[i] == nil, "error creating team %d: %v", i, errs[i])
		if seen[ids[i]] {
			t.Errorf("duplicate team id handed out: %d", ids[i])
		}
		seen[ids[i]] = true
	}
}

func TestGetTeamInfoByName(t *testing.T) {
	ctx := context.Background()
	u := seedUser(t, model.PositionUser)
	league := seedLeague(t, model.LeagueTypePrivate, model.SportBasketball)

	name := fmt.Sprintf("Dunkers %d", nextID())
	_, err := testDB.CreateTeam(ctx, name, model.SportBasketball, league, u.ID)
	assertFatalf(t, err == nil, "error creating team: %v", err)

	infos, err := testDB.GetTeamInfoByName(ctx, name)
	assertFatalf(t, err == nil, "error loading team info: %v", err)
	assertEquals(t, "len(infos)", 1, len(infos))
	assertEquals(t, "TeamName", name, infos[0].TeamName)
	assertEquals(t, "ManagerName", u.FullName, infos[0].ManagerName)
	assertEquals(t, "Sport", model.SportBasketball, infos[0].Sport)

	infos, err = testDB.GetTeamInfoByName(ctx, "no such team")
	assertFatalf(t, err == nil, "unexpected error: %v", err)
	assertEquals(t, "len(infos)", 0, len(infos))
}

func TestListOpposingTeams(t *testing.T) {
	ctx := context.Background()
	u1 := seedUser(t, model.PositionUser)
	u2 := seedUser(t, model.PositionUser)
	league := seedLeague(t, model.LeagueTypePublic, model.SportSoftball)

	mine, err := testDB.CreateTeam(ctx, fmt.Sprintf("Mine %d", nextID()), model.SportSoftball, league, u1.ID)
	assertFatalf(t, err == nil, "error creating team: %v", err)
	theirs, err := testDB.CreateTeam(ctx, fmt.Sprintf("Theirs %d", nextID()), model.SportSoftball, league, u2.ID)
	assertFatalf(t, err == nil, "error creating team: %v", err)

	opposing, err := testDB.ListOpposingTeams(ctx, mine)
	assertFatalf(t, err == nil, "error listing opposing teams: %v", err)

	for _, team := range opposing {
		if team.ID == mine {
			t.Errorf("own team %d listed as opposing", mine)
		}
	}
	found := false
	for _, team := range opposing {
		if team.ID == theirs {
			found = true
		}
	}
	assertTrue(t, "other team listed", found)
}

func TestGetTeamByManager(t *testing.T) {
	ctx := context.Background()
	u := seedUser(t, model.PositionUser)

	_, err := testDB.GetTeamByManager(ctx, u.ID)
	if !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("expected ErrTeamNotFound, got: %v", err)
	}

	league := seedLeague(t, model.LeagueTypePublic, model.SportFootball)
	id, err := testDB.CreateTeam(ctx, fmt.Sprintf("Solo %d", nextID()), model.SportFootball, league, u.ID)
	assertFatalf(t, err == nil, "error creating team: %v", err)

	team, err := testDB.GetTeamByManager(ctx, u.ID)
	assertFatalf(t, err == nil, "error loading team by manager: %v", err)
	assertEquals(t, "ID", id, team.ID)
}
