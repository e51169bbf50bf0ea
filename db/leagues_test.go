package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func TestUserLeagues(t *testing.T) {
	ctx := context.Background()
	u := seedUser(t, model.PositionUser)
	public := seedLeague(t, model.LeagueTypePublic, model.SportFootball)
	private := seedLeague(t, model.LeagueTypePrivate, model.SportFootball)

	pubTeam, err := testDB.CreateTeam(ctx, fmt.Sprintf("Pub %d", nextID()), model.SportFootball, public, u.ID)
	assertFatalf(t, err == nil, "error creating team: %v", err)
	privTeam, err := testDB.CreateTeam(ctx, fmt.Sprintf("Priv %d", nextID()), model.SportFootball, private, u.ID)
	assertFatalf(t, err == nil, "error creating team: %v", err)

	pub, err := testDB.GetUserPublicLeagues(ctx, u.ID)
	assertFatalf(t, err == nil, "error listing public leagues: %v", err)
	assertEquals(t, "len(pub)", 1, len(pub))
	assertEquals(t, "LeagueID", public, pub[0].LeagueID)
	assertEquals(t, "TeamID", pubTeam, pub[0].TeamID)
	assertEquals(t, "LeagueType", model.LeagueTypePublic, pub[0].LeagueType)
	// A fresh team has no computed ranking yet.
	assertEquals(t, "Ranking", int32(0), pub[0].Ranking)

	priv, err := testDB.GetUserPrivateLeagues(ctx, u.ID)
	assertFatalf(t, err == nil, "error listing private leagues: %v", err)
	assertEquals(t, "len(priv)", 1, len(priv))
	assertEquals(t, "TeamID", privTeam, priv[0].TeamID)

	// A user with no teams gets empty lists, not errors.
	other := seedUser(t, model.PositionUser)
	none, err := testDB.GetUserPublicLeagues(ctx, other.ID)
	assertFatalf(t, err == nil, "error listing public leagues: %v", err)
	assertEquals(t, "len(none)", 0, len(none))
}

func TestListLeagues(t *testing.T) {
	ctx := context.Background()
	id := seedLeague(t, model.LeagueTypePublic, model.SportBasketball)

	leagues, err := testDB.ListLeagues(ctx)
	assertFatalf(t, err == nil, "error listing leagues: %v", err)

	found := false
	for _, l := range leagues {
		if l.ID == id {
			found = true
			assertEquals(t, "Sport", model.SportBasketball, l.Sport)
			assertEquals(t, "MaxNumber", 10, l.MaxNumber)
		}
	}
	assertTrue(t, "seeded league listed", found)
}
