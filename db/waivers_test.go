package db

import (
	"context"
	"errors"
	"testing"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func seedWaiver(t *testing.T, points float64) (waiverID, playerID int32) {
	playerID = seedPlayer(t, 0, points)
	waiverID = seedID(t,
		`INSERT INTO waivers (player_id, waiver_status, request_date)
		 VALUES ($1, 'P', '2024-08-28') RETURNING waiver_id`, playerID)
	return waiverID, playerID
}

func TestGetWaiverPlayers(t *testing.T) {
	ctx := context.Background()
	waiverID, playerID := seedWaiver(t, 33.0)

	pool, err := testDB.GetWaiverPlayers(ctx, "Name")
	assertFatalf(t, err == nil, "error listing waiver pool: %v", err)

	found := false
	for _, w := range pool {
		assertEquals(t, "Status", model.WaiverPending, w.Status)
		if w.WaiverID == waiverID {
			found = true
			assertEquals(t, "PlayerID", playerID, w.PlayerID)
			assertEquals(t, "FantasyPoints", 33.0, w.FantasyPoints)
		}
	}
	assertTrue(t, "seeded waiver listed", found)
}

func TestGetWaiverDetails(t *testing.T) {
	ctx := context.Background()
	waiverID, playerID := seedWaiver(t, 21.5)

	w, err := testDB.GetWaiverDetails(ctx, waiverID)
	assertFatalf(t, err == nil, "error loading waiver: %v", err)
	assertEquals(t, "ID", waiverID, w.ID)
	assertEquals(t, "PlayerID", playerID, w.PlayerID)
	assertEquals(t, "Status", model.WaiverPending, w.Status)
	assertTrue(t, "player name joined", w.PlayerName != "")
	// This waiver has no claiming team.
	assertEquals(t, "TeamID", int32(0), w.TeamID)
	assertEquals(t, "TeamName", "", w.TeamName)

	_, err = testDB.GetWaiverDetails(ctx, 999999)
	if !errors.Is(err, ErrWaiverNotFound) {
		t.Errorf("expected ErrWaiverNotFound, got: %v", err)
	}
}

func TestUpdateWaiverStatus(t *testing.T) {
	ctx := context.Background()
	waiverID, _ := seedWaiver(t, 18.0)

	msg, err := testDB.UpdateWaiverStatus(ctx, waiverID, model.WaiverApproved)
	assertFatalf(t, err == nil, "error approving waiver: %v", err)
	assertEquals(t, "message", "Waiver approved.", msg)

	w, err := testDB.GetWaiverDetails(ctx, waiverID)
	assertFatalf(t, err == nil, "error loading waiver: %v", err)
	assertEquals(t, "Status", model.WaiverApproved, w.Status)

	// A processed waiver cannot be processed again.
	_, err = testDB.UpdateWaiverStatus(ctx, waiverID, model.WaiverDenied)
	assertRejection(t, err, "Waiver has already been processed.")

	denyID, _ := seedWaiver(t, 17.0)
	msg, err = testDB.UpdateWaiverStatus(ctx, denyID, model.WaiverDenied)
	assertFatalf(t, err == nil, "error denying waiver: %v", err)
	assertEquals(t, "message", "Waiver denied.", msg)

	_, err = testDB.UpdateWaiverStatus(ctx, 999999, model.WaiverApproved)
	assertRejection(t, err, "Waiver not found.")
}
