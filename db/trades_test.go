package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

// tradeFixture creates two teams in one league with one available player
// each.
type tradeFixture struct {
	buyerTeam, sellerTeam     int32
	buyerPlayer, sellerPlayer int32
}

func newTradeFixture(t *testing.T) *tradeFixture {
	ctx := context.Background()
	u1 := seedUser(t, model.PositionUser)
	u2 := seedUser(t, model.PositionUser)
	league := seedLeague(t, model.LeagueTypePublic, model.SportFootball)

	buyer, err := testDB.CreateTeam(ctx, fmt.Sprintf("Buyers %d", nextID()), model.SportFootball, league, u1.ID)
	assertFatalf(t, err == nil, "error creating buyer team: %v", err)
	seller, err := testDB.CreateTeam(ctx, fmt.Sprintf("Sellers %d", nextID()), model.SportFootball, league, u2.ID)
	assertFatalf(t, err == nil, "error creating seller team: %v", err)

	return &tradeFixture{
		buyerTeam:    buyer,
		sellerTeam:   seller,
		buyerPlayer:  seedPlayer(t, buyer, 50.0),
		sellerPlayer: seedPlayer(t, seller, 60.0),
	}
}

func TestExecuteTrade(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	date := time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)

	err := testDB.ExecuteTrade(ctx, f.buyerTeam, f.sellerTeam, f.sellerPlayer, f.buyerPlayer, date)
	assertFatalf(t, err == nil, "error executing trade: %v", err)

	// Both players swapped teams and are out of the trade pool.
	got, err := testDB.GetPlayerDetails(ctx, f.sellerPlayer)
	assertFatalf(t, err == nil, "error loading player: %v", err)
	assertEquals(t, "seller player team", f.buyerTeam, got.TeamID)
	assertEquals(t, "seller player status", model.PlayerUnavailable, got.AvaiStatus)

	got, err = testDB.GetPlayerDetails(ctx, f.buyerPlayer)
	assertFatalf(t, err == nil, "error loading player: %v", err)
	assertEquals(t, "buyer player team", f.sellerTeam, got.TeamID)
	assertEquals(t, "buyer player status", model.PlayerUnavailable, got.AvaiStatus)

	// The trade is recorded with one row per side.
	trades, err := testDB.ListTrades(ctx, "Trade Date", 100, 0)
	assertFatalf(t, err == nil, "error listing trades: %v", err)

	var from, to bool
	for _, tr := range trades {
		if tr.PlayerID == f.buyerPlayer && tr.FromOrTo == model.TradeFrom {
			from = true
		}
		if tr.PlayerID == f.sellerPlayer && tr.FromOrTo == model.TradeTo {
			to = true
		}
	}
	assertTrue(t, "from side recorded", from)
	assertTrue(t, "to side recorded", to)

	count, err := testDB.CountTrades(ctx)
	assertFatalf(t, err == nil, "error counting trades: %v", err)
	assertTrue(t, "count covers both sides", count >= 2)
}

func TestExecuteTrade_rejections(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	date := time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)

	// Seller player does not belong to the named seller team.
	err := testDB.ExecuteTrade(ctx, f.buyerTeam, f.buyerTeam, f.sellerPlayer, f.buyerPlayer, date)
	assertRejection(t, err, "Seller player does not belong to the seller team.")

	// Unknown players.
	err = testDB.ExecuteTrade(ctx, f.buyerTeam, f.sellerTeam, 999999, f.buyerPlayer, date)
	assertRejection(t, err, "Seller player not found.")
	err = testDB.ExecuteTrade(ctx, f.buyerTeam, f.sellerTeam, f.sellerPlayer, 999999, date)
	assertRejection(t, err, "Your player not found.")

	// Unavailable players cannot be traded, and the rejection rolls the
	// whole trade back.
	seedExec(t, `UPDATE players SET avai_status='U' WHERE player_id=$1`, f.sellerPlayer)
	err = testDB.ExecuteTrade(ctx, f.buyerTeam, f.sellerTeam, f.sellerPlayer, f.buyerPlayer, date)
	assertRejection(t, err, "Both players must be available for trade.")

	got, err := testDB.GetPlayerDetails(ctx, f.buyerPlayer)
	assertFatalf(t, err == nil, "error loading player: %v", err)
	assertEquals(t, "buyer player unchanged", f.buyerTeam, got.TeamID)
}

func TestListTrades_paging(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	date := time.Date(2024, 9, 6, 0, 0, 0, 0, time.UTC)

	err := testDB.ExecuteTrade(ctx, f.buyerTeam, f.sellerTeam, f.sellerPlayer, f.buyerPlayer, date)
	assertFatalf(t, err == nil, "error executing trade: %v", err)

	page, err := testDB.ListTrades(ctx, "Name", 1, 0)
	assertFatalf(t, err == nil, "error listing trades: %v", err)
	assertEquals(t, "len(page)", 1, len(page))

	count, err := testDB.CountTrades(ctx)
	assertFatalf(t, err == nil, "error counting trades: %v", err)

	// An offset past the end yields an empty page.
	empty, err := testDB.ListTrades(ctx, "Name", 10, count)
	assertFatalf(t, err == nil, "error listing trades: %v", err)
	assertEquals(t, "len(empty)", 0, len(empty))
}
