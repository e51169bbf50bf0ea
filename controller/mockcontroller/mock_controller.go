package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

type C struct {
	mock.Mock
}

func (c *C) Register(ctx context.Context, fullName, email, username, password string) (*model.User, error) {
	args := c.Called(ctx, fullName, email, username, password)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (c *C) Login(ctx context.Context, login, password string) (*model.Session, error) {
	args := c.Called(ctx, login, password)

	var s *model.Session
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Session)
	}
	return s, args.Error(1)
}

func (c *C) Logout(ctx context.Context, token string) error {
	args := c.Called(ctx, token)
	return args.Error(0)
}

func (c *C) ResolveSession(ctx context.Context, token string) (model.Identity, error) {
	args := c.Called(ctx, token)
	return args.Get(0).(model.Identity), args.Error(1)
}

func (c *C) RunPeriodicSessionCleanup(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
	wg.Done()
}

func (c *C) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var l []model.League
	if args.Get(0) != nil {
		l = args.Get(0).([]model.League)
	}
	return l, args.Error(1)
}

func (c *C) GetUserLeagues(ctx context.Context, userID int32) ([]model.LeagueRanking, []model.LeagueRanking, error) {
	args := c.Called(ctx, userID)

	var public, private []model.LeagueRanking
	if args.Get(0) != nil {
		public = args.Get(0).([]model.LeagueRanking)
	}
	if args.Get(1) != nil {
		private = args.Get(1).([]model.LeagueRanking)
	}
	return public, private, args.Error(2)
}

func (c *C) GetUserTeams(ctx context.Context, userID int32) ([]model.Team, error) {
	args := c.Called(ctx, userID)

	var t []model.Team
	if args.Get(0) != nil {
		t = args.Get(0).([]model.Team)
	}
	return t, args.Error(1)
}

func (c *C) GetTeamInfo(ctx context.Context, name string) ([]model.TeamInfo, error) {
	args := c.Called(ctx, name)

	var t []model.TeamInfo
	if args.Get(0) != nil {
		t = args.Get(0).([]model.TeamInfo)
	}
	return t, args.Error(1)
}

func (c *C) CreateTeam(ctx context.Context, ident model.Identity, name string, sport model.Sport, leagueID int32) (int32, error) {
	args := c.Called(ctx, ident, name, sport, leagueID)
	return args.Get(0).(int32), args.Error(1)
}

func (c *C) GetMatches(ctx context.Context, sport model.Sport, orderBy string) ([]model.Match, error) {
	args := c.Called(ctx, sport, orderBy)

	var m []model.Match
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Match)
	}
	return m, args.Error(1)
}

func (c *C) GetMatchEvents(ctx context.Context, matchID int32, orderBy string) ([]model.MatchEvent, error) {
	args := c.Called(ctx, matchID, orderBy)

	var e []model.MatchEvent
	if args.Get(0) != nil {
		e = args.Get(0).([]model.MatchEvent)
	}
	return e, args.Error(1)
}

func (c *C) ListPlayerStats(ctx context.Context, orderBy string, page int) ([]model.PlayerStats, model.Pagination, error) {
	args := c.Called(ctx, orderBy, page)

	var s []model.PlayerStats
	if args.Get(0) != nil {
		s = args.Get(0).([]model.PlayerStats)
	}
	return s, args.Get(1).(model.Pagination), args.Error(2)
}

func (c *C) GetPlayerDetails(ctx context.Context, id int32) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) CreatePlayer(ctx context.Context, ident model.Identity, p *model.Player) error {
	args := c.Called(ctx, ident, p)
	return args.Error(0)
}

func (c *C) UpdatePlayer(ctx context.Context, ident model.Identity, p *model.Player) error {
	args := c.Called(ctx, ident, p)
	return args.Error(0)
}

func (c *C) DeletePlayer(ctx context.Context, ident model.Identity, id int32) error {
	args := c.Called(ctx, ident, id)
	return args.Error(0)
}

func (c *C) ListTrades(ctx context.Context, orderBy string, page int) ([]model.TradeRecord, model.Pagination, error) {
	args := c.Called(ctx, orderBy, page)

	var t []model.TradeRecord
	if args.Get(0) != nil {
		t = args.Get(0).([]model.TradeRecord)
	}
	return t, args.Get(1).(model.Pagination), args.Error(2)
}

func (c *C) GetTradeOptions(ctx context.Context, ident model.Identity) (*model.TradeOptions, error) {
	args := c.Called(ctx, ident)

	var o *model.TradeOptions
	if args.Get(0) != nil {
		o = args.Get(0).(*model.TradeOptions)
	}
	return o, args.Error(1)
}

func (c *C) ExecuteTrade(ctx context.Context, ident model.Identity, sellerTeamID, sellerPlayerID, buyerPlayerID int32) error {
	args := c.Called(ctx, ident, sellerTeamID, sellerPlayerID, buyerPlayerID)
	return args.Error(0)
}

func (c *C) ListDrafts(ctx context.Context, orderBy string, page int) ([]model.Draft, model.Pagination, error) {
	args := c.Called(ctx, orderBy, page)

	var d []model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).([]model.Draft)
	}
	return d, args.Get(1).(model.Pagination), args.Error(2)
}

func (c *C) GetDraft(ctx context.Context, id int32) (*model.Draft, []model.DraftPlayer, error) {
	args := c.Called(ctx, id)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	var p []model.DraftPlayer
	if args.Get(1) != nil {
		p = args.Get(1).([]model.DraftPlayer)
	}
	return d, p, args.Error(2)
}

func (c *C) StartDraft(ctx context.Context, ident model.Identity, leagueID int32, date time.Time, order model.DraftOrder) (int32, error) {
	args := c.Called(ctx, ident, leagueID, date, order)
	return args.Get(0).(int32), args.Error(1)
}

func (c *C) GetWaiverPlayers(ctx context.Context, sortOrder string) ([]model.WaiverPlayer, error) {
	args := c.Called(ctx, sortOrder)

	var w []model.WaiverPlayer
	if args.Get(0) != nil {
		w = args.Get(0).([]model.WaiverPlayer)
	}
	return w, args.Error(1)
}

func (c *C) GetWaiverDetails(ctx context.Context, waiverID int32) (*model.Waiver, error) {
	args := c.Called(ctx, waiverID)

	var w *model.Waiver
	if args.Get(0) != nil {
		w = args.Get(0).(*model.Waiver)
	}
	return w, args.Error(1)
}

func (c *C) UpdateWaiverStatus(ctx context.Context, ident model.Identity, waiverID int32, status model.WaiverStatus) (string, error) {
	args := c.Called(ctx, ident, waiverID, status)
	return args.String(0), args.Error(1)
}
