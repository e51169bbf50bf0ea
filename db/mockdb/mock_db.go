package mockdb

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := db.Called(ctx, login)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) GetUserByID(ctx context.Context, id int32) (*model.User, error) {
	args := db.Called(ctx, id)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) CreateUser(ctx context.Context, u *model.User) error {
	args := db.Called(ctx, u)
	return args.Error(0)
}

func (db *DB) CreateSession(ctx context.Context, s *model.Session) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) GetSession(ctx context.Context, token string) (*model.Session, error) {
	args := db.Called(ctx, token)

	var s *model.Session
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Session)
	}
	return s, args.Error(1)
}

func (db *DB) DeleteSession(ctx context.Context, token string) error {
	args := db.Called(ctx, token)
	return args.Error(0)
}

func (db *DB) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	args := db.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (db *DB) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := db.Called(ctx)

	var l []model.League
	if args.Get(0) != nil {
		l = args.Get(0).([]model.League)
	}
	return l, args.Error(1)
}

func (db *DB) GetUserPublicLeagues(ctx context.Context, userID int32) ([]model.LeagueRanking, error) {
	args := db.Called(ctx, userID)

	var r []model.LeagueRanking
	if args.Get(0) != nil {
		r = args.Get(0).([]model.LeagueRanking)
	}
	return r, args.Error(1)
}

func (db *DB) GetUserPrivateLeagues(ctx context.Context, userID int32) ([]model.LeagueRanking, error) {
	args := db.Called(ctx, userID)

	var r []model.LeagueRanking
	if args.Get(0) != nil {
		r = args.Get(0).([]model.LeagueRanking)
	}
	return r, args.Error(1)
}

func (db *DB) GetUserTeams(ctx context.Context, userID int32) ([]model.Team, error) {
	args := db.Called(ctx, userID)

	var t []model.Team
	if args.Get(0) != nil {
		t = args.Get(0).([]model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) GetTeamInfoByName(ctx context.Context, name string) ([]model.TeamInfo, error) {
	args := db.Called(ctx, name)

	var t []model.TeamInfo
	if args.Get(0) != nil {
		t = args.Get(0).([]model.TeamInfo)
	}
	return t, args.Error(1)
}

func (db *DB) GetTeamByManager(ctx context.Context, userID int32) (*model.Team, error) {
	args := db.Called(ctx, userID)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) ListOpposingTeams(ctx context.Context, teamID int32) ([]model.Team, error) {
	args := db.Called(ctx, teamID)

	var t []model.Team
	if args.Get(0) != nil {
		t = args.Get(0).([]model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) CreateTeam(ctx context.Context, name string, sport model.Sport, leagueID, managerID int32) (int32, error) {
	args := db.Called(ctx, name, sport, leagueID, managerID)
	return args.Get(0).(int32), args.Error(1)
}

func (db *DB) GetMatches(ctx context.Context, sport model.Sport, orderBy string) ([]model.Match, error) {
	args := db.Called(ctx, sport, orderBy)

	var m []model.Match
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Match)
	}
	return m, args.Error(1)
}

func (db *DB) GetMatchEvents(ctx context.Context, matchID int32, orderBy string) ([]model.MatchEvent, error) {
	args := db.Called(ctx, matchID, orderBy)

	var e []model.MatchEvent
	if args.Get(0) != nil {
		e = args.Get(0).([]model.MatchEvent)
	}
	return e, args.Error(1)
}

func (db *DB) GetAllPlayerStats(ctx context.Context, orderBy string) ([]model.PlayerStats, error) {
	args := db.Called(ctx, orderBy)

	var s []model.PlayerStats
	if args.Get(0) != nil {
		s = args.Get(0).([]model.PlayerStats)
	}
	return s, args.Error(1)
}

func (db *DB) GetPlayerDetails(ctx context.Context, playerID int32) (*model.Player, error) {
	args := db.Called(ctx, playerID)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) CreatePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) UpdatePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) DeletePlayer(ctx context.Context, playerID int32) error {
	args := db.Called(ctx, playerID)
	return args.Error(0)
}

func (db *DB) ListAvailablePlayers(ctx context.Context, teamID int32, sameTeam bool) ([]model.Player, error) {
	args := db.Called(ctx, teamID, sameTeam)

	var p []model.Player
	if args.Get(0) != nil {
		p = args.Get(0).([]model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) CountTrades(ctx context.Context) (int, error) {
	args := db.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (db *DB) ListTrades(ctx context.Context, orderBy string, limit, offset int) ([]model.TradeRecord, error) {
	args := db.Called(ctx, orderBy, limit, offset)

	var t []model.TradeRecord
	if args.Get(0) != nil {
		t = args.Get(0).([]model.TradeRecord)
	}
	return t, args.Error(1)
}

func (db *DB) ExecuteTrade(ctx context.Context, buyerTeamID, sellerTeamID, sellerPlayerID, buyerPlayerID int32, date time.Time) error {
	args := db.Called(ctx, buyerTeamID, sellerTeamID, sellerPlayerID, buyerPlayerID, date)
	return args.Error(0)
}

func (db *DB) CountDrafts(ctx context.Context) (int, error) {
	args := db.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (db *DB) ListDrafts(ctx context.Context, orderBy string, limit, offset int) ([]model.Draft, error) {
	args := db.Called(ctx, orderBy, limit, offset)

	var d []model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).([]model.Draft)
	}
	return d, args.Error(1)
}

func (db *DB) GetDraft(ctx context.Context, id int32) (*model.Draft, error) {
	args := db.Called(ctx, id)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	return d, args.Error(1)
}

func (db *DB) GetDraftPlayers(ctx context.Context, id int32) ([]model.DraftPlayer, error) {
	args := db.Called(ctx, id)

	var p []model.DraftPlayer
	if args.Get(0) != nil {
		p = args.Get(0).([]model.DraftPlayer)
	}
	return p, args.Error(1)
}

func (db *DB) StartDraft(ctx context.Context, leagueID int32, date time.Time, order model.DraftOrder) (int32, error) {
	args := db.Called(ctx, leagueID, date, order)
	return args.Get(0).(int32), args.Error(1)
}

func (db *DB) GetWaiverPlayers(ctx context.Context, sortOrder string) ([]model.WaiverPlayer, error) {
	args := db.Called(ctx, sortOrder)

	var w []model.WaiverPlayer
	if args.Get(0) != nil {
		w = args.Get(0).([]model.WaiverPlayer)
	}
	return w, args.Error(1)
}

func (db *DB) GetWaiverDetails(ctx context.Context, waiverID int32) (*model.Waiver, error) {
	args := db.Called(ctx, waiverID)

	var w *model.Waiver
	if args.Get(0) != nil {
		w = args.Get(0).(*model.Waiver)
	}
	return w, args.Error(1)
}

func (db *DB) UpdateWaiverStatus(ctx context.Context, waiverID int32, status model.WaiverStatus) (string, error) {
	args := db.Called(ctx, waiverID, status)
	return args.String(0), args.Error(1)
}
