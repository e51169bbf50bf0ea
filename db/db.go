package db

import (
	"context"
	"time"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

// DB is the gateway to the fantasy league database. Each method wraps a
// single stored procedure or statement. Procedure rejections (SQLSTATE
// 45000) surface as *RejectionError so callers can show the message to
// the user; everything else is either a sentinel or an unexpected error.
type DB interface {
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int32) (*model.User, error)
	CreateUser(ctx context.Context, u *model.User) error

	CreateSession(ctx context.Context, s *model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	ListLeagues(ctx context.Context) ([]model.League, error)
	GetUserPublicLeagues(ctx context.Context, userID int32) ([]model.LeagueRanking, error)
	GetUserPrivateLeagues(ctx context.Context, userID int32) ([]model.LeagueRanking, error)

	GetUserTeams(ctx context.Context, userID int32) ([]model.Team, error)
	GetTeamInfoByName(ctx context.Context, name string) ([]model.TeamInfo, error)
	GetTeamByManager(ctx context.Context, userID int32) (*model.Team, error)
	ListOpposingTeams(ctx context.Context, teamID int32) ([]model.Team, error)
	// CreateTeam allocates the next team id under an advisory lock and
	// inserts the team in the same transaction. Returns the new team id.
	CreateTeam(ctx context.Context, name string, sport model.Sport, leagueID, managerID int32) (int32, error)

	GetMatches(ctx context.Context, sport model.Sport, orderBy string) ([]model.Match, error)
	GetMatchEvents(ctx context.Context, matchID int32, orderBy string) ([]model.MatchEvent, error)

	GetAllPlayerStats(ctx context.Context, orderBy string) ([]model.PlayerStats, error)
	GetPlayerDetails(ctx context.Context, playerID int32) (*model.Player, error)
	CreatePlayer(ctx context.Context, p *model.Player) error
	UpdatePlayer(ctx context.Context, p *model.Player) error
	// DeletePlayer removes the player and every dependent row
	// (PlayerStats, MatchEvent, PlayerTrade, Waiver) in one transaction.
	DeletePlayer(ctx context.Context, playerID int32) error
	// ListAvailablePlayers returns the available players on teamID when
	// sameTeam is true, or on every other team when it is false.
	ListAvailablePlayers(ctx context.Context, teamID int32, sameTeam bool) ([]model.Player, error)

	CountTrades(ctx context.Context) (int, error)
	ListTrades(ctx context.Context, orderBy string, limit, offset int) ([]model.TradeRecord, error)
	ExecuteTrade(ctx context.Context, buyerTeamID, sellerTeamID, sellerPlayerID, buyerPlayerID int32, date time.Time) error

	CountDrafts(ctx context.Context) (int, error)
	ListDrafts(ctx context.Context, orderBy string, limit, offset int) ([]model.Draft, error)
	GetDraft(ctx context.Context, id int32) (*model.Draft, error)
	GetDraftPlayers(ctx context.Context, id int32) ([]model.DraftPlayer, error)
	// StartDraft returns the id assigned to the new draft.
	StartDraft(ctx context.Context, leagueID int32, date time.Time, order model.DraftOrder) (int32, error)

	GetWaiverPlayers(ctx context.Context, sortOrder string) ([]model.WaiverPlayer, error)
	GetWaiverDetails(ctx context.Context, waiverID int32) (*model.Waiver, error)
	// UpdateWaiverStatus returns the human-readable message produced by
	// the procedure, or "" when it produced none.
	UpdateWaiverStatus(ctx context.Context, waiverID int32, status model.WaiverStatus) (string, error)
}
