package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/zhaodong-liu/Fantasy-Sports-League/db"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

var (
	// ErrInvalidLogin covers both unknown logins and wrong passwords so
	// the login form cannot be used to probe for accounts.
	ErrInvalidLogin = errors.New("invalid login or password")
	// ErrNotAuthorized means the acting user is not allowed to perform
	// the operation, regardless of whether they are logged in.
	ErrNotAuthorized = errors.New("not authorized")
	ErrInvalidInput  = errors.New("invalid input")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Register creates a regular user account. Admin accounts are
	// provisioned directly in the database.
	Register(ctx context.Context, fullName, email, username, password string) (*model.User, error)
	Login(ctx context.Context, login, password string) (*model.Session, error)
	Logout(ctx context.Context, token string) error
	// ResolveSession maps a session token onto the acting identity. A
	// missing or expired session is the anonymous identity, not an error.
	ResolveSession(ctx context.Context, token string) (model.Identity, error)
	RunPeriodicSessionCleanup(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	ListLeagues(ctx context.Context) ([]model.League, error)
	GetUserLeagues(ctx context.Context, userID int32) (public, private []model.LeagueRanking, err error)
	GetUserTeams(ctx context.Context, userID int32) ([]model.Team, error)
	GetTeamInfo(ctx context.Context, name string) ([]model.TeamInfo, error)
	CreateTeam(ctx context.Context, ident model.Identity, name string, sport model.Sport, leagueID int32) (int32, error)

	GetMatches(ctx context.Context, sport model.Sport, orderBy string) ([]model.Match, error)
	GetMatchEvents(ctx context.Context, matchID int32, orderBy string) ([]model.MatchEvent, error)

	ListPlayerStats(ctx context.Context, orderBy string, page int) ([]model.PlayerStats, model.Pagination, error)
	GetPlayerDetails(ctx context.Context, id int32) (*model.Player, error)
	CreatePlayer(ctx context.Context, ident model.Identity, p *model.Player) error
	UpdatePlayer(ctx context.Context, ident model.Identity, p *model.Player) error
	DeletePlayer(ctx context.Context, ident model.Identity, id int32) error

	ListTrades(ctx context.Context, orderBy string, page int) ([]model.TradeRecord, model.Pagination, error)
	// GetTradeOptions gathers everything the start-trade form needs for
	// the acting user's team.
	GetTradeOptions(ctx context.Context, ident model.Identity) (*model.TradeOptions, error)
	// ExecuteTrade trades one of the acting user's players for a player
	// on the seller team. The buyer side is always resolved from the
	// acting user, never taken from the request.
	ExecuteTrade(ctx context.Context, ident model.Identity, sellerTeamID, sellerPlayerID, buyerPlayerID int32) error

	ListDrafts(ctx context.Context, orderBy string, page int) ([]model.Draft, model.Pagination, error)
	GetDraft(ctx context.Context, id int32) (*model.Draft, []model.DraftPlayer, error)
	StartDraft(ctx context.Context, ident model.Identity, leagueID int32, date time.Time, order model.DraftOrder) (int32, error)

	GetWaiverPlayers(ctx context.Context, sortOrder string) ([]model.WaiverPlayer, error)
	GetWaiverDetails(ctx context.Context, waiverID int32) (*model.Waiver, error)
	UpdateWaiverStatus(ctx context.Context, ident model.Identity, waiverID int32, status model.WaiverStatus) (string, error)
}

type controller struct {
	clock clock.Clock
	db    db.DB
}

func New(clock clock.Clock, db db.DB) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
	}
	return c, nil
}

// Every listing endpoint accepts a sort key from the request. The keys
// are whitelisted here and anything else silently falls back to the
// default, so a hand-edited URL can never change the query shape.
func normalizeOrder(key, def string, allowed ...string) string {
	for _, a := range allowed {
		if key == a {
			return key
		}
	}
	return def
}

func normalizeMatchOrder(key string) string {
	return normalizeOrder(key, "Date", "Date", "Team")
}

func normalizeEventOrder(key string) string {
	return normalizeOrder(key, "Time", "Time", "Player")
}

func normalizePlayerOrder(key string) string {
	return normalizeOrder(key, "Name", "Name", "Fantasy Points", "Sport")
}

func normalizeTradeOrder(key string) string {
	return normalizeOrder(key, "Name", "Name", "Sport", "Fantasy Points", "Trade Date")
}

func normalizeDraftListOrder(key string) string {
	return normalizeOrder(key, "Date", "Date", "DraftOrder", "DraftStatus", "LeagueType")
}

func normalizeWaiverOrder(key string) string {
	return normalizeOrder(key, "Name", "Name", "Sport", "FantasyPoints")
}
