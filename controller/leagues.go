package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

func (c *controller) GetUserLeagues(ctx context.Context, userID int32) ([]model.LeagueRanking, []model.LeagueRanking, error) {
	public, err := c.db.GetUserPublicLeagues(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	private, err := c.db.GetUserPrivateLeagues(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return public, private, nil
}

func (c *controller) GetUserTeams(ctx context.Context, userID int32) ([]model.Team, error) {
	return c.db.GetUserTeams(ctx, userID)
}

func (c *controller) GetTeamInfo(ctx context.Context, name string) ([]model.TeamInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	return c.db.GetTeamInfoByName(ctx, name)
}

func (c *controller) CreateTeam(ctx context.Context, ident model.Identity, name string, sport model.Sport, leagueID int32) (int32, error) {
	if ident.Anonymous() {
		return 0, ErrNotAuthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if !sport.Valid() {
		sport = model.DefaultSport
	}
	if leagueID <= 0 {
		return 0, fmt.Errorf("%w: a league must be selected", ErrInvalidInput)
	}
	return c.db.CreateTeam(ctx, name, sport, leagueID, ident.UserID)
}
