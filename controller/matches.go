package controller

import (
	"context"
	"fmt"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func (c *controller) GetMatches(ctx context.Context, sport model.Sport, orderBy string) ([]model.Match, error) {
	if !sport.Valid() {
		sport = model.DefaultSport
	}
	return c.db.GetMatches(ctx, sport, normalizeMatchOrder(orderBy))
}

func (c *controller) GetMatchEvents(ctx context.Context, matchID int32, orderBy string) ([]model.MatchEvent, error) {
	if matchID <= 0 {
		return nil, fmt.Errorf("%w: invalid match id", ErrInvalidInput)
	}
	return c.db.GetMatchEvents(ctx, matchID, normalizeEventOrder(orderBy))
}
