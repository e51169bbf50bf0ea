package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

const draftsPerPage = 12

func (c *controller) ListDrafts(ctx context.Context, orderBy string, page int) ([]model.Draft, model.Pagination, error) {
	count, err := c.db.CountDrafts(ctx)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	pg := model.Paginate(page, count, draftsPerPage)
	drafts, err := c.db.ListDrafts(ctx, normalizeDraftListOrder(orderBy), draftsPerPage, (pg.CurrentPage-1)*draftsPerPage)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return drafts, pg, nil
}

func (c *controller) GetDraft(ctx context.Context, id int32) (*model.Draft, []model.DraftPlayer, error) {
	if id <= 0 {
		return nil, nil, fmt.Errorf("%w: invalid draft id", ErrInvalidInput)
	}

	d, err := c.db.GetDraft(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	players, err := c.db.GetDraftPlayers(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return d, players, nil
}

func (c *controller) StartDraft(ctx context.Context, ident model.Identity, leagueID int32, date time.Time, order model.DraftOrder) (int32, error) {
	if !ident.Admin {
		return 0, ErrNotAuthorized
	}
	if leagueID <= 0 {
		return 0, fmt.Errorf("%w: a league must be selected", ErrInvalidInput)
	}
	if date.IsZero() {
		date = c.clock.Now().UTC()
	}
	if order != model.DraftOrderRound && order != model.DraftOrderSnake {
		return 0, fmt.Errorf("%w: invalid draft order", ErrInvalidInput)
	}
	return c.db.StartDraft(ctx, leagueID, date, order)
}
