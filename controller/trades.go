package controller

import (
	"context"
	"fmt"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

const tradesPerPage = 10

func (c *controller) ListTrades(ctx context.Context, orderBy string, page int) ([]model.TradeRecord, model.Pagination, error) {
	count, err := c.db.CountTrades(ctx)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	pg := model.Paginate(page, count, tradesPerPage)
	trades, err := c.db.ListTrades(ctx, normalizeTradeOrder(orderBy), tradesPerPage, (pg.CurrentPage-1)*tradesPerPage)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return trades, pg, nil
}

func (c *controller) GetTradeOptions(ctx context.Context, ident model.Identity) (*model.TradeOptions, error) {
	if ident.Anonymous() {
		return nil, ErrNotAuthorized
	}

	team, err := c.db.GetTeamByManager(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	sellers, err := c.db.ListOpposingTeams(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	sellerPlayers, err := c.db.ListAvailablePlayers(ctx, team.ID, false)
	if err != nil {
		return nil, err
	}
	ownPlayers, err := c.db.ListAvailablePlayers(ctx, team.ID, true)
	if err != nil {
		return nil, err
	}

	return &model.TradeOptions{
		BuyerTeam:     team,
		SellerTeams:   sellers,
		SellerPlayers: sellerPlayers,
		OwnPlayers:    ownPlayers,
	}, nil
}

// ExecuteTrade always trades on behalf of the acting user's own team.
func (c *controller) ExecuteTrade(ctx context.Context, ident model.Identity, sellerTeamID, sellerPlayerID, buyerPlayerID int32) error {
	if ident.Anonymous() {
		return ErrNotAuthorized
	}
	if sellerTeamID <= 0 || sellerPlayerID <= 0 || buyerPlayerID <= 0 {
		return fmt.Errorf("%w: a seller team and both players must be selected", ErrInvalidInput)
	}

	team, err := c.db.GetTeamByManager(ctx, ident.UserID)
	if err != nil {
		return err
	}
	if team.ID == sellerTeamID {
		return fmt.Errorf("%w: cannot trade with your own team", ErrInvalidInput)
	}

	return c.db.ExecuteTrade(ctx, team.ID, sellerTeamID, sellerPlayerID, buyerPlayerID, c.clock.Now().UTC())
}
