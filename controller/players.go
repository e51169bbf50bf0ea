package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

const playersPerPage = 20

// ListPlayerStats pages the full stats listing in the application. The
// listing procedure has no paging parameters, so the whole result is
// fetched and sliced here.
func (c *controller) ListPlayerStats(ctx context.Context, orderBy string, page int) ([]model.PlayerStats, model.Pagination, error) {
	stats, err := c.db.GetAllPlayerStats(ctx, normalizePlayerOrder(orderBy))
	if err != nil {
		return nil, model.Pagination{}, err
	}

	pg := model.Paginate(page, len(stats), playersPerPage)
	start := (pg.CurrentPage - 1) * playersPerPage
	end := start + playersPerPage
	if start > len(stats) {
		start = len(stats)
	}
	if end > len(stats) {
		end = len(stats)
	}
	return stats[start:end], pg, nil
}

func (c *controller) GetPlayerDetails(ctx context.Context, id int32) (*model.Player, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid player id", ErrInvalidInput)
	}
	return c.db.GetPlayerDetails(ctx, id)
}

func (c *controller) CreatePlayer(ctx context.Context, ident model.Identity, p *model.Player) error {
	if !ident.Admin {
		return ErrNotAuthorized
	}
	if err := validatePlayer(p); err != nil {
		return err
	}
	return c.db.CreatePlayer(ctx, p)
}

func (c *controller) UpdatePlayer(ctx context.Context, ident model.Identity, p *model.Player) error {
	if !ident.Admin {
		return ErrNotAuthorized
	}
	if p.ID <= 0 {
		return fmt.Errorf("%w: invalid player id", ErrInvalidInput)
	}
	if err := validatePlayer(p); err != nil {
		return err
	}
	return c.db.UpdatePlayer(ctx, p)
}

func (c *controller) DeletePlayer(ctx context.Context, ident model.Identity, id int32) error {
	if !ident.Admin {
		return ErrNotAuthorized
	}
	if id <= 0 {
		return fmt.Errorf("%w: invalid player id", ErrInvalidInput)
	}
	return c.db.DeletePlayer(ctx, id)
}

func validatePlayer(p *model.Player) error {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Position = strings.TrimSpace(p.Position)
	p.RealTeam = strings.TrimSpace(p.RealTeam)

	if p.FullName == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if !p.Sport.Valid() {
		return fmt.Errorf("%w: invalid sport", ErrInvalidInput)
	}
	if p.Position == "" || p.RealTeam == "" {
		return fmt.Errorf("%w: position and real team are required", ErrInvalidInput)
	}
	if p.FantasyPoints < 0 {
		return fmt.Errorf("%w: fantasy points cannot be negative", ErrInvalidInput)
	}
	if p.AvaiStatus != model.PlayerAvailable && p.AvaiStatus != model.PlayerUnavailable {
		p.AvaiStatus = model.PlayerAvailable
	}
	return nil
}
