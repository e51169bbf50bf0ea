package controller

import (
	"context"
	"fmt"

	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func (c *controller) GetWaiverPlayers(ctx context.Context, sortOrder string) ([]model.WaiverPlayer, error) {
	return c.db.GetWaiverPlayers(ctx, normalizeWaiverOrder(sortOrder))
}

// GetWaiverDetails is open to any visitor. Only the decision itself is
// restricted to admins.
func (c *controller) GetWaiverDetails(ctx context.Context, waiverID int32) (*model.Waiver, error) {
	if waiverID <= 0 {
		return nil, fmt.Errorf("%w: invalid waiver id", ErrInvalidInput)
	}
	return c.db.GetWaiverDetails(ctx, waiverID)
}

// UpdateWaiverStatus checks authorization before touching the database,
// so an unauthorized request leaves no trace in it.
func (c *controller) UpdateWaiverStatus(ctx context.Context, ident model.Identity, waiverID int32, status model.WaiverStatus) (string, error) {
	if !ident.Admin {
		return "", ErrNotAuthorized
	}
	if waiverID <= 0 {
		return "", fmt.Errorf("%w: invalid waiver id", ErrInvalidInput)
	}
	if !status.Terminal() {
		return "", fmt.Errorf("%w: invalid waiver status", ErrInvalidInput)
	}
	return c.db.UpdateWaiverStatus(ctx, waiverID, status)
}
