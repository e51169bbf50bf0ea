package model

import (
	"strings"
	"time"
)

type WaiverStatus string

const (
	WaiverPending  WaiverStatus = "P"
	WaiverApproved WaiverStatus = "A"
	WaiverDenied   WaiverStatus = "D"
)

// ParseWaiverStatus accepts only the two terminal statuses an admin can
// apply. Pending is never a valid target.
func ParseWaiverStatus(s string) (WaiverStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return WaiverApproved, true
	case "D":
		return WaiverDenied, true
	default:
		return "", false
	}
}

func (s WaiverStatus) Terminal() bool {
	return s == WaiverApproved || s == WaiverDenied
}

type Waiver struct {
	ID          int32
	PlayerID    int32
	PlayerName  string
	Sport       Sport
	TeamID      int32
	TeamName    string
	Status      WaiverStatus
	RequestDate time.Time
}

// WaiverPlayer is one row of the waiver pool listing.
type WaiverPlayer struct {
	WaiverID      int32
	PlayerID      int32
	FullName      string
	Sport         Sport
	Position      string
	FantasyPoints float64
	Status        WaiverStatus
}
