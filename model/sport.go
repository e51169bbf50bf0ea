package model

import "strings"

type Sport string

const (
	SportUnknown    Sport = ""
	SportFootball   Sport = "FTB"
	SportBasketball Sport = "BB"
	SportSoftball   Sport = "SB"
)

// DefaultSport is used whenever a request does not name a valid sport.
const DefaultSport = SportFootball

func ParseSport(s string) Sport {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FTB":
		return SportFootball
	case "BB":
		return SportBasketball
	case "SB":
		return SportSoftball
	default:
		return SportUnknown
	}
}

func (s Sport) String() string {
	return string(s)
}

func (s Sport) Valid() bool {
	return s == SportFootball || s == SportBasketball || s == SportSoftball
}

// Sports lists every supported sport, in display order.
func Sports() []Sport {
	return []Sport{SportFootball, SportBasketball, SportSoftball}
}
