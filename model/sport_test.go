package model

import "testing"

func TestParseSport(t *testing.T) {
	tests := []struct {
		in   string
		want Sport
	}{
		{in: "FTB", want: SportFootball},
		{in: "ftb", want: SportFootball},
		{in: " BB ", want: SportBasketball},
		{in: "SB", want: SportSoftball},
		{in: "hockey", want: SportUnknown},
		{in: "", want: SportUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseSport(tc.in); got != tc.want {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestParseDraftOrder(t *testing.T) {
	tests := []struct {
		in     string
		want   DraftOrder
		wantOK bool
	}{
		{in: "R", want: DraftOrderRound, wantOK: true},
		{in: "s", want: DraftOrderSnake, wantOK: true},
		{in: "X", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseDraftOrder(tc.in)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("expected: ('%v', %v), got: ('%v', %v)", tc.want, tc.wantOK, got, ok)
			}
		})
	}
}

func TestParseWaiverStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   WaiverStatus
		wantOK bool
	}{
		{in: "A", want: WaiverApproved, wantOK: true},
		{in: "d", want: WaiverDenied, wantOK: true},
		{in: "P", wantOK: false},
		{in: "approved", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseWaiverStatus(tc.in)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("expected: ('%v', %v), got: ('%v', %v)", tc.want, tc.wantOK, got, ok)
			}
		})
	}
}
