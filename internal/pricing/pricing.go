package pricing

import (
	"math"
	"strings"
	"time"

	"timebank/internal/domain"
)

// Slot is a bookable time window.
type Slot string

const (
	SlotAM        Slot = "AM"        // 10:00-14:00
	SlotPM        Slot = "PM"        // 15:00-19:00
	SlotOvernight Slot = "OVERNIGHT" // 15:00-11:00 next day
)

var Slots = []Slot{SlotAM, SlotPM, SlotOvernight}

// ParseSlot accepts a slot name in any case.
func ParseSlot(s string) (Slot, bool) {
	switch Slot(strings.ToUpper(strings.TrimSpace(s))) {
	case SlotAM:
		return SlotAM, true
	case SlotPM:
		return SlotPM, true
	case SlotOvernight:
		return SlotOvernight, true
	}
	return "", false
}

const (
	MembershipNone  = "NONE"
	MembershipRoyal = "M_ROYAL"
	MembershipSmart = "M_SMART"
)

type Membership struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceMonthly int    `json:"price_monthly"`
	Benefits     string `json:"benefits"`
}

var memberships = []Membership{
	{ID: MembershipRoyal, Name: "리조트 로얄", PriceMonthly: 100000, Benefits: "연 60박 무료, 성수기 우선 예약"},
	{ID: MembershipSmart, Name: "투지아 스마트", PriceMonthly: 20000, Benefits: "평일 유휴시간(4h) 무료, 주말 3만원 정액"},
}

// Memberships returns the membership lineup.
func Memberships() []Membership {
	out := make([]Membership, len(memberships))
	copy(out, memberships)
	return out
}

// KnownMembership reports whether id is NONE or a membership in the lineup.
func KnownMembership(id string) bool {
	if id == MembershipNone {
		return true
	}
	for _, m := range memberships {
		if m.ID == id {
			return true
		}
	}
	return false
}

const (
	HalfDayPrice   = 50000 // AM or PM, non-members
	SmartFlatPrice = 30000 // M_SMART weekend or overnight
)

// IsWeekend reports whether d falls on Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Quote prices one booking of l. Non-members pay the nightly price for an
// overnight stay and HalfDayPrice for a 4-hour slot. M_ROYAL stays are free.
// M_SMART is free for weekday 4-hour slots and SmartFlatPrice otherwise.
// An unrecognised membership pays the nightly price.
func Quote(l domain.Listing, membership string, slot Slot, weekend bool) int {
	switch membership {
	case "", MembershipNone:
		if slot == SlotOvernight {
			return l.Price
		}
		return HalfDayPrice
	case MembershipRoyal:
		return 0
	case MembershipSmart:
		if weekend || slot == SlotOvernight {
			return SmartFlatPrice
		}
		return 0
	}
	return l.Price
}

const (
	AnnualInterestRate = 0.10
	OperatingCostRatio = 0.30
)

// ROIReport is a monthly breakdown for one caravan site financed by a loan.
type ROIReport struct {
	Revenue       int     `json:"revenue"`
	OperatingCost int     `json:"operating_cost"`
	Interest      int     `json:"interest"`
	NetProfit     int     `json:"net_profit"`
	ROIPercent    float64 `json:"roi_percent"`
}

// ROI estimates the annual return on loan given monthly revenue. Money
// figures are truncated to whole won and the percentage is rounded to one
// decimal. A zero loan yields a zero percentage.
func ROI(loan, monthlyRevenue int) ROIReport {
	interest := float64(loan) * AnnualInterestRate / 12
	opCost := float64(monthlyRevenue) * OperatingCostRatio
	net := float64(monthlyRevenue) - opCost - interest

	var pct float64
	if loan > 0 {
		pct = math.Round(net*12/float64(loan)*100*10) / 10
	}
	return ROIReport{
		Revenue:       monthlyRevenue,
		OperatingCost: int(opCost),
		Interest:      int(interest),
		NetProfit:     int(net),
		ROIPercent:    pct,
	}
}
