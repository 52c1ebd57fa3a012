package logic

import "github.com/shopspring/decimal"

// Loyalty rates are fixed business constants.
const (
	// PointsPerRedemption is the cost of one redemption.
	PointsPerRedemption int64 = 10
)

// RedemptionValue is the discount granted by one redemption.
var RedemptionValue = decimal.New(100, -2)

// LoyaltyAccount holds the running point balance for a session.
// The balance never goes negative.
type LoyaltyAccount struct {
	points int64
}

// NewLoyaltyAccount returns an account with zero points.
func NewLoyaltyAccount() *LoyaltyAccount {
	return &LoyaltyAccount{}
}

// Points returns the current balance.
func (a *LoyaltyAccount) Points() int64 {
	return a.points
}

// CanRedeem reports whether the balance covers one redemption.
func (a *LoyaltyAccount) CanRedeem() bool {
	return a.points >= PointsPerRedemption
}

// EarnPoints credits one point per whole currency unit spent, truncating
// toward zero. It returns the points added; amounts below one add nothing.
func (a *LoyaltyAccount) EarnPoints(amountSpent decimal.Decimal) int64 {
	earned := PointsFor(amountSpent)
	a.points += earned
	return earned
}

// RedeemPoints spends PointsPerRedemption for RedemptionValue off. With an
// insufficient balance it changes nothing and returns zero.
func (a *LoyaltyAccount) RedeemPoints() decimal.Decimal {
	if !a.CanRedeem() {
		return decimal.Zero
	}
	a.points -= PointsPerRedemption
	return RedemptionValue
}

// PointsFor returns the points a spend would earn.
func PointsFor(amountSpent decimal.Decimal) int64 {
	earned := amountSpent.IntPart()
	if earned < 0 {
		return 0
	}
	return earned
}
