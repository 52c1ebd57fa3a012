package logic

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoyalty_StartsAtZero(t *testing.T) {
	account := NewLoyaltyAccount()
	if account.Points() != 0 {
		t.Errorf("expected 0 points, got %d", account.Points())
	}
	if account.CanRedeem() {
		t.Error("expected new account to be ineligible")
	}
}

func TestLoyalty_EarnTruncates(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"4.99", 4},
		{"5.00", 5},
		{"7.8", 7},
		{"0.99", 0},
		{"0", 0},
		{"-3.5", 0},
	}
	for _, tt := range tests {
		account := NewLoyaltyAccount()
		earned := account.EarnPoints(decimal.RequireFromString(tt.amount))
		if earned != tt.want {
			t.Errorf("EarnPoints(%s) returned %d, want %d", tt.amount, earned, tt.want)
		}
		if account.Points() != tt.want {
			t.Errorf("EarnPoints(%s) balance %d, want %d", tt.amount, account.Points(), tt.want)
		}
	}
}

func TestLoyalty_RedeemBelowThresholdIsNoOp(t *testing.T) {
	account := NewLoyaltyAccount()
	account.EarnPoints(decimal.NewFromInt(9))

	value := account.RedeemPoints()

	if !value.IsZero() {
		t.Errorf("expected 0 discount, got %s", value)
	}
	if account.Points() != 9 {
		t.Errorf("expected points unchanged at 9, got %d", account.Points())
	}
}

func TestLoyalty_RedeemAtThreshold(t *testing.T) {
	account := NewLoyaltyAccount()
	account.EarnPoints(decimal.NewFromInt(15))

	value := account.RedeemPoints()

	if !value.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected 1.00 discount, got %s", value)
	}
	if account.Points() != 5 {
		t.Errorf("expected 5 points, got %d", account.Points())
	}
}

func TestLoyalty_PointsNeverNegative(t *testing.T) {
	account := NewLoyaltyAccount()
	amounts := []string{"12.40", "-50", "3.99", "0.5", "-0.1", "10"}
	for _, a := range amounts {
		account.EarnPoints(decimal.RequireFromString(a))
		for i := 0; i < 3; i++ {
			account.RedeemPoints()
			if account.Points() < 0 {
				t.Fatalf("balance went negative: %d", account.Points())
			}
		}
	}
}
