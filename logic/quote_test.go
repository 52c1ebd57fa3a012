package logic

import "testing"

func linesOf(items ...OrderLine) []OrderLine {
	return items
}

func TestPriceCheckout_NoDiscount(t *testing.T) {
	q := PriceCheckout(linesOf(OrderLine{Item: espresso, Quantity: 2}), "", false)

	if q.CodeStatus != CodeNone {
		t.Errorf("expected CodeNone, got %v", q.CodeStatus)
	}
	assertMoney(t, "discount", q.Discount, "0")
	assertMoney(t, "final", q.FinalTotal, "5.00")
}

func TestPriceCheckout_LowercasePercentageCode(t *testing.T) {
	q := PriceCheckout(linesOf(OrderLine{Item: espresso, Quantity: 4}), "coffee10", false)

	assertMoney(t, "subtotal", q.Subtotal, "10.00")
	assertMoney(t, "discount", q.Discount, "1.00")
	assertMoney(t, "final", q.FinalTotal, "9.00")
	if q.PointsEarned() != 9 {
		t.Errorf("expected 9 points, got %d", q.PointsEarned())
	}
}

func TestPriceCheckout_FlatCodeWithRedemption(t *testing.T) {
	q := PriceCheckout(linesOf(OrderLine{Item: espresso, Quantity: 4}), "FIRSTBREW", true)

	assertMoney(t, "code discount", q.CodeDiscount, "2.00")
	assertMoney(t, "loyalty discount", q.LoyaltyDiscount, "1.00")
	assertMoney(t, "discount", q.Discount, "3.00")
	assertMoney(t, "final", q.FinalTotal, "7.00")
}

func TestPriceCheckout_FinalNeverNegative(t *testing.T) {
	cookie := NewCatalogItem("Cookie", 100)
	q := PriceCheckout(linesOf(OrderLine{Item: cookie, Quantity: 1}), "FIRSTBREW", true)

	assertMoney(t, "discount", q.Discount, "3.00")
	assertMoney(t, "final", q.FinalTotal, "0")
	if q.PointsEarned() != 0 {
		t.Errorf("expected 0 points, got %d", q.PointsEarned())
	}
}

func TestPriceCheckout_InvalidCodeKeepsLoyaltyDiscount(t *testing.T) {
	q := PriceCheckout(linesOf(OrderLine{Item: latte, Quantity: 2}), "BOGUS", true)

	if q.CodeStatus != CodeInvalid {
		t.Errorf("expected CodeInvalid, got %v", q.CodeStatus)
	}
	assertMoney(t, "discount", q.Discount, "1.00")
	assertMoney(t, "final", q.FinalTotal, "6.00")
}

func TestPriceCheckout_FractionalPercentageIsNotRounded(t *testing.T) {
	q := PriceCheckout(linesOf(OrderLine{Item: espresso, Quantity: 1}), "COFFEE10", false)

	assertMoney(t, "discount", q.Discount, "0.25")
	assertMoney(t, "final", q.FinalTotal, "2.25")

	odd := NewCatalogItem("Shot", 255)
	q = PriceCheckout(linesOf(OrderLine{Item: odd, Quantity: 1}), "COFFEE10", false)
	assertMoney(t, "discount", q.Discount, "0.255")
	assertMoney(t, "final", q.FinalTotal, "2.295")
	if q.PointsEarned() != 2 {
		t.Errorf("expected 2 points, got %d", q.PointsEarned())
	}
}
