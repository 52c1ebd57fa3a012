package logic

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLookupDiscount(t *testing.T) {
	tests := []struct {
		input  string
		status CodeStatus
		code   string
	}{
		{"COFFEE10", CodeApplied, "COFFEE10"},
		{"coffee10", CodeApplied, "COFFEE10"},
		{"  FirstBrew\t", CodeApplied, "FIRSTBREW"},
		{"", CodeNone, ""},
		{"   ", CodeNone, ""},
		{"FREECOFFEE", CodeInvalid, "FREECOFFEE"},
		{"COFFEE 10", CodeInvalid, "COFFEE 10"},
	}
	for _, tt := range tests {
		rule, status := LookupDiscount(tt.input)
		if status != tt.status {
			t.Errorf("LookupDiscount(%q) status = %v, want %v", tt.input, status, tt.status)
		}
		if rule.Code != tt.code {
			t.Errorf("LookupDiscount(%q) code = %q, want %q", tt.input, rule.Code, tt.code)
		}
	}
}

func TestDiscountRule_Amount(t *testing.T) {
	subtotal := decimal.RequireFromString("10.00")

	pct, _ := LookupDiscount("COFFEE10")
	assertMoney(t, "percentage discount", pct.Amount(subtotal), "1.00")

	flat, _ := LookupDiscount("FIRSTBREW")
	assertMoney(t, "flat discount", flat.Amount(subtotal), "2.00")
}

func TestCodeStatus_String(t *testing.T) {
	if CodeInvalid.String() != "invalid" {
		t.Errorf("unexpected label %q", CodeInvalid.String())
	}
	if CodeStatus(42).String() != "unknown" {
		t.Errorf("unexpected label %q", CodeStatus(42).String())
	}
}
