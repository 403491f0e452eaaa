package moneymind

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		value    string
		currency string
		want     string
		signed   string
	}{
		{"1234.5", "USD", "$1,234.50", "+$1,234.50"},
		{"-1234.5", "usd", "-$1,234.50", "-$1,234.50"},
		{"0", "USD", "$0.00", "-"},
		{"1234.567", "INR", "₹1,234.57", "+₹1,234.57"},
		{"1234.5", "JPY", "¥1,235", "+¥1,235"},
	}
	for _, tc := range testCases {
		t.Run(tc.value+tc.currency, func(t *testing.T) {
			m := M(dec(tc.value), tc.currency)
			if got := m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if got := m.SignedString(); got != tc.signed {
				t.Errorf("SignedString() = %q, want %q", got, tc.signed)
			}
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	m := M(dec("10"), "EUR").Add(dec("-15.5"))
	if !m.IsNegative() || !m.Abs().Value().Equal(dec("5.5")) {
		t.Errorf("Add() = %v, want -5.5", m.Value())
	}
	if !m.Neg().Equal(M(dec("5.5"), "EUR")) {
		t.Errorf("Neg() = %v, want 5.5 EUR", m.Neg().Value())
	}
	if m.Equal(M(dec("-5.5"), "USD")) {
		t.Errorf("Equal() ignores the currency")
	}
}

func TestKnownCurrency(t *testing.T) {
	for code, want := range map[string]bool{"INR": true, "usd": true, "EUR": true, "XXQ": false, "": false} {
		if got := KnownCurrency(code); got != want {
			t.Errorf("KnownCurrency(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestD(t *testing.T) {
	if got, err := D(" 12.50 "); err != nil || !got.Equal(dec("12.5")) {
		t.Errorf("D(12.50) = %v, %v", got, err)
	}
	if _, err := D("twelve"); err == nil {
		t.Errorf("D(twelve) error = nil, want an error")
	}
}

func TestParseKinds(t *testing.T) {
	if got, err := ParseTxType(" Income "); err != nil || got != Income {
		t.Errorf("ParseTxType(Income) = %q, %v", got, err)
	}
	if _, err := ParseTxType("transfer"); err == nil {
		t.Errorf("ParseTxType(transfer) error = nil, want an error")
	}
	if got, err := ParseMethod(""); err != nil || got != Online {
		t.Errorf("ParseMethod(\"\") = %q, %v, want online", got, err)
	}
	if got, err := ParseMethod("CASH"); err != nil || got != Cash {
		t.Errorf("ParseMethod(CASH) = %q, %v", got, err)
	}
	if _, err := ParseMethod("cheque"); err == nil {
		t.Errorf("ParseMethod(cheque) error = nil, want an error")
	}
}
