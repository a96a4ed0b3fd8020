package evm

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{USD(12345.67), "$12,345.67"},
		{USD(0), "$0.00"},
		{USD(-950.25), "-$950.25"},
		{M(1000, "EUR"), "€1.000,00"}, // go-money formats EUR with European separators
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String(%s %s) = %q, want %q", tc.in.Plain(), tc.in.Currency(), got, tc.want)
		}
	}
}

func TestMoney_Plain(t *testing.T) {
	if got := USD(12345.67).Plain(); got != "12345.67" {
		t.Errorf("Plain() = %q, want 12345.67", got)
	}
	if got := USD(0).Plain(); got != "0" {
		t.Errorf("Plain() = %q, want 0", got)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a, b := USD(100.5), USD(0.5)
	if got := a.Add(b); !got.Equal(USD(101)) {
		t.Errorf("Add = %s", got.Plain())
	}
	if got := a.Sub(b); !got.Equal(USD(100)) {
		t.Errorf("Sub = %s", got.Plain())
	}
	if got := b.Neg(); !got.Equal(USD(-0.5)) {
		t.Errorf("Neg = %s", got.Plain())
	}
}

// the "" currency is weak: it adopts the other operand's currency.
func TestMoney_WeakCurrency(t *testing.T) {
	got := NO(1).Add(USD(1))
	if got.Currency() != "USD" {
		t.Errorf("currency = %q, want USD", got.Currency())
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "JPY"} {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("ValidateCurrency(%q) = %v", code, err)
		}
	}
	if err := ValidateCurrency("WAT"); err == nil {
		t.Error("ValidateCurrency accepted an unknown code")
	}
}
