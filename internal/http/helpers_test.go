package http

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "₹0.00"},
		{"small", 50, "₹0.50"},
		{"units", 12345, "₹123.45"},
		{"thousands", 1234550, "₹12,345.50"},
		{"millions", 123456789, "₹1,234,567.89"},
		{"negative", -150000, "-₹1,500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAmount("₹", tt.cents); got != tt.want {
				t.Errorf("formatAmount(%d) = %q, want %q", tt.cents, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(28.456); got != "28.5%" {
		t.Errorf("formatPercent = %q, want %q", got, "28.5%")
	}
	if got := formatPercent(0); got != "0.0%" {
		t.Errorf("formatPercent = %q, want %q", got, "0.0%")
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-08-26")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != 8 || d.Day() != 26 {
		t.Errorf("parsed date = %d-%d-%d", d.Year(), d.Month(), d.Day())
	}

	if _, err := parseDate("26/08/2026"); err == nil {
		t.Error("expected error for wrong format")
	}
	if _, err := parseDate("2026-02-30"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := sanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("sanitizeInput = %q", got)
	}
	if got := sanitizeInput("line1\nline2"); got != "line1\nline2" {
		t.Errorf("newlines should survive, got %q", got)
	}
}
