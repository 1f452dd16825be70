package model

import "testing"

func TestParsePerformanceTier(t *testing.T) {
	tests := []struct {
		label   string
		want    PerformanceTier
		ordinal int
	}{
		{"Low performance", PerformanceLow, 1},
		{"Moderate performance", PerformanceModerate, 2},
		{"High performance", PerformanceHigh, 3},
		{"very high performance", PerformanceVeryHigh, 4},
		{"  High performance ", PerformanceHigh, 3},
		{"Ludicrous", PerformanceUnrecognized, 0},
		{"", PerformanceUnrecognized, 0},
	}

	for _, tt := range tests {
		got := ParsePerformanceTier(tt.label)
		if got != tt.want {
			t.Errorf("ParsePerformanceTier(%q) = %v, want %v", tt.label, got, tt.want)
		}
		if got.Ordinal() != tt.ordinal {
			t.Errorf("ParsePerformanceTier(%q).Ordinal() = %d, want %d", tt.label, got.Ordinal(), tt.ordinal)
		}
	}
}

func TestParseSecurityTier(t *testing.T) {
	tests := []struct {
		label   string
		want    SecurityTier
		ordinal int
	}{
		{"Basic security features", SecurityBasic, 1},
		{"Advanced security features", SecurityAdvanced, 2},
		{"HIGH SECURITY", SecurityHigh, 3},
		{"Military grade", SecurityUnrecognized, 0},
	}

	for _, tt := range tests {
		got := ParseSecurityTier(tt.label)
		if got != tt.want {
			t.Errorf("ParseSecurityTier(%q) = %v, want %v", tt.label, got, tt.want)
		}
		if got.Ordinal() != tt.ordinal {
			t.Errorf("ParseSecurityTier(%q).Ordinal() = %d, want %d", tt.label, got.Ordinal(), tt.ordinal)
		}
	}
}

func TestTierOrdinalOutOfRange(t *testing.T) {
	if got := PerformanceTier(9).Ordinal(); got != 0 {
		t.Errorf("PerformanceTier(9).Ordinal() = %d, want 0", got)
	}
	if got := SecurityTier(-1).Ordinal(); got != 0 {
		t.Errorf("SecurityTier(-1).Ordinal() = %d, want 0", got)
	}
	if got := PerformanceUnrecognized.String(); got != "" {
		t.Errorf("PerformanceUnrecognized.String() = %q, want empty", got)
	}
}
