package model

import "strings"

// PerformanceTier is the qualitative performance class of an offer
type PerformanceTier int

const (
	PerformanceUnrecognized PerformanceTier = iota
	PerformanceLow
	PerformanceModerate
	PerformanceHigh
	PerformanceVeryHigh
)

var performanceLabels = map[PerformanceTier]string{
	PerformanceLow:      "Low performance",
	PerformanceModerate: "Moderate performance",
	PerformanceHigh:     "High performance",
	PerformanceVeryHigh: "Very high performance",
}

// ParsePerformanceTier maps a catalog label to a tier. Unknown labels map to
// PerformanceUnrecognized.
func ParsePerformanceTier(label string) PerformanceTier {
	label = strings.TrimSpace(label)
	for tier, l := range performanceLabels {
		if strings.EqualFold(l, label) {
			return tier
		}
	}
	return PerformanceUnrecognized
}

// Ordinal returns the score used by the normalizer
func (t PerformanceTier) Ordinal() int {
	if _, ok := performanceLabels[t]; !ok {
		return 0
	}
	return int(t)
}

func (t PerformanceTier) String() string {
	return performanceLabels[t]
}

// SecurityTier is the qualitative security class of an offer
type SecurityTier int

const (
	SecurityUnrecognized SecurityTier = iota
	SecurityBasic
	SecurityAdvanced
	SecurityHigh
)

var securityLabels = map[SecurityTier]string{
	SecurityBasic:    "Basic security features",
	SecurityAdvanced: "Advanced security features",
	SecurityHigh:     "High security",
}

// ParseSecurityTier maps a catalog label to a tier
func ParseSecurityTier(label string) SecurityTier {
	label = strings.TrimSpace(label)
	for tier, l := range securityLabels {
		if strings.EqualFold(l, label) {
			return tier
		}
	}
	return SecurityUnrecognized
}

// Ordinal returns the score used by the normalizer
func (t SecurityTier) Ordinal() int {
	if _, ok := securityLabels[t]; !ok {
		return 0
	}
	return int(t)
}

func (t SecurityTier) String() string {
	return securityLabels[t]
}
