package model

import (
	"fmt"
	"math"
	"strings"
)

// Criterion names one normalized offer attribute
type Criterion string

const (
	CriterionVCPU        Criterion = "vcpu"
	CriterionMemory      Criterion = "memory"
	CriterionPrice       Criterion = "price"
	CriterionPerformance Criterion = "performance"
	CriterionSecurity    Criterion = "security"
)

// AllCriteria lists the criteria a weight map may reference
var AllCriteria = []Criterion{
	CriterionVCPU,
	CriterionMemory,
	CriterionPrice,
	CriterionPerformance,
	CriterionSecurity,
}

// ParseCriterion accepts criterion names case-insensitively
func ParseCriterion(name string) (Criterion, error) {
	c := Criterion(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllCriteria {
		if c == known {
			return c, nil
		}
	}
	return "", &ValidationError{Field: "weights", Reason: fmt.Sprintf("unknown criterion %q", name)}
}

// Weights maps criteria to their weight. Missing criteria weigh 0.
type Weights map[Criterion]float64

// DefaultWSMWeights ranks purely on inverse price
func DefaultWSMWeights() Weights {
	return Weights{CriterionPrice: 1}
}

// Validate rejects negative or non-finite weights and unknown criteria
func (w Weights) Validate() error {
	for c, v := range w {
		if parsed, err := ParseCriterion(string(c)); err != nil || parsed != c {
			return &ValidationError{Field: "weights", Reason: fmt.Sprintf("unknown criterion %q", c)}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Field: "weights", Reason: fmt.Sprintf("weight for %s is not finite", c)}
		}
		if v < 0 {
			return &ValidationError{Field: "weights", Reason: fmt.Sprintf("negative weight for %s: %f", c, v)}
		}
	}
	return nil
}

// WeightedCriterion pairs a criterion with a fixed weight
type WeightedCriterion struct {
	Criterion Criterion
	Weight    float64
}

// AHPCriteria is the criterion order of the AHP comparison matrix
var AHPCriteria = []Criterion{CriterionPerformance, CriterionMemory, CriterionPrice}

// DefaultComparisonMatrix rates performance and price equally, both twice as
// important as memory.
func DefaultComparisonMatrix() [][]float64 {
	return [][]float64{
		{1, 2, 1},
		{0.5, 1, 0.5},
		{1, 2, 1},
	}
}

// DefaultTOPSISCriteria is the fixed TOPSIS configuration
func DefaultTOPSISCriteria() []WeightedCriterion {
	return []WeightedCriterion{
		{Criterion: CriterionSecurity, Weight: 0.4},
		{Criterion: CriterionMemory, Weight: 0.4},
		{Criterion: CriterionPrice, Weight: 0.2},
	}
}
