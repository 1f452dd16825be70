package model

// Algorithm names a decision model
type Algorithm string

const (
	AlgorithmWSM    Algorithm = "wsm"
	AlgorithmAHP    Algorithm = "ahp"
	AlgorithmTOPSIS Algorithm = "topsis"
)

// AHPWeighting is the outcome of deriving weights from a comparison matrix
type AHPWeighting struct {
	Weights          []float64
	LambdaMax        float64
	ConsistencyIndex float64
	// ConsistencyRatio is 0 for matrices of order 2 or less
	ConsistencyRatio float64
}

// AlgorithmResult holds one algorithm's ranking or the error that stopped it
type AlgorithmResult struct {
	Algorithm Algorithm
	Offers    []ScoredOffer
	Weighting *AHPWeighting
	Err       error
}

// Recommendations holds the independent results of all three algorithms
type Recommendations struct {
	Request Request
	WSM     AlgorithmResult
	AHP     AlgorithmResult
	TOPSIS  AlgorithmResult
}

// Empty reports whether no algorithm produced any offer
func (r Recommendations) Empty() bool {
	return len(r.WSM.Offers) == 0 && len(r.AHP.Offers) == 0 && len(r.TOPSIS.Offers) == 0
}

// Results returns the three results in display order
func (r Recommendations) Results() []AlgorithmResult {
	return []AlgorithmResult{r.WSM, r.AHP, r.TOPSIS}
}
