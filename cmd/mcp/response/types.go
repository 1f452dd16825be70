package response

// Request echoes the validated capacity query
type Request struct {
	CPU    int     `json:"cpu"`
	Memory float64 `json:"memory_gb"`
	Region string  `json:"region"`
}

// ScoredOffer represents one ranked offer
type ScoredOffer struct {
	Rank            int     `json:"rank"`
	Provider        string  `json:"provider"`
	InstanceType    string  `json:"instance_type"`
	Region          string  `json:"region"`
	VCPUs           int     `json:"vcpus"`
	MemoryGB        float64 `json:"memory_gb"`
	PriceUSDPerHour float64 `json:"price_usd_per_hour"`
	Performance     string  `json:"performance,omitempty"`
	Security        string  `json:"security,omitempty"`
	Score           float64 `json:"score"`
}

// AHPWeights reports the derived criterion weights and their consistency
type AHPWeights struct {
	Weights          map[string]float64 `json:"weights"`
	LambdaMax        float64            `json:"lambda_max"`
	ConsistencyIndex float64            `json:"consistency_index"`
	ConsistencyRatio float64            `json:"consistency_ratio"`
}

// Recommendation represents one algorithm's ranking
type Recommendation struct {
	Algorithm string        `json:"algorithm"`
	Offers    []ScoredOffer `json:"offers"`
	Weights   *AHPWeights   `json:"ahp_weights,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// AllRecommendations represents the rankings of every algorithm for a request
type AllRecommendations struct {
	Request         Request          `json:"request"`
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message,omitempty"`
}
