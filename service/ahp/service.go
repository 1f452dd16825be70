package ahp

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/elC0mpa/instance-advisor/model"
	"gonum.org/v1/gonum/mat"
)

const (
	reciprocalTolerance = 1e-6
	imagTolerance       = 1e-9
	signTolerance       = 1e-12
)

// Saaty's random consistency index by matrix order
var randomIndex = []float64{0, 0, 0, 0.58, 0.90, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49}

// NewService scores over the given criterion order. A nil slice means
// model.AHPCriteria.
func NewService(criteria []model.Criterion) *service {
	if criteria == nil {
		criteria = model.AHPCriteria
	}
	return &service{criteria: criteria}
}

func (s *service) Criteria() []model.Criterion {
	return s.criteria
}

// Weights derives criterion weights from a positive reciprocal pairwise
// comparison matrix. It takes the eigenvector of the eigenvalue with the
// largest real part and scales it to sum to 1.
func (s *service) Weights(matrix [][]float64) (*model.AHPWeighting, error) {
	n, err := validate(matrix)
	if err != nil {
		return nil, err
	}

	data := make([]float64, 0, n*n)
	for _, row := range matrix {
		data = append(data, row...)
	}
	a := mat.NewDense(n, n, data)

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		return nil, &model.MalformedMatrixError{Reason: "eigen-decomposition did not converge"}
	}

	values := eig.Values(nil)
	dominant := 0
	for i, v := range values {
		if real(v) > real(values[dominant]) {
			dominant = i
		}
	}
	lambda := values[dominant]
	if math.Abs(imag(lambda)) > imagTolerance {
		return nil, &model.MalformedMatrixError{Reason: fmt.Sprintf("dominant eigenvalue %v is complex", lambda)}
	}

	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	components := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		c := vectors.At(i, dominant)
		if math.Abs(imag(c)) > imagTolerance*math.Max(1, cmplx.Abs(c)) {
			return nil, &model.MalformedMatrixError{Reason: "dominant eigenvector is complex"}
		}
		components[i] = real(c)
		sum += components[i]
	}
	if math.Abs(sum) < signTolerance {
		return nil, &model.MalformedMatrixError{Reason: "dominant eigenvector sums to zero"}
	}

	weights := make([]float64, n)
	for i, c := range components {
		weights[i] = c / sum
		if weights[i] < -signTolerance {
			return nil, &model.MalformedMatrixError{Reason: "dominant eigenvector has mixed signs"}
		}
		if weights[i] < 0 {
			weights[i] = 0
		}
	}

	weighting := &model.AHPWeighting{
		Weights:   weights,
		LambdaMax: real(lambda),
	}
	if n > 1 {
		weighting.ConsistencyIndex = (weighting.LambdaMax - float64(n)) / float64(n-1)
	}
	if n < len(randomIndex) && randomIndex[n] > 0 {
		weighting.ConsistencyRatio = weighting.ConsistencyIndex / randomIndex[n]
	}

	return weighting, nil
}

// Score combines the normalized criteria with weights in criterion order.
// Scores keep the input order.
func (s *service) Score(offers []model.NormalizedOffer, weights []float64) ([]model.ScoredOffer, error) {
	if len(weights) != len(s.criteria) {
		return nil, &model.MalformedMatrixError{
			Reason: fmt.Sprintf("got %d weights for %d criteria", len(weights), len(s.criteria)),
		}
	}

	scored := make([]model.ScoredOffer, len(offers))
	for i, offer := range offers {
		var score float64
		for j, c := range s.criteria {
			score += weights[j] * offer.Value(c)
		}
		scored[i] = model.ScoredOffer{
			NormalizedOffer: offer,
			Score:           score,
		}
	}

	return scored, nil
}

func validate(matrix [][]float64) (int, error) {
	n := len(matrix)
	if n == 0 {
		return 0, &model.MalformedMatrixError{Reason: "matrix is empty"}
	}
	for i, row := range matrix {
		if len(row) != n {
			return 0, &model.MalformedMatrixError{Reason: fmt.Sprintf("row %d has %d columns, want %d", i, len(row), n)}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := matrix[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return 0, &model.MalformedMatrixError{Reason: fmt.Sprintf("entry [%d][%d]=%v is not positive", i, j, v)}
			}
			if i == j && math.Abs(v-1) > reciprocalTolerance {
				return 0, &model.MalformedMatrixError{Reason: fmt.Sprintf("diagonal entry [%d][%d]=%v is not 1", i, j, v)}
			}
			if j > i && math.Abs(v*matrix[j][i]-1) > reciprocalTolerance {
				return 0, &model.MalformedMatrixError{Reason: fmt.Sprintf("entries [%d][%d] and [%d][%d] are not reciprocal", i, j, j, i)}
			}
		}
	}

	return n, nil
}
