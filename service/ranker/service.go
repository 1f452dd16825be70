package ranker

import (
	"sort"

	"github.com/elC0mpa/instance-advisor/model"
)

func NewService() *service {
	return &service{}
}

// Rank returns a copy of offers sorted by descending score. Equal scores keep
// their input order.
func (s *service) Rank(offers []model.ScoredOffer) []model.ScoredOffer {
	ranked := make([]model.ScoredOffer, len(offers))
	copy(ranked, offers)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Top returns the n best offers, or all of them when n <= 0
func (s *service) Top(offers []model.ScoredOffer, n int) []model.ScoredOffer {
	ranked := s.Rank(offers)
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
