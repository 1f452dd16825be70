package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/instance-advisor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#1a9850"
	ColorRank2 = "#66c2a5"
	ColorRank3 = "#abdda4"
	ColorRank4 = "#fee08b"
	ColorRank5 = "#f46d43"
	ColorRank6 = "#d73027"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawScoreChart draws the best offers of a ranking as bars, best first
func DrawScoreChart(result model.AlgorithmResult, top int) {
	offers := result.Offers
	if len(offers) == 0 {
		return
	}
	if top > 0 && top < len(offers) {
		offers = offers[:top]
	}

	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" 📊  %s SCORES", algorithmTitles[result.Algorithm]))

	bc := barchart.New(130, 20)

	indexedColors := assignRankedColors(offers)

	for idx, offer := range offers {
		data := barchart.BarData{
			Label: getBarLabel(offer),
			Values: []barchart.BarValue{
				{
					Value: offer.Score,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		}

		bc.Push(data)
	}

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func getBarLabel(offer model.ScoredOffer) string {
	return fmt.Sprintf("%s %s: %.3f", offer.Provider, offer.InstanceType, offer.Score)
}

// assignRankedColors colors the highest score with the first palette entry.
// Offers beyond the palette get the last color.
func assignRankedColors(offers []model.ScoredOffer) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type scoreWithIndex struct {
		index int
		value float64
	}

	scoresToSort := make([]scoreWithIndex, len(offers))
	for i, offer := range offers {
		scoresToSort[i] = scoreWithIndex{
			index: i,
			value: offer.Score,
		}
	}

	sort.SliceStable(scoresToSort, func(i, j int) bool {
		return scoresToSort[i].value > scoresToSort[j].value
	})

	resultColors := make([]string, len(offers))
	for rank, sorted := range scoresToSort {
		color := palette[len(palette)-1]
		if rank < len(palette) {
			color = palette[rank]
		}
		resultColors[sorted.index] = color
	}

	return resultColors
}
