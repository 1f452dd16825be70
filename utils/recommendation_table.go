package utils

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/instance-advisor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var algorithmTitles = map[model.Algorithm]string{
	model.AlgorithmWSM:    "WSM (Weighted Sum Model)",
	model.AlgorithmAHP:    "AHP (Analytic Hierarchy Process)",
	model.AlgorithmTOPSIS: "TOPSIS",
}

func DrawRecommendationTable(result model.AlgorithmResult, top int) {
	fmt.Println(RenderRecommendationTable(result, top))
}

func DrawNoResults(req model.Request) {
	fmt.Printf("\n %s\n", text.FgHiYellow.Sprint("No data available for the given inputs."))
	fmt.Printf(" vCPUs: %d, Memory: %g GB, Region: %s\n", req.CPU, req.Memory, req.Region)
}

// RenderRecommendationTable renders one algorithm's ranking. AHP adds the
// performance column and TOPSIS the security column.
func RenderRecommendationTable(result model.AlgorithmResult, top int) string {
	title := algorithmTitles[result.Algorithm]

	if result.Err != nil {
		return fmt.Sprintf("\n %s %s: %s\n",
			text.FgHiRed.Sprint("⚠"),
			text.FgHiYellow.Sprint(title),
			text.FgRed.Sprint(result.Err.Error()))
	}

	header := table.Row{"#", "Provider", "Instance Type", "Region", "vCPUs", "Memory (GB)", "Price (USD/hour)"}
	switch result.Algorithm {
	case model.AlgorithmAHP:
		header = append(header, "Performance")
	case model.AlgorithmTOPSIS:
		header = append(header, "Security")
	}
	header = append(header, "Score")

	tw := table.NewWriter()
	tw.SetTitle(title)
	tw.AppendHeader(header)
	tw.SetStyle(table.StyleRounded)

	offers := result.Offers
	if top > 0 && top < len(offers) {
		offers = offers[:top]
	}

	for i, offer := range offers {
		row := table.Row{
			i + 1,
			text.FgHiCyan.Sprint(strings.ToUpper(string(offer.Provider))),
			offer.InstanceType,
			offer.Region,
			offer.VCPUs,
			fmt.Sprintf("%g", offer.MemoryGB),
			formatPrice(offer.PriceUSDPerHour),
		}
		switch result.Algorithm {
		case model.AlgorithmAHP:
			row = append(row, tierLabel(offer.Performance.String()))
		case model.AlgorithmTOPSIS:
			row = append(row, tierLabel(offer.Security.String()))
		}

		score := fmt.Sprintf("%.4f", offer.Score)
		if i == 0 {
			score = text.FgHiGreen.Sprint(score)
		}
		row = append(row, score)

		tw.AppendRow(row)
	}

	if len(result.Offers) == 0 {
		tw.AppendRow(table.Row{"", text.FgYellow.Sprint("No matching offers")})
	}

	if result.Weighting != nil {
		tw.AppendFooter(table.Row{"", "Weights", formatWeights(result.Weighting.Weights),
			"", "", "CR", fmt.Sprintf("%.3f", result.Weighting.ConsistencyRatio)})
	}

	columnConfigs := []table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: len(header), Align: text.AlignRight},
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func formatPrice(price float64) string {
	if price == 0 {
		return text.FgYellow.Sprint("n/a")
	}
	return fmt.Sprintf("%.4f", price)
}

func tierLabel(label string) string {
	if label == "" {
		return text.FgYellow.Sprint("Unknown")
	}
	return label
}

func formatWeights(weights []float64) string {
	parts := make([]string, 0, len(weights))
	for i, w := range weights {
		name := fmt.Sprintf("w%d", i+1)
		if i < len(model.AHPCriteria) && len(weights) == len(model.AHPCriteria) {
			name = string(model.AHPCriteria[i])
		}
		parts = append(parts, fmt.Sprintf("%s=%.3f", name, w))
	}
	return strings.Join(parts, " ")
}
