package metrics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

type SeriesEntry struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

type ChartSeries struct {
	Entries []SeriesEntry `json:"entries"`
	Total   float64       `json:"total"`
	Empty   bool          `json:"empty"`
}

func Round2(x float64) float64 {
	if isNotFinite(x) {
		return 0
	}
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	if isNotFinite(x) {
		return 0
	}
	return math.Round(x*10) / 10
}

func isNotFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// ShapeSeries rounds values to cents, annotates each entry with its share of
// the total and orders entries by value, largest first. The input slice is
// left untouched.
func ShapeSeries(values []CategoryValue) ChartSeries {
	entries := make([]SeriesEntry, 0, len(values))
	total := decimal.Zero

	for _, v := range values {
		rounded := Round2(v.Value)
		total = total.Add(decimal.NewFromFloat(rounded))
		entries = append(entries, SeriesEntry{Name: v.Name, Value: rounded})
	}

	totalValue := Round2(total.InexactFloat64())
	for i := range entries {
		if totalValue != 0 {
			entries[i].Percentage = round1(entries[i].Value / totalValue * 100)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	return ChartSeries{
		Entries: entries,
		Total:   totalValue,
		Empty:   len(entries) == 0,
	}
}

func ShapeTrend(trend []MonthTrend) []MonthTrend {
	shaped := make([]MonthTrend, 0, len(trend))
	for _, m := range trend {
		shaped = append(shaped, MonthTrend{
			Month:    m.Month,
			Income:   Round2(m.Income),
			Expenses: Round2(m.Expenses),
			Tithing:  Round2(m.Tithing),
			Net:      Round2(m.Net),
		})
	}
	return shaped
}
