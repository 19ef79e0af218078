package pipeline

import "gamyam/internal/models"

// Summary holds the aggregate figures for a set of deals.
//
// TotalValue and WeightedValue sum raw values with no currency conversion;
// with mixed currencies the sums are nominal only. Rounding is left to the
// presentation side.
type Summary struct {
	TotalDealCount int                  `json:"totalDealCount"`
	TotalValue     float64              `json:"totalValue"`
	WeightedValue  float64              `json:"weightedValue"`
	StageCounts    map[models.Stage]int `json:"stageCounts"`
}

// Summarize derives the summary figures from the given deals. It holds no
// state: call it again whenever the input changes. Stages with no deals do
// not appear in StageCounts.
func Summarize(deals []models.Deal) Summary {
	sum := Summary{
		TotalDealCount: len(deals),
		StageCounts:    make(map[models.Stage]int),
	}
	for _, d := range deals {
		sum.TotalValue += d.Value
		sum.WeightedValue += d.Value * (d.Probability / 100)
		sum.StageCounts[d.Stage]++
	}
	return sum
}
