// ABOUTME: Estimated weight trend from cumulative NET calories.
// ABOUTME: A model (3500 kcal per lb), kept distinct from actual logged weights.
package summary

import (
	"sort"

	"github.com/harperreed/balance/internal/formula"
	"github.com/harperreed/balance/internal/models"
)

// kcalPerLb is the classic energy-balance approximation for one pound
// of body mass.
const kcalPerLb = 3500

// ProjectionPoint is one estimated weight on the trend line.
type ProjectionPoint struct {
	Date        string  `json:"date"`
	EstimatedKg float64 `json:"estimatedKg"`
}

// WeightTrend pairs the actual logged weights with the estimated trend
// derived from cumulative NET calories. Consumers must present the two
// series distinctly: the estimate is a model, not a measurement.
type WeightTrend struct {
	Actual    []models.WeightEntry `json:"actual"`
	Estimated []ProjectionPoint    `json:"estimated"`
}

// WeightProjection anchors at the first logged weight and walks every
// tracked day in order, shifting the estimate by that day's NET
// converted to mass. A deficit (negative NET) lowers the estimate.
// With no logged weight there is nothing to anchor, so the estimated
// series is empty.
func (e *Engine) WeightProjection() (*WeightTrend, error) {
	weights, err := e.store.ListWeightsByDate()
	if err != nil {
		return nil, err
	}

	trend := &WeightTrend{
		Actual:    weights,
		Estimated: []ProjectionPoint{},
	}
	if len(weights) == 0 {
		return trend, nil
	}
	startKg := weights[0].WeightKg

	buckets, resting, err := e.load()
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var cumulativeNet float64
	for _, d := range dates {
		cumulativeNet += summarize(d, buckets[d], resting).NetCalories
		trend.Estimated = append(trend.Estimated, ProjectionPoint{
			Date:        d,
			EstimatedKg: startKg + cumulativeNet/kcalPerLb*formula.KgPerLb,
		})
	}
	return trend, nil
}
