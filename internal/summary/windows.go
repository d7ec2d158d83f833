// ABOUTME: Windowed statistics: weekly/monthly averages and the rolling NET trend.
// ABOUTME: Averages count tracked days only; untracked days leave the denominator.
package summary

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/balance/internal/models"
)

// nowMs is swapped in tests to pin the current time.
var nowMs = func() int64 {
	return time.Now().UnixMilli()
}

// WindowAverage is the mean daily picture over a trailing calendar
// window. Only days with at least one food entry are counted; a day
// without food is untracked, not a zero.
type WindowAverage struct {
	FromDate          string  `json:"fromDate"`
	ToDate            string  `json:"toDate"`
	TrackedDays       int     `json:"trackedDays"`
	AvgNetCalories    float64 `json:"avgNetCalories"`
	AvgCaloriesEaten  float64 `json:"avgCaloriesEaten"`
	AvgExerciseBurned float64 `json:"avgExerciseBurned"`
	AvgProteinG       float64 `json:"avgProteinG"`
	AvgCarbsG         float64 `json:"avgCarbsG"`
	AvgFatG           float64 `json:"avgFatG"`
}

// WeeklyAverage averages the trailing 7 calendar days ending today.
func (e *Engine) WeeklyAverage() (*WindowAverage, error) {
	return e.WindowAverageEnding(todayDate(), 7)
}

// MonthlyAverage averages the trailing 30 calendar days ending today.
func (e *Engine) MonthlyAverage() (*WindowAverage, error) {
	return e.WindowAverageEnding(todayDate(), 30)
}

// WindowAverageEnding averages the trailing window of calendar days
// ending at endDate inclusive.
func (e *Engine) WindowAverageEnding(endDate string, days int) (*WindowAverage, error) {
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("parse window end date: %w", err)
	}
	if days <= 0 {
		return nil, fmt.Errorf("window must cover at least one day")
	}

	buckets, resting, err := e.load()
	if err != nil {
		return nil, err
	}

	start := end.AddDate(0, 0, -(days - 1))
	avg := &WindowAverage{
		FromDate: start.Format(models.DateLayout),
		ToDate:   endDate,
	}

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(models.DateLayout)
		b := buckets[date]
		if b == nil || b.foodCount == 0 {
			continue
		}
		s := summarize(date, b, resting)
		avg.TrackedDays++
		avg.AvgNetCalories += s.NetCalories
		avg.AvgCaloriesEaten += s.CaloriesEaten
		avg.AvgExerciseBurned += s.ExerciseBurned
		avg.AvgProteinG += s.ProteinG
		avg.AvgCarbsG += s.CarbsG
		avg.AvgFatG += s.FatG
	}

	if avg.TrackedDays > 0 {
		n := float64(avg.TrackedDays)
		avg.AvgNetCalories /= n
		avg.AvgCaloriesEaten /= n
		avg.AvgExerciseBurned /= n
		avg.AvgProteinG /= n
		avg.AvgCarbsG /= n
		avg.AvgFatG /= n
	}
	return avg, nil
}

// TrendPoint is one tracked day's NET plus its smoothed rolling mean.
type TrendPoint struct {
	Date        string  `json:"date"`
	NetCalories float64 `json:"netCalories"`
	RollingNet  float64 `json:"rollingNet"`
}

// RollingAverage smooths NET calories over each tracked day and up to
// windowDays-1 preceding tracked days. Near the start of history the
// window clips to however many days exist. Recomputing over the same
// inputs always yields the same sequence.
func (e *Engine) RollingAverage(windowDays int) ([]TrendPoint, error) {
	if windowDays <= 0 {
		windowDays = 7
	}

	buckets, resting, err := e.load()
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	points := make([]TrendPoint, 0, len(dates))
	for i, d := range dates {
		s := summarize(d, buckets[d], resting)

		first := i - windowDays + 1
		if first < 0 {
			first = 0
		}
		var sum float64
		for j := first; j <= i; j++ {
			sum += summarize(dates[j], buckets[dates[j]], resting).NetCalories
		}

		points = append(points, TrendPoint{
			Date:        d,
			NetCalories: s.NetCalories,
			RollingNet:  sum / float64(i-first+1),
		})
	}
	return points, nil
}
