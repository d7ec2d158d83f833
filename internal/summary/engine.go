// ABOUTME: Aggregation engine: daily summaries and history from raw logs.
// ABOUTME: Pure reads; recomputed on demand, never cached across writes.
package summary

import (
	"sort"

	"github.com/harperreed/balance/internal/formula"
	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/repo"
)

// Engine derives energy-balance views from the record repositories.
// It never mutates storage and never errors on missing data: an empty
// history is a valid result.
type Engine struct {
	store *repo.Store
}

// NewEngine creates an engine over one user's store.
func NewEngine(store *repo.Store) *Engine {
	return &Engine{store: store}
}

// DailySummary is the derived energy picture for one date.
// NetCalories is negative in a deficit and positive in a surplus.
type DailySummary struct {
	Date           string  `json:"date"`
	CaloriesEaten  float64 `json:"caloriesEaten"`
	ExerciseBurned float64 `json:"exerciseBurned"`
	RestingBurned  float64 `json:"restingBurned"`
	TotalBurned    float64 `json:"totalBurned"`
	NetCalories    float64 `json:"netCalories"`
	ProteinG       float64 `json:"proteinG"`
	CarbsG         float64 `json:"carbsG"`
	FatG           float64 `json:"fatG"`
	FoodCount      int     `json:"foodCount"`
	ExerciseCount  int     `json:"exerciseCount"`
}

// dayBucket accumulates one date's raw totals before derivation.
type dayBucket struct {
	eaten         float64
	protein       float64
	carbs         float64
	fat           float64
	burned        float64
	foodCount     int
	exerciseCount int
}

// DailySummary computes the summary for a single ISO date.
func (e *Engine) DailySummary(date string) (*DailySummary, error) {
	buckets, resting, err := e.load()
	if err != nil {
		return nil, err
	}

	b := buckets[date]
	if b == nil {
		b = &dayBucket{}
	}
	s := summarize(date, b, resting)
	return &s, nil
}

// History returns a summary for every date that has at least one food
// or exercise entry, most recent first. Zero-padded ISO dates make
// string comparison chronological.
func (e *Engine) History() ([]DailySummary, error) {
	buckets, resting, err := e.load()
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	summaries := make([]DailySummary, 0, len(dates))
	for _, d := range dates {
		summaries = append(summaries, summarize(d, buckets[d], resting))
	}
	return summaries, nil
}

// load reads the logs once and buckets them by date. The resting burn
// is constant per profile, not per day; a missing profile contributes
// zero rather than failing the whole view.
func (e *Engine) load() (map[string]*dayBucket, float64, error) {
	food, err := e.store.ListFood()
	if err != nil {
		return nil, 0, err
	}
	exercise, err := e.store.ListExercise()
	if err != nil {
		return nil, 0, err
	}

	buckets := make(map[string]*dayBucket)
	bucket := func(date string) *dayBucket {
		b := buckets[date]
		if b == nil {
			b = &dayBucket{}
			buckets[date] = b
		}
		return b
	}

	for _, f := range food {
		b := bucket(f.Date)
		b.eaten += f.Calories
		b.protein += f.Protein
		b.carbs += f.Carbs
		b.fat += f.Fat
		b.foodCount++
	}
	for _, x := range exercise {
		b := bucket(x.Date)
		b.burned += x.CaloriesBurned
		b.exerciseCount++
	}

	resting := e.restingBurn()
	return buckets, resting, nil
}

// restingBurn returns the profile's baseline TDEE, or zero when no
// usable profile exists.
func (e *Engine) restingBurn() float64 {
	profile, err := e.store.GetProfile()
	if err != nil || profile == nil {
		return 0
	}
	resting, err := formula.BaselineTDEE(profile)
	if err != nil {
		return 0
	}
	return resting
}

func summarize(date string, b *dayBucket, resting float64) DailySummary {
	total := resting + b.burned
	return DailySummary{
		Date:           date,
		CaloriesEaten:  b.eaten,
		ExerciseBurned: b.burned,
		RestingBurned:  resting,
		TotalBurned:    total,
		NetCalories:    b.eaten - total,
		ProteinG:       b.protein,
		CarbsG:         b.carbs,
		FatG:           b.fat,
		FoodCount:      b.foodCount,
		ExerciseCount:  b.exerciseCount,
	}
}

// Today returns the summary for the current local date.
func (e *Engine) Today() (*DailySummary, error) {
	return e.DailySummary(todayDate())
}

func todayDate() string {
	return models.DateOf(nowMs())
}
