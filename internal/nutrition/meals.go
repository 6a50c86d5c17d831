package nutrition

type Meal struct {
	Name     string `json:"name" toml:"name"`
	Calories int    `json:"calories" toml:"calories"`
	Protein  string `json:"protein" toml:"protein"`
	Carbs    string `json:"carbs" toml:"carbs"`
	Fat      string `json:"fat" toml:"fat"`
}

// MealTime is a bucket of meals eaten at the same time of day.
type MealTime struct {
	Time      string `json:"time" toml:"time"`
	Icon      string `json:"icon" toml:"icon"`
	TimeRange string `json:"timeRange" toml:"time_range"`
	Meals     []Meal `json:"meals" toml:"meals"`
}

func (mt MealTime) Calories() int {
	sum := 0
	for _, m := range mt.Meals {
		sum += m.Calories
	}
	return sum
}

type MealAggregate struct {
	Label    string  `json:"label"`
	Calories int     `json:"calories"`
	WidthPct float64 `json:"widthPct"`
}

type MealBreakdownResult struct {
	Buckets     []MealAggregate `json:"buckets"`
	Total       int             `json:"total"`
	DailyTarget int             `json:"dailyTarget"`
}

// MealBreakdown sums every bucket and sizes it against the daily target.
// Widths are not clamped and may add up to more than 100.
func MealBreakdown(meals []MealTime, dailyTarget int) MealBreakdownResult {
	res := MealBreakdownResult{
		Buckets:     make([]MealAggregate, 0, len(meals)),
		DailyTarget: dailyTarget,
	}

	for _, mt := range meals {
		cal := mt.Calories()
		width := 0.0
		if dailyTarget != 0 {
			width = float64(cal) / float64(dailyTarget) * 100
		}
		res.Buckets = append(res.Buckets, MealAggregate{
			Label:    mt.Time,
			Calories: cal,
			WidthPct: width,
		})
		res.Total += cal
	}

	return res
}
