package bmi

import "math"

// the estimator assumes a 25 year old male
const (
	assumedAge    = 25
	maleConstant  = 5
	sedentaryMult = 1.2
	moderateMult  = 1.55
	activeMult    = 1.725
)

type Calories struct {
	Sedentary int `json:"sedentary"`
	Moderate  int `json:"moderate"`
	Active    int `json:"active"`
}

var categoryAdjustments = map[Category]Calories{
	Underweight: {Sedentary: 300, Moderate: 300, Active: 300},
	Healthy:     {},
	Overweight:  {Sedentary: -300, Moderate: -200, Active: -100},
	Obese:       {Sedentary: -500, Moderate: -400, Active: -300},
}

// BMR is the Mifflin-St Jeor basal metabolic rate.
func BMR(heightCm, weightKg float64) float64 {
	return 10*weightKg + 6.25*heightCm - 5*assumedAge + maleConstant
}

// EstimateCalories rounds each activity level first and then applies the category delta.
// Results are not floored at zero.
func EstimateCalories(heightCm, weightKg float64, category Category) Calories {
	bmr := BMR(heightCm, weightKg)
	adj := categoryAdjustments[category]

	return Calories{
		Sedentary: Round(bmr*sedentaryMult) + adj.Sedentary,
		Moderate:  Round(bmr*moderateMult) + adj.Moderate,
		Active:    Round(bmr*activeMult) + adj.Active,
	}
}

// Round rounds half towards positive infinity, so Round(2.5) == 3 and Round(-2.5) == -2.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}
