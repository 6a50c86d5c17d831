package bmi

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

const (
	MaxHeightCm = 300
	MaxWeightKg = 500
)

var ErrInvalidInput = errors.New("invalid input")

type Category string

const (
	Underweight Category = "Underweight"
	Healthy     Category = "Healthy"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

var categoryTips = map[Category]string{
	Underweight: "Focus on calorie-dense, nutrient-rich foods to reach a healthy weight.",
	Healthy:     "Great shape! Maintain your current lifestyle with balanced nutrition.",
	Overweight:  "A slight calorie deficit with regular exercise will help you reach your goal.",
	Obese:       "Consult a healthcare professional for a personalized plan. Start with low-impact activity.",
}

func (c Category) Tip() string {
	return categoryTips[c]
}

// CategoryFor returns the band for the given BMI, boundary values belong to the higher band.
func CategoryFor(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Healthy
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

type Result struct {
	BMI      float64  `json:"bmi"`
	Category Category `json:"category"`
	Calories Calories `json:"calories"`
	Tip      string   `json:"tip"`
}

// Display returns the BMI rounded to one decimal, for presentation only.
func (r Result) Display() string {
	return strconv.FormatFloat(r.BMI, 'f', 1, 64)
}

// Classify expects height in centimeters and weight in kilograms, within MaxHeightCm and MaxWeightKg.
func Classify(heightCm, weightKg float64) (Result, error) {
	if !positive(heightCm) || !positive(weightKg) || heightCm > MaxHeightCm || weightKg > MaxWeightKg {
		return Result{}, fmt.Errorf("height [%v] weight [%v]: %w", heightCm, weightKg, ErrInvalidInput)
	}

	h := heightCm / 100
	bmi := weightKg / (h * h)
	category := CategoryFor(bmi)

	return Result{
		BMI:      bmi,
		Category: category,
		Calories: EstimateCalories(heightCm, weightKg, category),
		Tip:      category.Tip(),
	}, nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// ValidationError carries field level messages, keyed by "height" and "weight".
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ParseInput validates raw height and weight values the way the calculator form does.
func ParseInput(heightRaw, weightRaw string) (heightCm, weightKg float64, err error) {
	fields := map[string]string{}

	heightCm, msg := parseField(heightRaw, MaxHeightCm, "height", "cm")
	if msg != "" {
		fields["height"] = msg
	}
	weightKg, msg = parseField(weightRaw, MaxWeightKg, "weight", "kg")
	if msg != "" {
		fields["weight"] = msg
	}

	if len(fields) > 0 {
		return 0, 0, &ValidationError{Fields: fields}
	}
	return heightCm, weightKg, nil
}

func parseField(raw string, maxVal float64, name, unit string) (float64, string) {
	v, ok := parseLeadingFloat(raw)
	if !ok || math.IsNaN(v) || v <= 0 {
		return 0, "Enter a valid " + name
	}
	if v > maxVal {
		return 0, fmt.Sprintf("Max %d %s", int(maxVal), unit)
	}
	return v, ""
}

// parseLeadingFloat reads the decimal number a value starts with, so "175cm" is 175.
// Hex floats, underscores and "Inf" are not numbers here. Values past float64 range come back as ±Inf.
func parseLeadingFloat(raw string) (float64, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		expDigitsStart := exp
		for exp < len(s) && isDigit(s[exp]) {
			exp++
		}
		if exp > expDigitsStart {
			end = exp
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
