package bmi

const (
	gaugeMinBMI = 10
	gaugeMaxBMI = 40
)

// GaugePercentage maps BMI 10-40 onto 0-100, clamping values outside the range.
func GaugePercentage(bmi float64) float64 {
	p := (bmi - gaugeMinBMI) / (gaugeMaxBMI - gaugeMinBMI) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
