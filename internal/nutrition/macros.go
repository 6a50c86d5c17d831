package nutrition

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/2beens/fitplan/internal/bmi"
)

type DailyMacros struct {
	Calories int    `json:"calories" toml:"calories"`
	Protein  string `json:"protein" toml:"protein"`
	Carbs    string `json:"carbs" toml:"carbs"`
	Fat      string `json:"fat" toml:"fat"`
}

type Shares struct {
	ProteinPct int `json:"proteinPct"`
	CarbsPct   int `json:"carbsPct"`
	FatPct     int `json:"fatPct"`
}

// ParseGrams reads the leading integer of a value like "134g".
// Malformed input parses to 0.
func ParseGrams(val string) int {
	val = strings.Replace(val, "g", "", 1)
	val = strings.TrimLeftFunc(val, unicode.IsSpace)

	end := 0
	if end < len(val) && (val[end] == '-' || val[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(val) && val[end] >= '0' && val[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(val[:end])
	if err != nil {
		return 0
	}
	return n
}

// MacroShares rounds each share independently, so the sum is not guaranteed to be 100.
func MacroShares(protein, carbs, fat int) Shares {
	total := protein + carbs + fat
	if total == 0 {
		return Shares{}
	}

	share := func(v int) int {
		return bmi.Round(float64(v) / float64(total) * 100)
	}
	return Shares{
		ProteinPct: share(protein),
		CarbsPct:   share(carbs),
		FatPct:     share(fat),
	}
}

func SharesFromMacros(m DailyMacros) Shares {
	return MacroShares(ParseGrams(m.Protein), ParseGrams(m.Carbs), ParseGrams(m.Fat))
}
