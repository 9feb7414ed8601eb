package validation

import "math"

type Paint struct {
	Key      string
	Name     string
	Category string
	// YieldM2PerLiter is the coverage the manufacturer states for one liter.
	YieldM2PerLiter float64
}

var paintYields = map[string]Paint{
	"vinimex":     {Key: "vinimex", Name: "Vinimex", Category: "Interior", YieldM2PerLiter: 12},
	"pro-mil":     {Key: "pro-mil", Name: "Pro-mil", Category: "Interior", YieldM2PerLiter: 10},
	"prima":       {Key: "prima", Name: "Prima", Category: "Interior", YieldM2PerLiter: 8},
	"cam-vinimex": {Key: "cam-vinimex", Name: "CAM Vinimex", Category: "Exterior", YieldM2PerLiter: 10},
	"acrimate":    {Key: "acrimate", Name: "Acrimate", Category: "Exterior", YieldM2PerLiter: 12},
}

func PaintByKey(key string) (Paint, bool) {
	p, ok := paintYields[key]
	return p, ok
}

// SuggestLiters estimates the liters needed to cover area square meters
// with the given paint. The estimate is a suggestion only: callers may
// keep a manually entered positive value instead, and that value is never
// second-guessed here. Returns false when the paint key is unset or unknown.
func SuggestLiters(area float64, paintKey string) (int, bool) {
	if area <= 0 {
		return 0, false
	}
	paint, ok := paintYields[paintKey]
	if !ok {
		return 0, false
	}
	return int(math.Ceil(area / paint.YieldM2PerLiter)), true
}
