package common

import (
	"fmt"
	"math"
)

// Display formatting for weather readings. A nil reading renders as a
// placeholder rather than a fake zero.

func FormatTemperature(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%d°", int(math.Round(*v)))
}

func FormatWind(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%d km/h", int(math.Round(*v)))
}

func FormatHumidity(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%d%%", int(math.Round(*v)))
}
