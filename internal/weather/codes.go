package weather

// WMO weather interpretation codes as delivered by Open-Meteo, reduced to the
// families the dashboard distinguishes.
var weatherCodeDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Foggy",
	51: "Light drizzle",
	53: "Drizzle",
	55: "Heavy drizzle",
	61: "Light rain",
	63: "Rain",
	65: "Heavy rain",
	71: "Light snow",
	73: "Snow",
	75: "Heavy snow",
	95: "Thunderstorm",
	96: "Thunderstorm",
	99: "Thunderstorm",
}

const (
	// DescriptionUnavailable is used when no weather code was reported at all.
	DescriptionUnavailable = "Weather data unavailable"
	// DescriptionUnknownCode is used for codes outside the table above.
	DescriptionUnknownCode = "Mixed conditions"
)

// DescribeWeatherCode maps a weather code to its display string. Code 0 is a
// valid "Clear sky" reading; only a nil code counts as absent.
func DescribeWeatherCode(code *int) string {
	if code == nil {
		return DescriptionUnavailable
	}
	if desc, ok := weatherCodeDescriptions[*code]; ok {
		return desc
	}
	return DescriptionUnknownCode
}

// WeatherCodeGroup buckets a code into its coarse family (tens digit), which
// is what icon selection keys on.
func WeatherCodeGroup(code int) int {
	return code / 10
}
