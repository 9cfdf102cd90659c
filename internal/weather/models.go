package weather

// CityLocation identifies the geographic point all weather queries run
// against. It is produced by the geocoding resolver and never mutated.
type CityLocation struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentConditions is the normalized view of one "current weather" reading.
// Numeric fields are pointers: a missing upstream field stays nil instead of
// masquerading as zero.
type CurrentConditions struct {
	// Date is the local calendar date of the reading, taken from the first
	// daily forecast row rather than the instant of the request.
	Date                string   `json:"date"`
	Temperature         *float64 `json:"temperature"`
	ApparentTemperature *float64 `json:"apparentTemperature"`
	Humidity            *float64 `json:"humidity"`
	WeatherCode         *int     `json:"weatherCode"`
	Description         string   `json:"description"`
	Wind                *float64 `json:"wind"`
	IsDay               bool     `json:"isDay"`
}

// MaxForecastDays caps how many daily rows a snapshot carries.
const MaxForecastDays = 7

// DailyForecast holds the per-day forecast columns as returned by the
// provider, truncated to at most MaxForecastDays entries. All slices are
// index-aligned with Time.
type DailyForecast struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
}

// ForecastDay is one row of the daily forecast in record form.
type ForecastDay struct {
	Date             string  `json:"date"`
	WeatherCode      int     `json:"weatherCode"`
	WeatherCodeGroup int     `json:"weatherCodeGroup"`
	TempMax          float64 `json:"tempMax"`
	TempMin          float64 `json:"tempMin"`
}

// Days converts the column layout into per-day records, stopping at the
// shortest companion column so rows are never half-filled.
func (d *DailyForecast) Days() []ForecastDay {
	if d == nil {
		return nil
	}
	days := make([]ForecastDay, 0, len(d.Time))
	for i, date := range d.Time {
		if i >= len(d.WeatherCode) || i >= len(d.Temperature2mMax) || i >= len(d.Temperature2mMin) {
			break
		}
		days = append(days, ForecastDay{
			Date:             date,
			WeatherCode:      d.WeatherCode[i],
			WeatherCodeGroup: WeatherCodeGroup(d.WeatherCode[i]),
			TempMax:          d.Temperature2mMax[i],
			TempMin:          d.Temperature2mMin[i],
		})
	}
	return days
}

// HighLowFor returns the max/min temperatures for the row whose date matches,
// or nil when the date is absent from the forecast.
func (d *DailyForecast) HighLowFor(date string) (high, low *float64) {
	if d == nil {
		return nil, nil
	}
	for i, t := range d.Time {
		if t != date {
			continue
		}
		if i < len(d.Temperature2mMax) {
			v := d.Temperature2mMax[i]
			high = &v
		}
		if i < len(d.Temperature2mMin) {
			v := d.Temperature2mMin[i]
			low = &v
		}
		return high, low
	}
	return nil, nil
}

// WeatherSnapshot is the unit returned by the fetcher: current conditions
// plus the daily forecast. Either half may be nil when the provider omitted
// that section.
type WeatherSnapshot struct {
	Current *CurrentConditions `json:"current"`
	Daily   *DailyForecast     `json:"daily"`
}

// PreviewMap maps a destination name to its current-conditions preview.
// A missing key means the preview lookup failed or has not completed.
type PreviewMap map[string]*CurrentConditions

// Destination is one entry of the curated travel catalogue.
type Destination struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	ImageURL string `json:"image"`
}

// PopularDestinations is the fixed catalogue the preview aggregator iterates.
// Order matters for presentation; it is never mutated at runtime.
var PopularDestinations = []Destination{
	{
		Name:     "Paris",
		Country:  "France",
		ImageURL: "https://images.pexels.com/photos/338515/pexels-photo-338515.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
	{
		Name:     "Tokyo",
		Country:  "Japan",
		ImageURL: "https://images.pexels.com/photos/208745/pexels-photo-208745.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
	{
		Name:     "New York",
		Country:  "USA",
		ImageURL: "https://images.pexels.com/photos/313782/pexels-photo-313782.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
	{
		Name:     "Sydney",
		Country:  "Australia",
		ImageURL: "https://images.pexels.com/photos/2193300/pexels-photo-2193300.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
}
