package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nomadweather/weather-dashboard/internal/common"
	"github.com/nomadweather/weather-dashboard/internal/dashboard"
	"github.com/nomadweather/weather-dashboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, dash *dashboard.Dashboard) {
	v1 := app.Group("/api/v1")

	// Full renderable state for the presentation layer.
	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(dash.Snapshot())
	})

	v1.Post("/search", func(c *fiber.Ctx) error {
		req, err := parseSearchQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// Search errors surface inside the state as banner text, not as an
		// HTTP failure.
		dash.Search(c.UserContext(), req.City)
		return c.JSON(dash.Snapshot())
	})

	v1.Get("/destinations", func(c *fiber.Ctx) error {
		return c.JSON(destinationViews(dash))
	})

	v1.Post("/destinations/:name/select", func(c *fiber.Ctx) error {
		name := c.Params("name")
		dest, ok := findDestination(dash.Destinations(), name)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "unknown destination")
		}

		dash.SelectDestination(c.UserContext(), dest.Name)
		return c.JSON(dash.Snapshot())
	})

	v1.Post("/theme/toggle", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"theme": dash.ToggleTheme(),
		})
	})

	v1.Delete("/error", func(c *fiber.Ctx) error {
		dash.DismissError()
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// searchQuery holds query parameters for the search endpoint.
type searchQuery struct {
	City string `validate:"required"`
}

func parseSearchQuery(c *fiber.Ctx) (searchQuery, error) {
	var q searchQuery
	q.City = c.Query("city")

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// destinationView pairs a catalogue entry with its live preview and a short
// display summary like "18° · Partly cloudy".
type destinationView struct {
	weather.Destination
	Preview *weather.CurrentConditions `json:"preview,omitempty"`
	Summary string                     `json:"summary,omitempty"`
}

func destinationViews(dash *dashboard.Dashboard) []destinationView {
	state := dash.Snapshot()

	views := make([]destinationView, 0, len(dash.Destinations()))
	for _, dest := range dash.Destinations() {
		view := destinationView{Destination: dest}
		if preview, ok := state.Previews[dest.Name]; ok && preview != nil {
			view.Preview = preview
			view.Summary = common.FormatTemperature(preview.Temperature) + " · " + preview.Description
		}
		views = append(views, view)
	}
	return views
}

func findDestination(destinations []weather.Destination, name string) (weather.Destination, bool) {
	for _, dest := range destinations {
		if dest.Name == name {
			return dest, true
		}
	}
	return weather.Destination{}, false
}
