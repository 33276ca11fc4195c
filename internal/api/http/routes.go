package httpapi

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/i474232898/weather-card/internal/store"
	"github.com/i474232898/weather-card/internal/weather"
)

var validate = validator.New()

// ViewStore is the subset of the view store the handlers need.
type ViewStore interface {
	Save(v weather.ViewState)
	Update(v weather.ViewState) bool
	Get(id string) (weather.ViewState, error)
	Delete(id string) error
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, views ViewStore) {
	v1 := app.Group("/api/v1")

	// Create a view and load it for the caller's position.
	v1.Post("/views", func(c *fiber.Ctx) error {
		v := weather.NewViewState(uuid.NewString())
		views.Save(v)

		ctx := weather.WithClientIP(c.UserContext(), c.IP())
		v = service.Load(ctx, v)
		if !views.Update(v) {
			return fiber.NewError(fiber.StatusNotFound, "view not found")
		}

		return c.Status(fiber.StatusCreated).JSON(v)
	})

	v1.Get("/views/:id", func(c *fiber.Ctx) error {
		v, err := getView(views, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(v)
	})

	v1.Delete("/views/:id", func(c *fiber.Ctx) error {
		if err := views.Delete(c.Params("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "view not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete view")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Override the location by coordinates (lat, lon) or by place name (q).
	v1.Post("/views/:id/search", func(c *fiber.Ctx) error {
		v, err := getView(views, c.Params("id"))
		if err != nil {
			return err
		}

		q, err := parseSearchQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if q.Lat != nil {
			v = service.Search(c.UserContext(), v, weather.Coordinates{Latitude: *q.Lat, Longitude: *q.Lon})
			views.Update(v)
			return c.JSON(v)
		}

		if !service.CanSearchPlaces() {
			return fiber.NewError(fiber.StatusNotImplemented, "place search is not configured")
		}

		// A failed search is reported through the view's notices.
		v, _ = service.SearchPlace(c.UserContext(), v, q.Query)
		views.Update(v)
		return c.JSON(v)
	})

	v1.Post("/views/:id/toggle", func(c *fiber.Ctx) error {
		v, err := getView(views, c.Params("id"))
		if err != nil {
			return err
		}

		v = v.ToggleUnit()
		v.UpdatedAt = time.Now().UTC()
		if !views.Update(v) {
			return fiber.NewError(fiber.StatusNotFound, "view not found")
		}
		return c.JSON(v)
	})
}

func getView(views ViewStore, id string) (weather.ViewState, error) {
	if _, err := uuid.Parse(id); err != nil {
		return weather.ViewState{}, fiber.NewError(fiber.StatusBadRequest, "invalid view id")
	}

	v, err := views.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return weather.ViewState{}, fiber.NewError(fiber.StatusNotFound, "view not found")
		}
		return weather.ViewState{}, fiber.NewError(fiber.StatusInternalServerError, "failed to fetch view")
	}
	return v, nil
}

// searchQuery holds query parameters for the search endpoint.
type searchQuery struct {
	Lat   *float64 `validate:"omitempty,gte=-90,lte=90"`
	Lon   *float64 `validate:"omitempty,gte=-180,lte=180"`
	Query string   `validate:"max=200"`
}

func parseSearchQuery(c *fiber.Ctx) (searchQuery, error) {
	var q searchQuery

	var err error
	if q.Lat, err = parseOptionalFloat(c.Query("lat")); err != nil {
		return q, errors.New("invalid lat")
	}
	if q.Lon, err = parseOptionalFloat(c.Query("lon")); err != nil {
		return q, errors.New("invalid lon")
	}
	q.Query = strings.TrimSpace(c.Query("q"))

	if (q.Lat == nil) != (q.Lon == nil) {
		return q, errors.New("lat and lon must be given together")
	}
	if q.Lat == nil && q.Query == "" {
		return q, errors.New("either lat and lon or q is required")
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
