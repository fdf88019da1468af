package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

const vietmapBaseURL = "https://maps.vietmap.vn/api"

var ErrAddressNotFound = errors.New("address not found")

// Geocoder resolves cinema addresses through Vietmap: autocomplete v3 gives
// a ref_id, place v3 gives its coordinates.
type Geocoder struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGeocoder(apiKey string) *Geocoder {
	return &Geocoder{apiKey: apiKey, baseURL: vietmapBaseURL, httpClient: &http.Client{Timeout: 10 * time.Second}}
}

func (g *Geocoder) Enabled() bool {
	return g != nil && g.apiKey != ""
}

type autocompleteItem struct {
	RefID   string `json:"ref_id"`
	Display string `json:"display"`
}

type place struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Display string  `json:"display"`
}

func (g *Geocoder) fetch(ctx context.Context, path string, q url.Values) ([]byte, int, error) {
	q.Set("apikey", g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return body, resp.StatusCode, err
}

// Geocode returns the coordinates of the best match for address.
func (g *Geocoder) Geocode(ctx context.Context, address string) (model.Location, error) {
	body, status, err := g.fetch(ctx, "/autocomplete/v3", url.Values{"text": {address}})
	if err != nil {
		return model.Location{}, fmt.Errorf("vietmap autocomplete: %w", err)
	}
	if status != http.StatusOK {
		return model.Location{}, fmt.Errorf("vietmap autocomplete: status %d", status)
	}
	var items []autocompleteItem
	if err := json.Unmarshal(body, &items); err != nil {
		return model.Location{}, fmt.Errorf("vietmap autocomplete: %w", err)
	}
	if len(items) == 0 || items[0].RefID == "" {
		return model.Location{}, ErrAddressNotFound
	}

	body, status, err = g.fetch(ctx, "/place/v3", url.Values{"refid": {items[0].RefID}})
	if err != nil {
		return model.Location{}, fmt.Errorf("vietmap place: %w", err)
	}
	if status != http.StatusOK {
		return model.Location{}, fmt.Errorf("vietmap place: status %d", status)
	}
	var p place
	if err := json.Unmarshal(body, &p); err != nil {
		return model.Location{}, fmt.Errorf("vietmap place: %w", err)
	}
	return model.Location{Latitude: p.Lat, Longitude: p.Lng}, nil
}

// SetupVietmapRoutes proxies autocomplete and place lookups for the cinema
// form so the API key stays on the server.
func SetupVietmapRoutes(router fiber.Router, g *Geocoder) {
	proxy := func(path, param, upstream string) fiber.Handler {
		return func(c *fiber.Ctx) error {
			value := c.Query(param)
			if value == "" {
				return ErrorResponse(c, fiber.StatusBadRequest, param+" parameter required", nil)
			}
			if !g.Enabled() {
				return ErrorResponse(c, fiber.StatusServiceUnavailable, "VIETMAP_API_KEY not set", nil)
			}
			body, status, err := g.fetch(c.UserContext(), path, url.Values{upstream: {value}})
			if err != nil {
				return ErrorResponse(c, fiber.StatusBadGateway, "cannot reach Vietmap", err)
			}
			c.Status(status)
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(body)
		}
	}
	router.Get("/vietmap/autocomplete", proxy("/autocomplete/v3", "text", "text"))
	router.Get("/vietmap/place", proxy("/place/v3", "refid", "refid"))
}
