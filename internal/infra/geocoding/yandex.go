// Package geocoding adapts the external Yandex geocoder HTTP API to the
// domain's Geocoder contract.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"

	"github.com/pkg/errors"
)

// yandexResponse mirrors the provider's JSON payload. Matches are ranked by
// relevance, most relevant first.
type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"` // "lon lat"
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// YandexClient resolves addresses against the Yandex geocoder.
//
// Missing credential, access denial (403) and zero matches are soft outcomes:
// they are logged and reported as an unresolved coordinate. Anything else is
// a hard failure for the caller to surface.
type YandexClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewYandexClient is the constructor for YandexClient. The credential comes
// from config explicitly; an empty key leaves the client in degraded mode.
func NewYandexClient(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	return &YandexClient{
		apiKey:  cfg.Geocoder.APIKey,
		baseURL: cfg.Geocoder.BaseURL,
		client:  &http.Client{Timeout: cfg.Geocoder.Timeout},
		logger:  logger,
	}
}

// Resolve looks up one address and returns the provider's most relevant match.
func (g *YandexClient) Resolve(ctx context.Context, address string) (entity.Coordinate, error) {
	if g.apiKey == "" {
		g.logger.WarnContext(ctx, "geocoder API key is not configured",
			slog.String("address", address))

		return entity.Coordinate{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL, nil)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to build geocoder request")
	}

	query := req.URL.Query()
	query.Set("geocode", address)
	query.Set("apikey", g.apiKey)
	query.Set("format", "json")
	req.URL.RawQuery = query.Encode()

	resp, err := g.client.Do(req)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "geocoder request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		g.logger.WarnContext(ctx, "geocoder denied access, check the API key",
			slog.String("baseUrl", g.baseURL))

		return entity.Coordinate{}, nil
	}

	if resp.StatusCode != http.StatusOK {
		return entity.Coordinate{}, errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var payload yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to decode geocoder response")
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		g.logger.WarnContext(ctx, "geocoder found no coordinates for address",
			slog.String("address", address))

		return entity.Coordinate{}, nil
	}

	return parsePos(members[0].GeoObject.Point.Pos)
}

// parsePos parses the provider's space-separated "lon lat" pair.
func parsePos(pos string) (entity.Coordinate, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return entity.Coordinate{}, errors.Errorf("malformed geocoder point %q", pos)
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrapf(err, "malformed longitude in %q", pos)
	}

	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrapf(err, "malformed latitude in %q", pos)
	}

	return entity.NewCoordinate(lon, lat), nil
}
