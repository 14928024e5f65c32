// Package osrm считает дорожное расстояние через OSRM-совместимый сервис маршрутов.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/jimlawless/whereami"
)

const codeOK = "Ok"

type routeRes struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *cfg.DeliveryCfg) *Client {
	return &Client{
		baseURL:    cfg.OSRMURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// RoadDistanceKm возвращает длину первого маршрута в километрах.
// OSRM ждёт координаты в порядке lon,lat.
func (c *Client) RoadDistanceKm(ctx context.Context, from, to domain.Coordinates) (float64, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%s,%s;%s,%s?overview=false",
		c.baseURL,
		formatCoord(from.Lng), formatCoord(from.Lat),
		formatCoord(to.Lng), formatCoord(to.Lat),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%s: route service responded with status %d", whereami.WhereAmI(), resp.StatusCode)
	}

	var body routeRes
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	if body.Code != codeOK || len(body.Routes) == 0 {
		return 0, fmt.Errorf("%s: no route found, code %q", whereami.WhereAmI(), body.Code)
	}

	return body.Routes[0].Distance / 1000, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
