// Package backend содержит HTTP-клиент API меню и заказов, через который витрина получает каталог и отправляет заказы.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/jitter"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

const maxErrorBodySize = 64 << 10

// Client ходит в API по BaseURL. GET-запросы повторяются при сетевых ошибках и 5xx,
// POST отправляется ровно один раз: повтор создания заказа может задвоить заказ.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryBase  time.Duration
	retryMax   time.Duration
	logger     logger.Logger
}

func NewClient(cfg *cfg.BackendCfg, logger logger.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
		retryBase:  cfg.RetryBase,
		retryMax:   cfg.RetryMax,
		logger:     logger,
	}
}

var (
	_ usecase.BackendCatalogAPI = (*Client)(nil)
	_ usecase.BackendOrderAPI   = (*Client)(nil)
)

func (c *Client) GetCategories(ctx context.Context, restaurantID int64) ([]domain.Category, error) {
	const op = "backend.Client.GetCategories"

	var dtos []categoryDTO
	query := url.Values{"restaurant_id": {strconv.FormatInt(restaurantID, 10)}}
	if err := c.getJSON(ctx, "/products/categories", query, &dtos); err != nil {
		return nil, e.Wrap(op, err)
	}

	out := make([]domain.Category, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toEntity())
	}

	return out, nil
}

func (c *Client) GetProducts(ctx context.Context, restaurantID int64) ([]domain.Product, error) {
	const op = "backend.Client.GetProducts"

	var dtos []productDTO
	query := url.Values{"restaurant_id": {strconv.FormatInt(restaurantID, 10)}}
	if err := c.getJSON(ctx, "/products", query, &dtos); err != nil {
		return nil, e.Wrap(op, err)
	}

	out := make([]domain.Product, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toEntity())
	}

	return out, nil
}

func (c *Client) GetRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	const op = "backend.Client.GetRestaurants"

	var dtos []restaurantDTO
	if err := c.getJSON(ctx, "/products/restaurants/list", nil, &dtos); err != nil {
		return nil, e.Wrap(op, err)
	}

	out := make([]domain.Restaurant, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toEntity())
	}

	return out, nil
}

func (c *Client) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	const op = "backend.Client.GetRestaurant"

	var dto restaurantDTO
	if err := c.getJSON(ctx, "/products/restaurant/"+strconv.FormatInt(id, 10), nil, &dto); err != nil {
		if isNotFound(err) {
			return nil, e.Wrap(op, e.ErrRestaurantNotFound)
		}
		return nil, e.Wrap(op, err)
	}

	r := dto.toEntity()
	return &r, nil
}

// CreateOrder отправляет черновик заказа. Не-2xx ответ возвращается как *e.APIError
// с текстом из поля error, если бэкенд его прислал.
func (c *Client) CreateOrder(ctx context.Context, draft *domain.OrderDraft) (*domain.OrderAck, error) {
	const op = "backend.Client.CreateOrder"

	var res createOrderRes
	if err := c.postJSON(ctx, "/orders", newCreateOrderReq(draft), &res); err != nil {
		return nil, e.Wrap(op, err)
	}

	return res.toAck(), nil
}

func (c *Client) CalculateDelivery(ctx context.Context, req *usecase.DeliveryCalcReq) (*domain.DeliveryQuote, error) {
	const op = "backend.Client.CalculateDelivery"

	body := deliveryCalcReq{
		RestaurantID: req.RestaurantID,
		CustomerLat:  req.Customer.Lat,
		CustomerLng:  req.Customer.Lng,
	}

	var res deliveryCalcRes
	if err := c.postJSON(ctx, "/delivery/calculate", body, &res); err != nil {
		if isNotFound(err) {
			return nil, e.Wrap(op, e.ErrRestaurantNotFound)
		}
		return nil, e.Wrap(op, err)
	}

	return res.toQuote(), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			sleep := jitter.ExponentialBackoff(c.retryBase, c.retryMax, attempt-1, jitter.DefaultJitter)
			c.logger.Warnf("GET %s failed, retrying in %v (attempt %d): %v", path, sleep, attempt, lastErr)

			select {
			case <-time.After(sleep):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		lastErr = c.do(req, out)
		if lastErr == nil || !retryable(lastErr) || ctx.Err() != nil {
			return lastErr
		}
	}

	return lastErr
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", e.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", e.ErrBackendUnavailable, req.Method, req.URL.Path, err)
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var body errorRes
	if err := json.Unmarshal(raw, &body); err != nil {
		return e.NewAPIError(resp.StatusCode, "")
	}

	return e.NewAPIError(resp.StatusCode, body.Error)
}

// retryable: сетевые ошибки и 5xx. 4xx повторять бессмысленно.
func retryable(err error) bool {
	var apiErr *e.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}

	return errors.Is(err, e.ErrBackendUnavailable)
}

func isNotFound(err error) bool {
	var apiErr *e.APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
