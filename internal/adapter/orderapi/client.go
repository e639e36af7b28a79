package orderapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/example/wb-order-client/internal/domain"
)

// Client выполняет поиск заказа по HTTP: GET {base}/api/v1/order/{id}.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger

	validate *validator.Validate
}

func NewClient(baseURL string, httpc *http.Client, log *zap.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		HTTP:     httpc,
		Log:      log,
		validate: validator.New(),
	}
}

// Get возвращает заказ или одну из доменных ошибок: ErrNotFound для 404,
// *BackendError для прочих неуспешных статусов, ErrMalformed для тела,
// которое не разбирается в заказ. Транспортные сбои оборачиваются как есть.
func (c *Client) Get(ctx context.Context, id string) (*domain.Order, error) {
	u := c.BaseURL + "/api/v1/order/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "perform request")
	}
	defer resp.Body.Close()

	c.Log.Debug("lookup response",
		zap.String("order_uid", id),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &domain.BackendError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}
	}

	var o domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
		return nil, errors.Wrap(domain.ErrMalformed, err.Error())
	}
	if err := c.validate.Struct(&o); err != nil {
		return nil, errors.Wrap(domain.ErrMalformed, err.Error())
	}
	return &o, nil
}

var _ domain.OrderSource = (*Client)(nil)
