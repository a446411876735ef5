package dollarrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnavailable = errors.New("cotización del dólar no disponible")

// Rate representa una cotización del dólar
type Rate struct {
	Buy       decimal.Decimal `json:"buy"`
	Sell      decimal.Decimal `json:"sell"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Client obtiene la cotización con una caché de TTL corto. La caché es un
// objeto inyectado, no un singleton a nivel de módulo.
type Client struct {
	httpClient *http.Client
	url        string
	ttl        time.Duration

	mu     sync.Mutex
	cached *Rate
}

// NewClient crea un cliente de cotización. Con ttl cero se usa un minuto.
func NewClient(httpClient *http.Client, url string, ttl time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Client{
		httpClient: httpClient,
		url:        url,
		ttl:        ttl,
	}
}

// apiResponse es la forma del JSON que expone el proveedor de cotizaciones
type apiResponse struct {
	Buy  string `json:"compra"`
	Sell string `json:"venta"`
}

// Get devuelve la cotización vigente, usando la caché si todavía no venció
func (c *Client) Get(ctx context.Context) (*Rate, error) {
	c.mu.Lock()
	if c.cached != nil && time.Since(c.cached.FetchedAt) < c.ttl {
		rate := *c.cached
		c.mu.Unlock()
		return &rate, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error al armar la petición de cotización: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("error al leer la cotización: %w", err)
	}

	buy, err := decimal.NewFromString(body.Buy)
	if err != nil {
		return nil, fmt.Errorf("cotización de compra inválida: %w", err)
	}

	sell, err := decimal.NewFromString(body.Sell)
	if err != nil {
		return nil, fmt.Errorf("cotización de venta inválida: %w", err)
	}

	rate := &Rate{
		Buy:       buy,
		Sell:      sell,
		FetchedAt: time.Now().UTC(),
	}

	c.mu.Lock()
	c.cached = rate
	c.mu.Unlock()

	return rate, nil
}
