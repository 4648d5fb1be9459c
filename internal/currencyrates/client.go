// Package currencyrates реализует клиент внешнего сервиса курсов валют
// для конвертации сумм платежей.
package currencyrates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client клиент API курсов валют.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент сервиса курсов валют.
func NewClient(apiURL string) *Client {
	return &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type ratesResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Rates  map[string]float64 `json:"rates"`
}

// Convert конвертирует сумму из одной валюты в другую по текущему курсу.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	const op = "currencyrates.Convert"

	query := url.Values{}
	query.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	query.Set("from", from)
	query.Set("to", to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiURL+"/latest?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var rates ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	converted, ok := rates.Rates[to]
	if !ok {
		return 0, fmt.Errorf("%s: no rate for currency %s", op, to)
	}
	return converted, nil
}
