// Package paymentprovider реализует клиент Stripe API для создания
// повторяющихся цен и сессий оплаты. Ключ API передаётся при конструировании
// клиента и не хранится в глобальном состоянии пакета.
package paymentprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client клиент Stripe API.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент Stripe.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     "https://api.stripe.com/v1",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Stripe принимает form-encoded тело и Bearer авторизацию.
func (c *Client) newRequest(ctx context.Context, path string, form url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

// CreatePrice создаёт повторяющуюся цену. Сумма передаётся в минимальных
// единицах валюты (центах).
func (c *Client) CreatePrice(ctx context.Context, amountCents int64, currency, interval, productName string) (*Price, error) {
	const op = "paymentprovider.CreatePrice"

	form := url.Values{}
	form.Set("currency", currency)
	form.Set("unit_amount", strconv.FormatInt(amountCents, 10))
	form.Set("recurring[interval]", interval)
	form.Set("product_data[name]", productName)

	req, err := c.newRequest(ctx, "/prices", form)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var price Price
	if err := c.do(req, &price); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &price, nil
}

// CreateCheckoutSession создаёт сессию оплаты подписки для цены
// и возвращает её идентификатор и URL перенаправления.
func (c *Client) CreateCheckoutSession(ctx context.Context, priceID, successURL, cancelURL string) (*CheckoutSession, error) {
	const op = "paymentprovider.CreateCheckoutSession"

	form := url.Values{}
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("mode", "subscription")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)

	req, err := c.newRequest(ctx, "/checkout/sessions", form)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var session CheckoutSession
	if err := c.do(req, &session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &session, nil
}
