package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jb131997/gymdesk/models"
)

const defaultBaseURL = "https://api.stripe.com"

// ClientConfig carries the settings of the Connect API client.
type ClientConfig struct {
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
}

type httpClient struct {
	client *resty.Client
}

// NewClient builds the production [Client] backed by resty.
func NewClient(cfg ClientConfig) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.SecretKey).
		SetHeader("Content-Type", "application/x-www-form-urlencoded")

	return &httpClient{client: cli}
}

func (c *httpClient) CreateAccount(ctx context.Context, email, profileID string) (models.StripeAccount, error) {
	var account models.StripeAccount

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"type":  "express",
			"email": email,
			"capabilities[card_payments][requested]": "true",
			"capabilities[transfers][requested]":     "true",
			"metadata[profile_id]":                   profileID,
		}).
		Post("/v1/accounts")
	if err != nil {
		return models.StripeAccount{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.StripeAccount{}, err
	}

	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return models.StripeAccount{}, fmt.Errorf("decode account response: %w", err)
	}
	return account, nil
}

func (c *httpClient) RetrieveAccount(ctx context.Context, accountID string) (models.StripeAccount, error) {
	var account models.StripeAccount

	resp, err := c.client.R().
		SetContext(ctx).
		Get("/v1/accounts/" + accountID)
	if err != nil {
		return models.StripeAccount{}, fmt.Errorf("retrieve account request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.StripeAccount{}, err
	}

	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return models.StripeAccount{}, fmt.Errorf("decode account response: %w", err)
	}
	return account, nil
}

func (c *httpClient) CreateAccountSession(ctx context.Context, accountID string) (models.StripeAccountSession, error) {
	var session models.StripeAccountSession

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"account": accountID,
			"components[notification_banner][enabled]":                                  "true",
			"components[notification_banner][features][external_account_collection]":    "true",
			"components[account_onboarding][enabled]":                                   "true",
			"components[account_onboarding][features][external_account_collection]":     "true",
			"components[account_management][enabled]":                                   "true",
			"components[account_management][features][external_account_collection]":     "true",
		}).
		Post("/v1/account_sessions")
	if err != nil {
		return models.StripeAccountSession{}, fmt.Errorf("create account session request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.StripeAccountSession{}, err
	}

	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.StripeAccountSession{}, fmt.Errorf("decode account session response: %w", err)
	}
	return session, nil
}

func (c *httpClient) CreateProduct(ctx context.Context, accountID, name, description string) (models.StripeProduct, error) {
	var product models.StripeProduct

	resp, err := c.connectedRequest(ctx, accountID).
		SetFormData(map[string]string{
			"name":        name,
			"description": description,
		}).
		Post("/v1/products")
	if err != nil {
		return models.StripeProduct{}, fmt.Errorf("create product request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.StripeProduct{}, err
	}

	if err = json.Unmarshal(resp.Body(), &product); err != nil {
		return models.StripeProduct{}, fmt.Errorf("decode product response: %w", err)
	}
	return product, nil
}

func (c *httpClient) CreatePrice(ctx context.Context, accountID, productID string, unitAmount int64, currency string, recurring *models.StripeRecurring) (models.StripePrice, error) {
	var price models.StripePrice

	form := map[string]string{
		"product":     productID,
		"unit_amount": strconv.FormatInt(unitAmount, 10),
		"currency":    strings.ToLower(currency),
	}
	if recurring != nil {
		form["recurring[interval]"] = recurring.Interval
		if recurring.IntervalCount > 1 {
			form["recurring[interval_count]"] = strconv.Itoa(recurring.IntervalCount)
		}
	}

	resp, err := c.connectedRequest(ctx, accountID).
		SetFormData(form).
		Post("/v1/prices")
	if err != nil {
		return models.StripePrice{}, fmt.Errorf("create price request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.StripePrice{}, err
	}

	if err = json.Unmarshal(resp.Body(), &price); err != nil {
		return models.StripePrice{}, fmt.Errorf("decode price response: %w", err)
	}
	return price, nil
}

func (c *httpClient) CreatePaymentLink(ctx context.Context, accountID, priceID string) (models.StripePaymentLink, error) {
	var link models.StripePaymentLink

	resp, err := c.connectedRequest(ctx, accountID).
		SetFormData(map[string]string{
			"line_items[0][price]":    priceID,
			"line_items[0][quantity]": "1",
		}).
		Post("/v1/payment_links")
	if err != nil {
		return models.StripePaymentLink{}, fmt.Errorf("create payment link request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.StripePaymentLink{}, err
	}

	if err = json.Unmarshal(resp.Body(), &link); err != nil {
		return models.StripePaymentLink{}, fmt.Errorf("decode payment link response: %w", err)
	}
	return link, nil
}

// connectedRequest targets a request at a connected account via the
// Stripe-Account header.
func (c *httpClient) connectedRequest(ctx context.Context, accountID string) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if accountID != "" {
		req.SetHeader("Stripe-Account", accountID)
	}
	return req
}

// errorEnvelope is the provider's error body: {"error": {...}}.
type errorEnvelope struct {
	Error APIError `json:"error"`
}

func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error.Message != "" {
		envelope.Error.StatusCode = resp.StatusCode()
		if resp.StatusCode() == http.StatusNotFound &&
			strings.Contains(strings.ToLower(envelope.Error.Message), "account") {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, envelope.Error.Message)
		}
		return &envelope.Error
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("stripe http %d: %s", resp.StatusCode(), body)
}
