package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	sandboxBaseURL    = "https://sandbox.sslcommerz.com"
	productionBaseURL = "https://securepay.sslcommerz.com"
)

type SSLCommerzClient struct {
	storeID     string
	storePasswd string
	baseURL     string
	frontend    string
	httpClient  *http.Client
}

func NewSSLCommerzClient(storeID, storePasswd string, sandbox bool, frontend string) *SSLCommerzClient {
	base := productionBaseURL
	if sandbox {
		base = sandboxBaseURL
	}
	return &SSLCommerzClient{
		storeID:     storeID,
		storePasswd: storePasswd,
		baseURL:     base,
		frontend:    frontend,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled: без store_id работаем в демо-режиме, сессию в шлюзе не создаем
func (c *SSLCommerzClient) Enabled() bool {
	return c.storeID != ""
}

type SessionRequest struct {
	TranID        string
	Amount        decimal.Decimal
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ProductName   string

	// Сквозные поля, шлюз вернет их в IPN как value_a..value_d
	UserID   string
	CourseID string
	CouponID string
}

type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// CreateSession создает платежную сессию и возвращает URL страницы оплаты
func (c *SSLCommerzClient) CreateSession(ctx context.Context, req SessionRequest) (string, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePasswd)
	form.Set("total_amount", req.Amount.StringFixed(2))
	form.Set("currency", "BDT")
	form.Set("tran_id", req.TranID)
	form.Set("success_url", c.frontend+"/payment/success")
	form.Set("fail_url", c.frontend+"/payment/fail")
	form.Set("cancel_url", c.frontend+"/payment/cancel")
	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)
	form.Set("cus_phone", req.CustomerPhone)
	form.Set("cus_add1", "Dhaka")
	form.Set("cus_city", "Dhaka")
	form.Set("cus_country", "Bangladesh")
	form.Set("shipping_method", "NO")
	form.Set("product_name", req.ProductName)
	form.Set("product_category", "elearning")
	form.Set("product_profile", "non-physical-goods")
	form.Set("value_a", req.UserID)
	form.Set("value_b", req.CourseID)
	form.Set("value_d", req.CouponID)

	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		c.baseURL+"/gwprocess/v4/api.php",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var sr sessionResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return "", fmt.Errorf("sslcommerz: bad response: %w", err)
	}

	if sr.Status != "SUCCESS" || sr.GatewayPageURL == "" {
		return "", fmt.Errorf("sslcommerz: session rejected: %s", sr.FailedReason)
	}

	return sr.GatewayPageURL, nil
}
