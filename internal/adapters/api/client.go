package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/services"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxErrorBody caps how much of an error body is read into a message
const maxErrorBody = 64 << 10

// Client talks to the gold-loan REST API
type Client struct {
	baseURL string
	http    *http.Client
}

var _ services.Backend = (*Client)(nil)

// NewClient creates an API client. timeout 0 disables the client timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithTransport(baseURL, timeout, http.DefaultTransport)
}

// NewClientWithTransport creates an API client over a custom base transport
func NewClientWithTransport(baseURL string, timeout time.Duration, base http.RoundTripper) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(&bearerTransport{base: base}),
		},
	}
}

// ============================================================
// Auth (public)
// ============================================================

func (c *Client) RegisterCustomer(ctx context.Context, in domain.Registration) error {
	return c.do(ctx, http.MethodPost, "/auth/register/customer", in, nil, nil)
}

func (c *Client) Login(ctx context.Context, role domain.Role, in domain.Credentials) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login/"+string(role)+"/password", in, &resp, nil); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) ForgotPassword(ctx context.Context, role domain.Role, in domain.PasswordReset) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-password/"+string(role), in, nil, nil)
}

// ChangePassword sets the bearer explicitly because /auth/ paths are never intercepted
func (c *Client) ChangePassword(ctx context.Context, role domain.Role, credential string, in domain.PasswordChange) error {
	hdr := http.Header{"Authorization": {"Bearer " + credential}}
	return c.do(ctx, http.MethodPost, "/auth/"+string(role)+"/change-password", in, nil, hdr)
}

// ============================================================
// Profiles
// ============================================================

func (c *Client) CustomerProfile(ctx context.Context) (*domain.CustomerProfile, error) {
	var p domain.CustomerProfile
	if err := c.do(ctx, http.MethodGet, "/customer/profile", nil, &p, nil); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) EmployeeProfile(ctx context.Context) (*domain.EmployeeProfile, error) {
	var p domain.EmployeeProfile
	if err := c.do(ctx, http.MethodGet, "/customer/employee/profile", nil, &p, nil); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CustomerDetails(ctx context.Context) (*domain.CustomerDetails, error) {
	var d domain.CustomerDetails
	if err := c.do(ctx, http.MethodGet, "/customer/loan-details-prefill", nil, &d, nil); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) SubmitKYC(ctx context.Context, in domain.KYCRequest) (*domain.KYCResult, error) {
	var r domain.KYCResult
	if err := c.do(ctx, http.MethodPost, "/kyc/verify", in, &r, nil); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) CreateEmployee(ctx context.Context, in domain.NewEmployee) error {
	return c.do(ctx, http.MethodPost, "/customer/employee/create", in, nil, nil)
}

// ============================================================
// Loans
// ============================================================

// SubmitApplication returns the backend's plain-text confirmation
func (c *Client) SubmitApplication(ctx context.Context, in domain.LoanApplication) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodPost, "/customer/loan-application", in, &msg, nil); err != nil {
		return "", err
	}
	return msg, nil
}

func (c *Client) CustomerLoans(ctx context.Context) ([]domain.Loan, error) {
	var loans []domain.Loan
	if err := c.do(ctx, http.MethodGet, "/customer/loans", nil, &loans, nil); err != nil {
		return nil, err
	}
	return loans, nil
}

func (c *Client) EmployeeLoans(ctx context.Context) ([]domain.Loan, error) {
	var loans []domain.Loan
	if err := c.do(ctx, http.MethodGet, "/customer/employee/loans", nil, &loans, nil); err != nil {
		return nil, err
	}
	return loans, nil
}

func (c *Client) CustomerLoan(ctx context.Context, rid string) (*domain.LoanDetails, error) {
	var d domain.LoanDetails
	if err := c.do(ctx, http.MethodGet, "/customer/loan/"+url.PathEscape(rid), nil, &d, nil); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) EmployeeLoan(ctx context.Context, rid string) (*domain.LoanDetails, error) {
	var d domain.LoanDetails
	if err := c.do(ctx, http.MethodGet, "/customer/employee/loan/"+url.PathEscape(rid), nil, &d, nil); err != nil {
		return nil, err
	}
	return &d, nil
}

// ============================================================
// Employee transitions
// ============================================================

func (c *Client) UpdateStatus(ctx context.Context, rid string, in services.StatusUpdate) error {
	return c.do(ctx, http.MethodPost, "/customer/employee/loan/"+url.PathEscape(rid)+"/status", in, nil, nil)
}

func (c *Client) Evaluate(ctx context.Context, rid string, in services.Evaluation) error {
	return c.do(ctx, http.MethodPost, "/customer/employee/loan/"+url.PathEscape(rid)+"/evaluate", in, nil, nil)
}

func (c *Client) Disburse(ctx context.Context, rid string) error {
	return c.do(ctx, http.MethodPost, "/customer/employee/loan/"+url.PathEscape(rid)+"/disburse", struct{}{}, nil, nil)
}

func (c *Client) CollectGold(ctx context.Context, rid string) error {
	return c.do(ctx, http.MethodPost, "/customer/employee/loan/"+url.PathEscape(rid)+"/collect-gold", struct{}{}, nil, nil)
}

// ============================================================
// Customer transitions
// ============================================================

func (c *Client) SubmitGold(ctx context.Context, rid string) error {
	return c.do(ctx, http.MethodPost, "/customer/loan/submit-gold/"+url.PathEscape(rid), struct{}{}, nil, nil)
}

func (c *Client) OfferDecision(ctx context.Context, rid string, status domain.LoanStatus) error {
	body := map[string]domain.LoanStatus{"newStatus": status}
	return c.do(ctx, http.MethodPost, "/customer/loan/offer-decision/"+url.PathEscape(rid), body, nil, nil)
}

func (c *Client) PayFine(ctx context.Context, rid string, amount float64) error {
	body := map[string]float64{"fineAmount": amount}
	return c.do(ctx, http.MethodPost, "/customer/loan/pay-fine/"+url.PathEscape(rid), body, nil, nil)
}

func (c *Client) ReApply(ctx context.Context, rid string) error {
	body := map[string]domain.LoanStatus{"newStatus": domain.StatusPending}
	return c.do(ctx, http.MethodPost, "/customer/loan/"+url.PathEscape(rid)+"/status", body, nil, nil)
}

// ============================================================
// Bullion (public)
// ============================================================

func (c *Client) GoldRates(ctx context.Context) ([]domain.GoldRate, error) {
	var rates []domain.GoldRate
	if err := c.do(ctx, http.MethodGet, "/bullion/rates", nil, &rates, nil); err != nil {
		return nil, err
	}
	return rates, nil
}

// ============================================================
// Plumbing
// ============================================================

// do sends one request. out may be nil (body discarded), *string (plain
// text) or any JSON target.
func (c *Client) do(ctx context.Context, method, path string, in, out any, hdr http.Header) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json, text/plain")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range hdr {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ API %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: %s %s: %v", domain.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &domain.APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
		log.Printf("⚠️  API %s %s -> %d", method, path, resp.StatusCode)
		return apiErr
	}

	switch target := out.(type) {
	case nil:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case *string:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", domain.ErrTransport, path, err)
		}
		*target = strings.TrimSpace(string(raw))
		return nil
	default:
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("%w: decode %s: %v", domain.ErrTransport, path, err)
		}
		return nil
	}
}

// errorMessage pulls the human message out of an error body. The backend
// answers either plain text or {"message": ...}/{"error": ...}.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if strings.HasPrefix(text, "{") {
		if json.Unmarshal(raw, &envelope) == nil {
			if envelope.Message != "" {
				return envelope.Message
			}
			return envelope.Error
		}
	}
	return text
}
