// Package client provides an HTTP client for the finagent API.
package client

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
	"strings"

	"github.com/shopspring/decimal"

	"finagent/internal/analysis"
)

// APIError is a non-2xx response decoded from the API error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("unexpected status %d", e.Status)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Message, e.Status)
}

// IsCode reports whether err is an APIError carrying code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// User is the authenticated account.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Tokens is the result of a login or refresh.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// Asset is a registered instrument.
type Asset struct {
	ID        string `json:"id"`
	Ticker    string `json:"ticker"`
	Name      string `json:"name"`
	AssetType string `json:"asset_type"`
	Sector    string `json:"sector"`
}

// AssetPage is one page of the asset listing.
type AssetPage struct {
	Data       []Asset `json:"data"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalItems int64   `json:"total_items"`
	TotalPages int     `json:"total_pages"`
}

// NewAsset is the body for registering an asset.
type NewAsset struct {
	Ticker    string `json:"ticker"`
	Name      string `json:"name,omitempty"`
	AssetType string `json:"asset_type,omitempty"`
	Sector    string `json:"sector,omitempty"`
}

// Transaction is a ledger entry. Quantity and Price keep the server's exact
// decimal text.
type Transaction struct {
	ID              string          `json:"id"`
	AssetID         string          `json:"asset_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	TransactionDate string          `json:"transaction_date"`
}

// NewTransaction is the body for appending a ledger entry. Negative quantities
// are sales.
type NewTransaction struct {
	Quantity        decimal.Decimal `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	TransactionDate string          `json:"transaction_date"`
}

// RoutedAnswer is the router's reply with the agent it delegated to.
type RoutedAnswer struct {
	Agent  string `json:"agent"`
	Answer string `json:"answer"`
}

// FinagentClient communicates with the finagent API.
type FinagentClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewFinagentClient creates a client. token may be empty for login calls.
func NewFinagentClient(baseURL, token string, httpClient *http.Client) *FinagentClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &FinagentClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// Login exchanges credentials for a token pair.
func (c *FinagentClient) Login(ctx context.Context, email, password string) (*Tokens, error) {
	body := map[string]string{"email": email, "password": password}
	var tokens Tokens
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &tokens); err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	return &tokens, nil
}

// ListAssets fetches one page of registered assets.
func (c *FinagentClient) ListAssets(ctx context.Context, page, pageSize int) (*AssetPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	var result AssetPage
	if err := c.do(ctx, http.MethodGet, withQuery("/api/v1/assets", q), nil, &result); err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	return &result, nil
}

// CreateAsset registers an asset.
func (c *FinagentClient) CreateAsset(ctx context.Context, asset NewAsset) (*Asset, error) {
	var result struct {
		Asset Asset `json:"asset"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/assets", asset, &result); err != nil {
		return nil, fmt.Errorf("creating asset: %w", err)
	}
	return &result.Asset, nil
}

// AddTransaction appends a ledger entry to ticker.
func (c *FinagentClient) AddTransaction(ctx context.Context, ticker string, tx NewTransaction) (*Transaction, error) {
	var result struct {
		Transaction Transaction `json:"transaction"`
	}
	path := "/api/v1/assets/" + url.PathEscape(ticker) + "/transactions"
	if err := c.do(ctx, http.MethodPost, path, tx, &result); err != nil {
		return nil, fmt.Errorf("adding transaction: %w", err)
	}
	return &result.Transaction, nil
}

// ListTransactions fetches a window of ticker's ledger.
func (c *FinagentClient) ListTransactions(ctx context.Context, ticker string, skip, limit int) ([]Transaction, error) {
	q := url.Values{}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var result struct {
		Transactions []Transaction `json:"transactions"`
	}
	path := withQuery("/api/v1/assets/"+url.PathEscape(ticker)+"/transactions", q)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return result.Transactions, nil
}

// Analyze fetches the position report for ticker.
func (c *FinagentClient) Analyze(ctx context.Context, ticker string) (*analysis.Report, error) {
	var report analysis.Report
	path := "/api/v1/assets/" + url.PathEscape(ticker) + "/analysis"
	if err := c.do(ctx, http.MethodGet, path, nil, &report); err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", ticker, err)
	}
	return &report, nil
}

// AnalyzePortfolio fetches a report for every asset.
func (c *FinagentClient) AnalyzePortfolio(ctx context.Context) ([]analysis.Report, error) {
	var result struct {
		Analyses []analysis.Report `json:"analyses"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/portfolio/analysis", nil, &result); err != nil {
		return nil, fmt.Errorf("analyzing portfolio: %w", err)
	}
	return result.Analyses, nil
}

// Ask sends question to a named agent.
func (c *FinagentClient) Ask(ctx context.Context, agentName, question string) (string, error) {
	var result struct {
		Answer string `json:"answer"`
	}
	body := map[string]string{"question": question}
	if err := c.do(ctx, http.MethodPost, "/api/v1/agent/query/"+url.PathEscape(agentName), body, &result); err != nil {
		return "", fmt.Errorf("querying %s: %w", agentName, err)
	}
	return result.Answer, nil
}

// Route sends question to the router agent.
func (c *FinagentClient) Route(ctx context.Context, question string) (*RoutedAnswer, error) {
	var result RoutedAnswer
	body := map[string]string{"question": question}
	if err := c.do(ctx, http.MethodPost, "/api/v1/agent/query/router", body, &result); err != nil {
		return nil, fmt.Errorf("querying router: %w", err)
	}
	return &result, nil
}

func (c *FinagentClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
