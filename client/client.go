// Package client is the Go SDK for the printdesk REST API. It mirrors the
// endpoint set of the server and passes server error messages through to the
// caller verbatim.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"printdesk/internal/domain/entity"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Client talks to one printdesk server. The zero value is not usable; use New.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the Bearer token sent on authenticated calls.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetToken swaps the Bearer token after a login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx response from the server. Message carries the
// server's user-facing text unchanged.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}

	return e.Message
}

// envelope mirrors the server's unified response structure.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorInfo      `json:"error,omitempty"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// RegisterShop creates a new shop owner account.
func (c *Client) RegisterShop(ctx context.Context, input *usecase.RegisterShopOwnerInput) (*entity.User, error) {
	body := map[string]string{
		"name":        input.Name,
		"email":       input.Email,
		"password":    input.Password,
		"phoneNumber": input.PhoneNumber,
		"shopName":    input.ShopName,
	}

	var user entity.User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login exchanges credentials for an access token and the user payload.
// The token is retained for subsequent authenticated calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}

	c.token = result.Token

	return &result, nil
}

// Logout tells the server the session ended and drops the local token.
// Logout is optimistic: a transport failure still clears the token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.token = ""

	return err
}

// GetUser fetches one user's profile.
func (c *Client) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/user/"+id.String(), nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUser changes profile fields. Empty fields are left untouched.
func (c *Client) UpdateUser(ctx context.Context, id uuid.UUID, name, phoneNumber, shopName string) (*entity.User, error) {
	body := map[string]string{
		"name":        name,
		"phoneNumber": phoneNumber,
		"shopName":    shopName,
	}

	var user entity.User
	if err := c.doJSON(ctx, http.MethodPut, "/auth/update-user/"+id.String(), body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// ShopQR fetches the PNG QR code linking to the shop's upload page.
func (c *Client) ShopQR(ctx context.Context, shopOwnerID uuid.UUID) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/generate-qr/"+shopOwnerID.String(), nil, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch shop QR")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read QR response")
	}

	return png, nil
}

// ListPricing returns the shop's pricing rules.
func (c *Client) ListPricing(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PricingConfig, error) {
	var rules []*entity.PricingConfig
	if err := c.doJSON(ctx, http.MethodGet, "/auth/pricing-config/"+shopOwnerID.String(), nil, &rules); err != nil {
		return nil, err
	}

	return rules, nil
}

// CreatePricing adds a pricing rule to the caller's shop.
func (c *Client) CreatePricing(ctx context.Context, paperType string, printType entity.PrintType, singleSided, doubleSided float64) (*entity.PricingConfig, error) {
	body := map[string]any{
		"paperType":   paperType,
		"printType":   printType,
		"singleSided": singleSided,
		"doubleSided": doubleSided,
	}

	var rule entity.PricingConfig
	if err := c.doJSON(ctx, http.MethodPost, "/photocopycenter/pricing-config", body, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

// UpdatePricing changes the prices of an existing rule.
func (c *Client) UpdatePricing(ctx context.Context, id uuid.UUID, singleSided, doubleSided float64) (*entity.PricingConfig, error) {
	body := map[string]any{
		"singleSided": singleSided,
		"doubleSided": doubleSided,
	}

	var rule entity.PricingConfig
	if err := c.doJSON(ctx, http.MethodPut, "/photocopycenter/edit-pricing-config/"+id.String(), body, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

// DeletePricing removes a rule.
func (c *Client) DeletePricing(ctx context.Context, id uuid.UUID) error {
	return c.doJSON(ctx, http.MethodDelete, "/auth/delete-pricing-config/"+id.String(), nil, nil)
}

// ListShopJobs returns the shop's jobs, newest first.
func (c *Client) ListShopJobs(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PrintJob, error) {
	var jobs []*entity.PrintJob
	if err := c.doJSON(ctx, http.MethodGet, "/printshop/shop-files/"+shopOwnerID.String(), nil, &jobs); err != nil {
		return nil, err
	}

	return jobs, nil
}

// UpdateJobStatus applies a forward-only status transition.
func (c *Client) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status entity.JobStatus) (*entity.PrintJob, error) {
	body := map[string]string{"status": status.String()}

	var job entity.PrintJob
	if err := c.doJSON(ctx, http.MethodPatch, "/printshop/print-jobs/"+jobID.String()+"/status", body, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

// UploadFile is one document of a job submission.
type UploadFile struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// SubmitJobInput carries the metadata of an anonymous job submission.
type SubmitJobInput struct {
	ShopOwnerID   uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	NoofCopies    int
	PrintType     entity.PrintType
	PaperType     string
	PrintSide     entity.PrintSide
	SpecificPages string
	TotalPages    int
	Files         []UploadFile
}

// SubmitJob uploads files and metadata as multipart/form-data, the same call
// the customer upload page makes.
func (c *Client) SubmitJob(ctx context.Context, input *SubmitJobInput) (*entity.PrintJob, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"shopOwnerId":   input.ShopOwnerID.String(),
		"customerName":  input.CustomerName,
		"customerEmail": input.CustomerEmail,
		"customerPhone": input.CustomerPhone,
		"noofCopies":    fmt.Sprintf("%d", input.NoofCopies),
		"printType":     string(input.PrintType),
		"paperType":     input.PaperType,
		"printSide":     string(input.PrintSide),
		"specificPages": input.SpecificPages,
		"totalPages":    fmt.Sprintf("%d", input.TotalPages),
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, errors.Wrap(err, "failed to write form field")
		}
	}

	for _, f := range input.Files {
		part, err := mw.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create form file")
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, errors.Wrap(err, "failed to copy file content")
		}
	}

	if err := mw.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/printshop/print-jobs", &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var job entity.PrintJob
	if err := c.doRequest(req, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

// SubmitContact sends a support request.
func (c *Client) SubmitContact(ctx context.Context, name, email, subject, message string) error {
	body := map[string]string{
		"name":    name,
		"email":   email,
		"subject": subject,
		"message": message,
	}

	return c.doJSON(ctx, http.MethodPost, "/contact", body, nil)
}

// AdminListUsers returns every registered user. ADMIN only.
func (c *Client) AdminListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// AdminStats returns platform-wide aggregate counters. ADMIN only.
func (c *Client) AdminStats(ctx context.Context) (*usecase.AdminStatsOutput, error) {
	var stats usecase.AdminStatsOutput
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/stats", nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// Health probes the server.
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader, "application/json")
	if err != nil {
		return err
	}

	return c.doRequest(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

func (c *Client) doRequest(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request to %s failed", req.URL.Path)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}

		return errors.Wrap(err, "failed to decode response envelope")
	}

	if !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Details = env.Error.Details
		}

		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "failed to decode response data")
		}
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Message == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	if env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Details = env.Error.Details
	}

	return apiErr
}
