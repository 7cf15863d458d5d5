package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"sportreg/internal/domain"
)

// maxBody bounds how much of a reply is read.
const maxBody = 1 << 20

// HTTP talks to a sportreg server rooted at Base.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil httpClient uses http.DefaultClient.
func NewHTTP(base string, httpClient *http.Client) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

// Signup creates an account.
func (c *HTTP) Signup(ctx context.Context, username, password, confirmPassword string) (domain.Notification, error) {
	return c.postForm(ctx, "/register", domain.FormSubmission{Fields: []domain.FormField{
		{Name: "username", Value: username},
		{Name: "password", Value: password},
		{Name: "confirm_password", Value: confirmPassword},
	}})
}

// Login signs in; the session cookie lands in the client's jar.
func (c *HTTP) Login(ctx context.Context, username, password string) (domain.Notification, error) {
	return c.postForm(ctx, "/login", domain.FormSubmission{Fields: []domain.FormField{
		{Name: "username", Value: username},
		{Name: "password", Value: password},
	}})
}

// Logout ends the session.
func (c *HTTP) Logout(ctx context.Context) (domain.Notification, error) {
	var out domain.Notification
	if err := c.do(ctx, http.MethodGet, "/logout", nil, "", &out); err != nil {
		return domain.Notification{}, err
	}
	return out, nil
}

// RegisterSport posts a registration form.
func (c *HTTP) RegisterSport(ctx context.Context, submission domain.FormSubmission) (domain.Notification, error) {
	return c.postForm(ctx, "/register_sport", submission)
}

type registrantsReply struct {
	Registrants []domain.Registrant `json:"registrants"`
}

// Registrants lists every registration. A refusal from the server is
// returned as an error carrying the server's message.
func (c *HTTP) Registrants(ctx context.Context) ([]domain.Registrant, error) {
	body, err := c.raw(ctx, http.MethodGet, "/api/registrants")
	if err != nil {
		return nil, err
	}
	if body.status/100 != 2 {
		var n domain.Notification
		if err := json.Unmarshal(body.data, &n); err != nil || n.Message == "" {
			return nil, fmt.Errorf("api get /api/registrants: %s", body.statusText)
		}
		return nil, fmt.Errorf("api get /api/registrants: %s", n.Message)
	}
	var out registrantsReply
	if err := json.Unmarshal(body.data, &out); err != nil {
		return nil, fmt.Errorf("%w: GET /api/registrants: %v", domain.ErrMalformedResponse, err)
	}
	return out.Registrants, nil
}

func (c *HTTP) postForm(ctx context.Context, path string, submission domain.FormSubmission) (domain.Notification, error) {
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	for _, f := range submission.Fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return domain.Notification{}, err
		}
	}
	if err := mw.Close(); err != nil {
		return domain.Notification{}, err
	}

	var out domain.Notification
	if err := c.do(ctx, http.MethodPost, path, buf, mw.FormDataContentType(), &out); err != nil {
		return domain.Notification{}, err
	}
	return out, nil
}

// do sends the request and decodes the JSON reply into out regardless of the
// HTTP status.
func (c *HTTP) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("api %s %s: %w", strings.ToLower(method), path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s (%s): %v", domain.ErrMalformedResponse, method, path, resp.Status, err)
	}
	return nil
}

type rawReply struct {
	status     int
	statusText string
	data       []byte
}

func (c *HTTP) raw(ctx context.Context, method, path string) (rawReply, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, nil)
	if err != nil {
		return rawReply{}, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return rawReply{}, fmt.Errorf("api %s %s: %w", strings.ToLower(method), path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return rawReply{}, err
	}
	return rawReply{status: resp.StatusCode, statusText: resp.Status, data: data}, nil
}

var _ domain.APIClient = (*HTTP)(nil)
