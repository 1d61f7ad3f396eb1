package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scholar-portal/pkg/logger"
	"scholar-portal/pkg/models"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const maxResponseBody = 32 << 20

// StatusError is a non-2xx answer from a record service.
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend returned %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.StatusCode, e.Message)
}

type ClientOptions struct {
	PublicationAPI string
	PatentAPI      string
	Timeout        time.Duration
	// Retries is the number of extra attempts after a failed request. Zero
	// means one attempt only.
	Retries    int
	Log        *logrus.Logger
	HTTPClient *http.Client
}

// Client talks to the publication and patent services.
type Client struct {
	publicationAPI string
	patentAPI      string
	http           *retryablehttp.Client
	log            *logrus.Logger
}

func NewClient(opts ClientOptions) *Client {
	log := opts.Log
	if log == nil {
		log = logger.Log
	}

	rc := retryablehttp.NewClient()
	if opts.HTTPClient != nil {
		rc.HTTPClient = opts.HTTPClient
	}
	if opts.Timeout > 0 {
		rc.HTTPClient.Timeout = opts.Timeout
	}
	rc.RetryMax = opts.Retries
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 3 * time.Second
	rc.Logger = logger.RetryLogger{Log: log}
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		publicationAPI: strings.TrimRight(opts.PublicationAPI, "/"),
		patentAPI:      strings.TrimRight(opts.PatentAPI, "/"),
		http:           rc,
		log:            log,
	}
}

// ListPublications returns the publications a coordinator has to review.
func (c *Client) ListPublications(ctx context.Context, coordinatorID string) ([]models.Publication, error) {
	endpoint := c.publicationAPI + "/getAllPublications?coordinatorid=" + url.QueryEscape(coordinatorID)
	body, err := c.do(ctx, "list publications", http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	pubs, err := DecodePublications(body)
	if err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	return pubs, nil
}

func (c *Client) ApprovePublication(ctx context.Context, id string) error {
	endpoint := c.publicationAPI + "/approvePublication/" + url.PathEscape(id)
	_, err := c.do(ctx, "approve publication", http.MethodPut, endpoint, nil)
	return err
}

// RejectPublication sends the reason exactly as typed.
func (c *Client) RejectPublication(ctx context.Context, id, reason string) error {
	payload, err := json.Marshal(struct {
		RejectionReason string `json:"rejectionReason"`
	}{reason})
	if err != nil {
		return fmt.Errorf("reject publication: %w", err)
	}
	endpoint := c.publicationAPI + "/rejectPublication/" + url.PathEscape(id)
	_, err = c.do(ctx, "reject publication", http.MethodPut, endpoint, payload)
	return err
}

// ListPatents returns the patents owned by a faculty member.
func (c *Client) ListPatents(ctx context.Context, facultyID string) ([]models.Patent, error) {
	endpoint := c.patentAPI + "/getPatents/" + url.PathEscape(facultyID)
	body, err := c.do(ctx, "list patents", http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	patents, err := DecodePatents(body)
	if err != nil {
		return nil, fmt.Errorf("list patents: %w", err)
	}
	return patents, nil
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, payload []byte) ([]byte, error) {
	var rawBody interface{}
	if payload != nil {
		rawBody = payload
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, rawBody)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := AccessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if rid := RequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WithFields(logrus.Fields{
			"op":     op,
			"status": resp.StatusCode,
			"body":   string(body),
		}).Debug("Error response")
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}
	return body, nil
}

// errorMessage prefers a JSON error/message field, falling back to the raw text.
func errorMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		for _, key := range []string{"error", "message"} {
			if v := gjson.GetBytes(body, key); v.Type == gjson.String && v.Str != "" {
				return v.Str
			}
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 512 {
		msg = msg[:512] + "..."
	}
	return msg
}

type ctxKey int

const (
	accessTokenKey ctxKey = iota
	requestIDKey
)

// WithAccessToken makes outgoing backend calls carry a bearer token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, accessTokenKey, token)
}

func AccessToken(ctx context.Context) string {
	s, _ := ctx.Value(accessTokenKey).(string)
	return s
}

func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	s, _ := ctx.Value(requestIDKey).(string)
	return s
}
