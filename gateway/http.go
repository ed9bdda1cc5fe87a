// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/danielhkuo/stimmie/models"
)

// DefaultTimeout bounds each request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

const interviewsPath = "/api/interviews"

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 4 << 10

// HTTPGateway talks to the survey API over HTTP. Requests are not retried.
type HTTPGateway struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	reads   singleflight.Group
}

func NewHTTP(baseURL string, timeout time.Duration) *HTTPGateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()},
	}
}

// WriteResponse posts rec to the API.
func (g *HTTPGateway) WriteResponse(ctx context.Context, rec models.ResponseRecord) error {
	const op = "write interview"

	body, err := json.Marshal(rec)
	if err != nil {
		return g.fail(op, KindEncode, 0, err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+interviewsPath, bytes.NewReader(body))
	if err != nil {
		return g.fail(op, KindTransport, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return g.fail(op, classify(err), 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return g.fail(op, KindStatus, resp.StatusCode, errorBody(resp.Body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	slog.Debug("Interview written", "url", g.baseURL)
	return nil
}

// ReadAllResponses fetches every record. A body that is not a JSON array
// yields an empty collection. Concurrent calls share one request, which is
// detached from any single caller's cancellation and bounded by the gateway
// timeout; a caller whose context ends stops waiting without failing the rest.
func (g *HTTPGateway) ReadAllResponses(ctx context.Context) ([]models.ResponseRecord, error) {
	ch := g.reads.DoChan(interviewsPath, func() (any, error) {
		return g.readAll(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]models.ResponseRecord)), nil
	case <-ctx.Done():
		return nil, g.fail("read interviews", classify(ctx.Err()), 0, ctx.Err())
	}
}

func (g *HTTPGateway) readAll(ctx context.Context) ([]models.ResponseRecord, error) {
	const op = "read interviews"

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+interviewsPath, nil)
	if err != nil {
		return nil, g.fail(op, KindTransport, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, g.fail(op, classify(err), 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, g.fail(op, KindStatus, resp.StatusCode, errorBody(resp.Body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		kind := classify(err)
		if kind == KindTransport {
			kind = KindDecode
		}
		return nil, g.fail(op, kind, 0, err)
	}

	records := models.DecodeRecords(data)
	slog.Debug("Interviews read", "count", len(records))
	return records, nil
}

// Close releases idle connections.
func (g *HTTPGateway) Close() {
	g.client.CloseIdleConnections()
}

func (g *HTTPGateway) fail(op string, kind Kind, status int, err error) *Failure {
	f := &Failure{Op: op, Kind: kind, Status: status, Err: err}
	slog.Error("Gateway request failed", "op", op, "kind", kind.String(), "status", status, "error", err)
	return f
}

func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindTransport
}

// errorBody extracts the API's error message when present.
func errorBody(r io.Reader) error {
	data, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	var er models.ErrorResponse
	if err := json.Unmarshal(data, &er); err == nil && er.Error != "" {
		return errors.New(er.Error)
	}
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		return errors.New("empty response body")
	}
	return errors.New(msg)
}
