package fontface

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joeblew999/plat-fontface/pkg/font"
	"github.com/joeblew999/plat-fontface/pkg/stylesheet"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/rescue"
	"github.com/zeromicro/go-zero/core/threading"
	"github.com/zeromicro/go-zero/rest/httpc"
	"golang.org/x/time/rate"
)

// serviceName keys the circuit breaker httpc keeps per service.
const serviceName = "google-fonts"

// Options configures a Fetcher.
type Options struct {
	URL       string        // CSS API endpoint, font.GoogleFontsAPI when empty
	Timeout   time.Duration // per request, 0 disables
	UserAgent string        // sent when non-empty
	RateLimit float64       // requests per second, 0 disables
	Client    *http.Client  // overrides Timeout when set
}

// Result is the terminal state of one FamilyRequest.
type Result struct {
	Request FamilyRequest
	URL     string
	Err     error
}

// OK reports whether the stylesheet was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report collects the outcome of a run.
type Report struct {
	Skipped []error // sources and jobs that produced no request
	Results []Result
}

// Failed returns the requests that did not write their destination.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Written returns how many destinations were written.
func (r *Report) Written() int {
	return len(r.Results) - len(r.Failed())
}

// Degraded reports whether at least one request failed.
func (r *Report) Degraded() bool {
	return len(r.Failed()) > 0
}

// Err joins every skipped source and failed request, nil for a clean run.
func (r *Report) Err() error {
	errs := append([]error(nil), r.Skipped...)
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("fetch '%s': %w", res.URL, res.Err))
	}
	return errors.Join(errs...)
}

// Fetcher downloads stylesheets and writes them next to the local fonts.
type Fetcher struct {
	url     string
	service httpc.Service
	limiter *rate.Limiter
}

// NewFetcher creates a fetcher from opts.
func NewFetcher(opts Options) *Fetcher {
	url := opts.URL
	if url == "" {
		url = font.GoogleFontsAPI
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	var httpOpts []httpc.Option
	if opts.UserAgent != "" {
		ua := opts.UserAgent
		httpOpts = append(httpOpts, func(r *http.Request) *http.Request {
			r.Header.Set("User-Agent", ua)
			return r
		})
	}

	f := &Fetcher{
		url:     url,
		service: httpc.NewServiceWithClient(serviceName, client, httpOpts...),
	}
	if opts.RateLimit > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}
	return f
}

// URL returns the request URL for a family query.
func (f *Fetcher) URL(query string) string {
	return f.url + "?family=" + query
}

// Run issues every request concurrently and returns once each one has
// either written its destination or failed.
func (f *Fetcher) Run(ctx context.Context, requests []FamilyRequest) *Report {
	results := make([]Result, len(requests))
	group := threading.NewRoutineGroup()

	for i, req := range requests {
		results[i] = Result{Request: req, URL: f.URL(req.Query), Err: ErrAborted}
		group.Run(func() {
			f.fetch(ctx, &results[i])
		})
	}
	group.Wait()

	return &Report{Results: results}
}

// fetch drives one request to a terminal state recorded in res.
func (f *Fetcher) fetch(ctx context.Context, res *Result) {
	ctx = logx.ContextWithFields(ctx,
		logx.Field("url", res.URL),
		logx.Field("dest", res.Request.Dest),
	)
	// RecoverCtx cleanups run on every return, not only after a panic.
	var completed bool
	start := time.Now()
	defer rescue.RecoverCtx(ctx, func() {
		if !completed {
			res.Err = fmt.Errorf("%w: panic while fetching", ErrAborted)
			observeFetch(resultFailed, start)
		}
	})

	err := f.do(ctx, res)
	completed = true
	if err != nil {
		res.Err = err
		observeFetch(resultFailed, start)
		logx.WithContext(ctx).Errorf("fetch '%s' failed: %v", res.URL, err)
		return
	}

	res.Err = nil
	observeFetch(resultOK, start)
	logx.WithContext(ctx).Infof("fetch '%s' successfully", res.URL)
}

func (f *Fetcher) do(ctx context.Context, res *Result) error {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, res.URL, nil)
	if err != nil {
		return err
	}
	resp, err := f.service.DoRequest(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{URL: res.URL, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	css := stylesheet.Rewrite(string(body), res.Request.Sources, res.Request.Dest)
	return writeFile(res.Request.Dest, []byte(css))
}

// writeFile replaces path with data, creating parent directories.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
