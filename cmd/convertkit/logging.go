package main

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"

	convertkit "github.com/listinterop/convertkit-go"
)

// loggingDoer logs each exchange it forwards. Only the request path is
// logged; the query holds the credentials.
type loggingDoer struct {
	next   convertkit.Doer
	logger *log.Logger
}

func newLoggingDoer(next convertkit.Doer, w io.Writer) *loggingDoer {
	return &loggingDoer{
		next: next,
		logger: log.NewWithOptions(w, log.Options{
			Prefix: "convertkit",
			Level:  log.DebugLevel,
		}),
	}
}

func (d *loggingDoer) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := d.next.Do(req)
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		cause := err
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			cause = urlErr.Err
		}
		d.logger.Error("request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"duration", elapsed,
			"err", cause,
		)
		return nil, err
	}

	d.logger.Debug("request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", elapsed,
	)
	return resp, nil
}
