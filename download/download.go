// Package download fetches a URL into a file.
package download

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/cenkalti/backoff/v4"
	"github.com/cntlib/cnt/debug"
	"github.com/spf13/afero"
)

var ErrDownload = errors.New("download failed")

// File downloads url and writes the body to path. The returned State is
// the status of the last response. The file is only written when that
// status is a success; an error status is reported through the State
// with a nil error. A non-nil error means no usable response arrived or
// the file could not be written.
func File(ctx context.Context, url, path string, opts ...Option) (State, error) {
	o := newFileOpts(opts)
	var (
		state State
		body  []byte
	)
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%w: %w", ErrDownload, err))
		}
		resp, err := o.client.Do(req)
		if err != nil {
			state = 0
			if debug.Download() {
				debug.Logf("download %s: %v\n", url, err)
			}
			return fmt.Errorf("%w: %w", ErrDownload, err)
		}
		defer resp.Body.Close()
		state = State(resp.StatusCode)
		if debug.Download() {
			debug.Logf("download %s: %s\n", url, state)
		}
		if state.IsServerError() {
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("%w: %s", ErrDownload, state)
		}
		if !state.IsSuccess() {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		buf := bytes.NewBuffer(nil)
		if _, err := io.Copy(buf, resp.Body); err != nil {
			return fmt.Errorf("%w: reading body: %w", ErrDownload, err)
		}
		body = buf.Bytes()
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.minInterval
	b.MaxInterval = o.maxInterval
	b.MaxElapsedTime = 0
	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, o.retries), ctx))
	if err != nil {
		if state.IsServerError() {
			return state, nil
		}
		return state, err
	}
	if !state.IsSuccess() {
		return state, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := o.fs.MkdirAll(dir, 0755); err != nil {
			return state, fmt.Errorf("%w: %w", ErrDownload, err)
		}
	}
	if err := afero.WriteFile(o.fs, path, body, 0644); err != nil {
		return state, fmt.Errorf("%w: %w", ErrDownload, err)
	}
	return state, nil
}
