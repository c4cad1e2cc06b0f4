package download

import (
	"net/http"
	"time"

	"github.com/spf13/afero"
)

type fileOpts struct {
	fs          afero.Fs
	client      *http.Client
	retries     uint64
	minInterval time.Duration
	maxInterval time.Duration
}

type Option func(*fileOpts)

// WithFs sets the filesystem the downloaded file is written to. The
// default is the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *fileOpts) { o.fs = fs }
}

func WithClient(c *http.Client) Option {
	return func(o *fileOpts) { o.client = c }
}

// WithRetries retries transport failures and server errors up to n times
// with exponential backoff. No retries are made by default.
func WithRetries(n int) Option {
	return func(o *fileOpts) {
		if n < 0 {
			n = 0
		}
		o.retries = uint64(n)
	}
}

// WithBackoff bounds the interval between retries.
func WithBackoff(initial, max time.Duration) Option {
	return func(o *fileOpts) {
		o.minInterval = initial
		o.maxInterval = max
	}
}

func newFileOpts(opts []Option) *fileOpts {
	o := &fileOpts{
		fs:          afero.NewOsFs(),
		client:      http.DefaultClient,
		minInterval: 500 * time.Millisecond,
		maxInterval: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
