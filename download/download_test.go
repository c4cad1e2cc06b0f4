package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestState(t *testing.T) {
	tests := []struct {
		s                                  State
		info, ok, redirect, client, server bool
	}{
		{s: 101, info: true},
		{s: 200, ok: true},
		{s: 302, redirect: true},
		{s: 404, client: true},
		{s: 503, server: true},
	}
	for _, tc := range tests {
		t.Run(tc.s.String(), func(t *testing.T) {
			if tc.s.IsInfo() != tc.info {
				t.Error("IsInfo")
			}
			if tc.s.IsOK() != tc.ok || tc.s.IsSuccess() != tc.ok {
				t.Error("IsOK/IsSuccess")
			}
			if tc.s.IsRedirect() != tc.redirect {
				t.Error("IsRedirect")
			}
			if tc.s.IsClientError() != tc.client {
				t.Error("IsClientError")
			}
			if tc.s.IsServerError() != tc.server {
				t.Error("IsServerError")
			}
			if tc.s.IsError() != (tc.client || tc.server) {
				t.Error("IsError")
			}
		})
	}
	if !State(204).IsSuccess() || State(204).IsOK() {
		t.Error("204 is a success but not OK")
	}
}

func TestFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("java: 17\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	st, err := File(context.Background(), srv.URL+"/ok", "/inst/a/config.cnt", WithFs(fs), WithClient(srv.Client()))
	if err != nil {
		t.Fatal(err)
	}
	if !st.IsOK() {
		t.Fatalf("state %s", st)
	}
	d, err := afero.ReadFile(fs, "/inst/a/config.cnt")
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "java: 17\n" {
		t.Errorf("got %q", d)
	}

	st, err = File(context.Background(), srv.URL+"/missing", "/inst/b.cnt", WithFs(fs), WithClient(srv.Client()))
	if err != nil {
		t.Fatal(err)
	}
	if st != http.StatusNotFound {
		t.Errorf("state %s", st)
	}
	if ok, _ := afero.Exists(fs, "/inst/b.cnt"); ok {
		t.Error("file written for an error response")
	}
}

func TestFileRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("done"))
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	st, err := File(context.Background(), srv.URL, "out", WithFs(fs), WithClient(srv.Client()),
		WithRetries(5), WithBackoff(time.Millisecond, 5*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if !st.IsOK() {
		t.Fatalf("state %s", st)
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("expected 3 calls, got %d", n)
	}

	calls.Store(0)
	st, err = File(context.Background(), srv.URL, "out2", WithFs(fs), WithClient(srv.Client()))
	if err != nil {
		t.Fatal(err)
	}
	if st != http.StatusServiceUnavailable {
		t.Errorf("state %s", st)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("expected a single call without retries, got %d", n)
	}
}

func TestFileNoServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	st, err := File(context.Background(), url, "x", WithFs(afero.NewMemMapFs()))
	if err == nil {
		t.Fatal("expected error")
	}
	if st != 0 {
		t.Errorf("state %s", st)
	}
}
