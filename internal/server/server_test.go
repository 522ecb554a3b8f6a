package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"bookmarks_api/internal/config"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":               ":8080",
		"9000":           ":9000",
		":9000":          ":9000",
		"127.0.0.1:9000": "127.0.0.1:9000",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Errorf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNew_AppliesTimeouts(t *testing.T) {
	s := New("9000", config.ServerConfig{WriteTimeout: 3 * time.Second}, http.NotFoundHandler())
	if s.httpServer.WriteTimeout != 3*time.Second {
		t.Fatalf("write timeout: %v", s.httpServer.WriteTimeout)
	}
	if s.httpServer.ReadHeaderTimeout != 10*time.Second {
		t.Fatalf("read header timeout default not applied: %v", s.httpServer.ReadHeaderTimeout)
	}
}

func TestRun_ReturnsNilAfterShutdown(t *testing.T) {
	s := New("127.0.0.1:0", config.ServerConfig{}, http.NotFoundHandler())

	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	// give ListenAndServe a moment to start
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after shutdown")
	}
}
