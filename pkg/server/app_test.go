package server

import (
	"context"
	"net"
	"testing"
	"time"

	"BotDash/internal/domain/models"
	xhttp "BotDash/pkg/http"
	applogger "BotDash/pkg/logger"
)

type closingStore struct {
	closed bool
}

func (s *closingStore) GetCurrent(context.Context, string) (models.Document, bool, error) {
	return nil, false, nil
}
func (s *closingStore) Health(context.Context) error { return nil }
func (s *closingStore) Close() error {
	s.closed = true
	return nil
}

func TestRunContextClosesStoreOnCancel(t *testing.T) {
	store := &closingStore{}
	srv := xhttp.NewServer(nil, xhttp.WithHost("127.0.0.1"), xhttp.WithPort(0))
	app := New(applogger.Nop(), srv, store, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.RunContext(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for srv.Echo().ListenerAddr() == nil {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("server did not start listening")
		}
		time.Sleep(10 * time.Millisecond)
	}

	addr := srv.Echo().ListenerAddr().String()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("RunContext: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("RunContext did not return")
	}
	if !store.closed {
		t.Fatal("store was not closed")
	}
	if conn, err := net.DialTimeout("tcp", addr, time.Second); err == nil {
		conn.Close()
		t.Fatalf("listener on %s still accepting after shutdown", addr)
	}
}
