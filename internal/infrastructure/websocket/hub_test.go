package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHubRegisterAndBroadcast(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub.Start(ctx)

	client := &Client{ID: "c1", Send: make(chan []byte, 1)}
	hub.Register <- client

	hub.Broadcast([]byte(`{"type":"toast"}`))

	select {
	case message := <-client.Send:
		assert.Equal(t, `{"type":"toast"}`, string(message))
	case <-time.After(time.Second):
		t.Fatal("broadcast never reached the client")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub.Start(ctx)

	client := &Client{ID: "c1", Send: make(chan []byte, 1)}
	hub.Register <- client
	hub.Unregister <- client

	select {
	case _, ok := <-client.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed on unregister")
	}
}

func TestClientDropDoesNotBlockAfterShutdown(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	hub.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		hub.drop(&Client{ID: "c1", Send: make(chan []byte, 1)})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disconnect blocked after hub shutdown")
	}
}
