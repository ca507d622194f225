package xword

import (
	"sync"
	"testing"
	"time"
)

func TestBroadcasterRegisterUnregister(t *testing.T) {
	b := NewBroadcaster()

	c1 := b.Register()
	c2 := b.Register()

	if b.ClientCount() != 2 {
		t.Fatalf("expected 2 clients, got %d", b.ClientCount())
	}

	b.Unregister(c1)
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", b.ClientCount())
	}

	b.Unregister(c2)
	if b.ClientCount() != 0 {
		t.Fatal("expected 0 clients after full unregister")
	}
}

func TestBroadcasterDoubleUnregister(t *testing.T) {
	b := NewBroadcaster()
	c := b.Register()
	b.Unregister(c)
	b.Unregister(c) // should not panic
}

func TestBroadcast(t *testing.T) {
	b := NewBroadcaster()

	c1 := b.Register()
	c2 := b.Register()

	b.Broadcast("hello")

	for _, c := range []*client{c1, c2} {
		select {
		case msg := <-c.ch:
			if msg != "hello" {
				t.Fatalf("expected 'hello', got %q", msg)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("client did not receive message")
		}
	}

	b.Unregister(c1)
	b.Unregister(c2)
}

func TestBroadcastSkipsFullChannel(t *testing.T) {
	b := NewBroadcaster()
	c := b.Register()

	// Fill the channel.
	for range sseChannelBuffer {
		b.Broadcast("fill")
	}

	// This should not block.
	b.Broadcast("overflow")

	b.Unregister(c)
}

func TestBroadcasterConcurrent(t *testing.T) {
	b := NewBroadcaster()
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := b.Register()
			b.Broadcast("msg")
			b.ClientCount()
			b.Unregister(c)
		}()
	}
	wg.Wait()

	if b.ClientCount() != 0 {
		t.Fatal("expected 0 clients after concurrent test")
	}
}
