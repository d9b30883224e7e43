package routing

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

// startFake serves handler on an in-memory listener and returns a client
// wired to it.
func startFake(t *testing.T, timeout time.Duration, handler fasthttp.RequestHandler) *Client {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: handler}
	go srv.Serve(ln)
	t.Cleanup(func() { ln.Close() })

	return New(Options{
		BaseURL: "http://routing.test",
		Timeout: timeout,
		Dial:    func(addr string) (net.Conn, error) { return ln.Dial() },
	})
}

func TestLookup_Found(t *testing.T) {
	var hits atomic.Int32
	c := startFake(t, time.Second, func(ctx *fasthttp.RequestCtx) {
		hits.Add(1)
		if string(ctx.Path()) != "/api/name.json" || string(ctx.QueryArgs().Peek("rn")) != "021000021" {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			return
		}
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"code":200,"name":"JPMORGAN CHASE BANK","rn":"021000021"}`)
	})

	b, err := c.Lookup(context.Background(), "021000021")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if b.Name != "JPMORGAN CHASE BANK" || b.RoutingNumber != "021000021" {
		t.Errorf("unexpected bank: %+v", b)
	}

	// second lookup is served from cache
	if _, err := c.Lookup(context.Background(), "021000021"); err != nil {
		t.Fatalf("cached Lookup: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("expected 1 upstream hit, got %d", hits.Load())
	}
}

func TestLookup_NotFound(t *testing.T) {
	c := startFake(t, time.Second, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`{"code":404,"message":"not found"}`)
	})
	_, err := c.Lookup(context.Background(), "999999999")
	if !errors.Is(err, ErrBankNotFound) {
		t.Fatalf("expected ErrBankNotFound, got %v", err)
	}
}

func TestLookup_Empty(t *testing.T) {
	c := New(Options{})
	if _, err := c.Lookup(context.Background(), " "); !errors.Is(err, ErrRoutingNumberRequired) {
		t.Fatalf("expected ErrRoutingNumberRequired, got %v", err)
	}
}

func TestLookup_BadBody(t *testing.T) {
	c := startFake(t, time.Second, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`<html>`)
	})
	if _, err := c.Lookup(context.Background(), "021000021"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLookup_Timeout(t *testing.T) {
	c := startFake(t, 50*time.Millisecond, func(ctx *fasthttp.RequestCtx) {
		time.Sleep(500 * time.Millisecond)
		ctx.SetBodyString(`{"code":200,"name":"SLOW BANK"}`)
	})
	start := time.Now()
	if _, err := c.Lookup(context.Background(), "021000021"); err == nil {
		t.Fatal("expected timeout error")
	}
	if time.Since(start) > 400*time.Millisecond {
		t.Errorf("lookup was not bounded by timeout: %s", time.Since(start))
	}
}

func TestLookup_CanceledContext(t *testing.T) {
	c := New(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Lookup(ctx, "021000021"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
