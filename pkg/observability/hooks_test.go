package observability

import (
	"context"
	"testing"
	"time"
)

type recordingBuildHooks struct {
	NoopBuildHooks
	buildStarts int
	buildDones  int
}

func (h *recordingBuildHooks) OnBuildStart(ctx context.Context, strategy string, n int) {
	h.buildStarts++
}

func (h *recordingBuildHooks) OnBuildComplete(ctx context.Context, strategy string, n int, d time.Duration, err error) {
	h.buildDones++
}

func TestHookRegistration(t *testing.T) {
	defer Reset()

	rec := &recordingBuildHooks{}
	SetBuildHooks(rec)

	ctx := context.Background()
	Build().OnBuildStart(ctx, "grid", 10)
	Build().OnBuildComplete(ctx, "grid", 10, time.Millisecond, nil)

	if rec.buildStarts != 1 || rec.buildDones != 1 {
		t.Errorf("events = %d/%d, want 1/1", rec.buildStarts, rec.buildDones)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	rec := &recordingBuildHooks{}
	SetBuildHooks(rec)
	SetBuildHooks(nil)

	Build().OnBuildStart(context.Background(), "grid", 1)
	if rec.buildStarts != 1 {
		t.Error("nil registration replaced active hooks")
	}
}

func TestReset(t *testing.T) {
	rec := &recordingBuildHooks{}
	SetBuildHooks(rec)
	Reset()

	Build().OnBuildStart(context.Background(), "grid", 1)
	if rec.buildStarts != 0 {
		t.Error("Reset did not restore no-op hooks")
	}
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// must not panic
	Build().OnLoadStart(ctx, "file.json")
	Build().OnLoadComplete(ctx, "file.json", 0, 0, 0, nil)
	Cache().OnCacheHit(ctx, "graph")
	Cache().OnCacheMiss(ctx, "graph")
	Cache().OnCacheSet(ctx, "graph", 128)
	Server().OnRequest(ctx, "GET", "/healthz")
	Server().OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)
}
