package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopConvertHooks{}
	c.OnConvertStart(ctx, "hero.png", "monolith")
	c.OnConvertComplete(ctx, "hero.png", "monolith", 12, time.Second, nil)
	c.OnRenderStart(ctx, []string{"svg"})
	c.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	h := NoopCacheHooks{}
	h.OnCacheHit(ctx, "artifact")
	h.OnCacheMiss(ctx, "artifact")
	h.OnCacheSet(ctx, "artifact", 1024)
}

type recordingConvertHooks struct {
	NoopConvertHooks
	starts    int
	completes int
}

func (r *recordingConvertHooks) OnConvertStart(context.Context, string, string) { r.starts++ }
func (r *recordingConvertHooks) OnConvertComplete(context.Context, string, string, int, time.Duration, error) {
	r.completes++
}

func TestSetConvertHooks(t *testing.T) {
	defer Reset()

	rec := &recordingConvertHooks{}
	SetConvertHooks(rec)

	Convert().OnConvertStart(context.Background(), "hero.png", "lego")
	Convert().OnConvertComplete(context.Background(), "hero.png", "lego", 4, time.Millisecond, nil)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("recorded starts=%d completes=%d, want 1 and 1", rec.starts, rec.completes)
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	defer Reset()

	SetConvertHooks(nil)
	if Convert() == nil {
		t.Error("Convert() returned nil after SetConvertHooks(nil)")
	}
	SetCacheHooks(nil)
	if Cache() == nil {
		t.Error("Cache() returned nil after SetCacheHooks(nil)")
	}
}

func TestReset(t *testing.T) {
	SetConvertHooks(&recordingConvertHooks{})
	Reset()

	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Errorf("Reset() did not restore noop convert hooks, got %T", Convert())
	}
}
