package batch

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixvec/pixvec/pkg/cache"
	"github.com/pixvec/pixvec/pkg/engine"
	"github.com/pixvec/pixvec/pkg/errors"
)

// writeTestPNG writes a 2x2 solid red sprite and returns its path.
func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestRunner(c cache.Cache) *Runner {
	r := NewRunner(c, nil, nil)
	r.Engine = engine.Options{Mode: engine.ModeMonolith}
	return r
}

func TestRunnerProcess(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "sprite.png")
	r := newTestRunner(nil)

	res := r.Process(context.Background(), NewJob(path))

	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if res.Diagnostics.ShapeCount != 1 {
		t.Errorf("ShapeCount = %d, want 1", res.Diagnostics.ShapeCount)
	}
	if len(res.Artifacts[FormatSVG]) == 0 {
		t.Error("no SVG artifact produced")
	}
}

func TestRunnerContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	good1 := writeTestPNG(t, dir, "a.png")
	good2 := writeTestPNG(t, dir, "b.png")
	jobs := []Job{
		NewJob(good1),
		NewJob(filepath.Join(dir, "missing.png")),
		NewJob(good2),
	}
	r := newTestRunner(nil)

	var results []Result
	for res := range r.Run(context.Background(), jobs) {
		results = append(results, res)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3 (batch must continue past failures)", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("good jobs failed: %v, %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file err = %v, want FILE_NOT_FOUND", results[1].Err)
	}
}

func TestRunnerPreservesJobOrder(t *testing.T) {
	dir := t.TempDir()
	var jobs []Job
	for _, name := range []string{"1.png", "2.png", "3.png"} {
		jobs = append(jobs, NewJob(writeTestPNG(t, dir, name)))
	}
	r := newTestRunner(nil)

	i := 0
	for res := range r.Run(context.Background(), jobs) {
		if res.Job.ID != jobs[i].ID {
			t.Errorf("result %d is job %s, want %s", i, res.Job.ID, jobs[i].ID)
		}
		i++
	}
}

func TestRunnerCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "sprite.png")
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := newTestRunner(c)
	ctx := context.Background()

	first := r.Process(ctx, NewJob(path))
	if first.Err != nil {
		t.Fatal(first.Err)
	}
	if first.CacheHit {
		t.Error("first run reported a cache hit")
	}

	second := r.Process(ctx, NewJob(path))
	if second.Err != nil {
		t.Fatal(second.Err)
	}
	if !second.CacheHit {
		t.Error("second run missed the cache")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}
	if second.Diagnostics.ShapeCount != first.Diagnostics.ShapeCount {
		t.Errorf("cached diagnostics = %+v, want %+v", second.Diagnostics, first.Diagnostics)
	}
}

func TestRunnerCancellation(t *testing.T) {
	dir := t.TempDir()
	jobs := []Job{NewJob(writeTestPNG(t, dir, "a.png")), NewJob(writeTestPNG(t, dir, "b.png"))}
	r := newTestRunner(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count := 0
	for range r.Run(ctx, jobs) {
		count++
	}
	if count != 0 {
		t.Errorf("processed %d jobs after cancellation", count)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{name: "default", in: "", want: []string{"svg"}},
		{name: "single", in: "png", want: []string{"png"}},
		{name: "multiple", in: "svg,json,png", want: []string{"svg", "json", "png"}},
		{name: "unknown", in: "pdf", wantErr: true},
		{name: "one bad among good", in: "svg,bmp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormats(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("err = %v, want INVALID_CONFIG", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestRenderAllFormats(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "sprite.png")
	r := newTestRunner(nil)
	r.Formats = []string{FormatSVG, FormatJSON, FormatPNG}

	res := r.Process(context.Background(), NewJob(path))

	if res.Err != nil {
		t.Fatal(res.Err)
	}
	for _, f := range r.Formats {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("no %s artifact", f)
		}
	}
}
