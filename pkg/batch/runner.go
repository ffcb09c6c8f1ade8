package batch

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/pixvec/pixvec/pkg/cache"
	"github.com/pixvec/pixvec/pkg/engine"
	"github.com/pixvec/pixvec/pkg/errors"
	"github.com/pixvec/pixvec/pkg/grid"
	"github.com/pixvec/pixvec/pkg/observability"
	"github.com/pixvec/pixvec/pkg/vector"
)

// Job is one image in the batch queue.
type Job struct {
	ID   uuid.UUID
	Path string
}

// NewJob creates a job with a fresh identifier.
func NewJob(path string) Job {
	return Job{ID: uuid.New(), Path: path}
}

// Result is the outcome of one job. Err is set for per-image failures
// (missing file, decode failure, limit violation); the batch continues
// regardless.
type Result struct {
	Job         Job
	Diagnostics engine.Diagnostics
	Artifacts   map[string][]byte // rendered bytes keyed by format
	CacheHit    bool              // all artifacts came from cache
	Err         error
	Duration    time.Duration
}

// Runner converts queued images on a single background worker.
// The Runner is stateless except for the cache and logger; it holds no
// per-job state, so one Runner can serve many batches.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	Engine  engine.Options
	Formats []string
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// selects the default key scheme, and a nil logger discards logs.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		Formats: []string{FormatSVG},
	}
}

// Run starts the worker and returns its results channel. The channel is
// closed once every job has been processed or the context is canceled.
// Jobs are processed strictly in order, one at a time, bounding peak
// memory to a single image's transient structures.
func (r *Runner) Run(ctx context.Context, jobs []Job) <-chan Result {
	results := make(chan Result)
	go func() {
		defer close(results)
		for _, job := range jobs {
			if ctx.Err() != nil {
				return
			}
			res := r.Process(ctx, job)
			select {
			case results <- res:
			case <-ctx.Done():
				return
			}
		}
	}()
	return results
}

// Process converts a single image and renders all configured formats,
// consulting the artifact cache first.
func (r *Runner) Process(ctx context.Context, job Job) Result {
	start := time.Now()
	res := Result{Job: job, Artifacts: make(map[string][]byte)}
	defer func() { res.Duration = time.Since(start) }()

	g, err := grid.Load(job.Path)
	if err != nil {
		res.Err = err
		return res
	}

	contentHash := cache.Hash(g.Bytes())
	keyOpts := cache.ArtifactKeyOpts{
		Mode:        string(r.Engine.Mode),
		ShapeBudget: r.Engine.ShapeBudget,
	}

	missing := r.loadCached(ctx, &res, contentHash, keyOpts)
	if len(missing) == 0 && r.loadCachedDiag(ctx, &res, contentHash, keyOpts) {
		res.CacheHit = true
		observability.Cache().OnCacheHit(ctx, "artifact")
		r.Logger.Debug("artifact cache hit", "job", job.ID, "path", job.Path)
		return res
	}
	res.CacheHit = false
	observability.Cache().OnCacheMiss(ctx, "artifact")

	observability.Convert().OnConvertStart(ctx, job.Path, string(r.Engine.Mode))
	doc, diag, err := engine.Convert(ctx, g, r.Engine)
	observability.Convert().OnConvertComplete(ctx, job.Path, string(r.Engine.Mode), diag.ShapeCount, time.Since(start), err)
	if err != nil {
		res.Err = err
		return res
	}
	res.Diagnostics = diag

	for _, format := range r.Formats {
		data, err := Render(doc, format, r.Engine.Mode)
		if err != nil {
			res.Err = err
			return res
		}
		res.Artifacts[format] = data
		keyOpts.Format = format
		key := r.Keyer.ArtifactKey(contentHash, keyOpts)
		if r.Cache.Set(ctx, key, data, cache.TTLArtifact) == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	keyOpts.Format = diagKey
	_ = r.Cache.Set(ctx, r.Keyer.ArtifactKey(contentHash, keyOpts), marshalDiag(diag), cache.TTLArtifact)

	r.Logger.Debug("converted",
		"job", job.ID,
		"path", job.Path,
		"shapes", diag.ShapeCount,
		"duration", res.Duration)
	return res
}

// loadCached fills res.Artifacts from the cache and returns the formats
// still missing.
func (r *Runner) loadCached(ctx context.Context, res *Result, contentHash string, keyOpts cache.ArtifactKeyOpts) []string {
	var missing []string
	for _, format := range r.Formats {
		keyOpts.Format = format
		data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(contentHash, keyOpts))
		if err != nil || !hit {
			missing = append(missing, format)
			continue
		}
		res.Artifacts[format] = data
	}
	return missing
}

// loadCachedDiag restores diagnostics for a fully cached job.
func (r *Runner) loadCachedDiag(ctx context.Context, res *Result, contentHash string, keyOpts cache.ArtifactKeyOpts) bool {
	keyOpts.Format = diagKey
	data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(contentHash, keyOpts))
	if err != nil || !hit {
		return false
	}
	return json.Unmarshal(data, &res.Diagnostics) == nil
}

// Render serializes a document in the given format. Lego-mode SVG keeps
// one element per shape; everything else uses the compact per-color form.
func Render(doc *vector.Document, format string, mode engine.Mode) ([]byte, error) {
	switch format {
	case FormatSVG:
		if mode == engine.ModeLego {
			return vector.RenderSVG(doc, vector.WithUnitRects()), nil
		}
		return vector.RenderSVG(doc), nil
	case FormatJSON:
		return vector.RenderJSON(doc)
	case FormatPNG:
		return vector.RenderPNG(doc)
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid format: %q", format)
}
