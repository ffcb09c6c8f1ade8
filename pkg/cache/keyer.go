package cache

// ArtifactKeyOpts are the conversion parameters that distinguish cached
// artifacts for the same source image.
type ArtifactKeyOpts struct {
	Mode        string // "monolith" or "lego"
	Format      string // "svg", "json" or "png"
	ShapeBudget int    // greedy extraction cap, part of the output identity
}

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey keys a rendered artifact by the content hash of the
	// source pixel data plus the conversion options.
	ArtifactKey(contentHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (k *DefaultKeyer) ArtifactKey(contentHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", contentHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, isolating cache namespaces when
// several projects share one backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey implements Keyer.
func (k *ScopedKeyer) ArtifactKey(contentHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(contentHash, opts)
}
