package rendering

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	g "maragu.dev/gomponents"
)

// CacheRecorder receives fragment cache lookups. *metrics.SiteMetrics
// satisfies it.
type CacheRecorder interface {
	RecordCacheLookup(hit bool)
}

// FragmentCache keeps the HTML of sections that do not depend on visitor
// state. Entries are keyed by section name and content version so a reload
// never serves stale markup, and Flush drops everything eagerly.
type FragmentCache struct {
	cache    *cache.Cache
	renderer Renderer
	recorder CacheRecorder
}

// NewFragmentCache creates a cache whose entries expire after ttl. A ttl of
// zero or less disables caching.
func NewFragmentCache(renderer Renderer, ttl time.Duration, recorder CacheRecorder) *FragmentCache {
	fc := &FragmentCache{renderer: renderer, recorder: recorder}
	if ttl > 0 {
		fc.cache = cache.New(ttl, 2*ttl)
	}
	return fc
}

// Fragment returns the cached HTML of section at version, rendering it with
// build on a miss. Render failures are logged and the live node is returned
// so the page still shows the section.
func (fc *FragmentCache) Fragment(ctx context.Context, section string, version uint64, build func() g.Node) g.Node {
	if fc == nil || fc.cache == nil {
		return build()
	}

	key := fmt.Sprintf("%s@%d", section, version)
	if html, ok := fc.cache.Get(key); ok {
		fc.record(true)
		return g.Raw(html.(string))
	}
	fc.record(false)

	node := build()
	html, err := fc.renderer.RenderComponent(ctx, node)
	if err != nil {
		slog.WarnContext(ctx, "Failed to cache section", "section", section, "error", err)
		return node
	}
	fc.cache.SetDefault(key, string(html))
	return g.Raw(string(html))
}

// Flush drops every cached fragment.
func (fc *FragmentCache) Flush() {
	if fc == nil || fc.cache == nil {
		return
	}
	fc.cache.Flush()
}

// Len reports the number of cached fragments.
func (fc *FragmentCache) Len() int {
	if fc == nil || fc.cache == nil {
		return 0
	}
	return fc.cache.ItemCount()
}

func (fc *FragmentCache) record(hit bool) {
	if fc.recorder != nil {
		fc.recorder.RecordCacheLookup(hit)
	}
}
