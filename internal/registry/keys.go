package registry

import (
	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/rendering"
)

// Service keys shared between modules. Using typed constants prevents typos
// and type assertions at the call site.
var (
	ContentStoreKey  = Key[*content.Store]("content.store")
	FragmentCacheKey = Key[*rendering.FragmentCache]("rendering.fragmentCache")
	MetricsKey       = Key[*metrics.SiteMetrics]("metrics.site")
)
