// Package metrics provides Prometheus collectors for site interactions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Cache lookup results.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultOK    = "ok"
	ResultError = "error"
)

// SiteMetrics counts the visitor interactions the page supports and the
// health of the content pipeline behind it.
type SiteMetrics struct {
	registry *prometheus.Registry

	menuTabSwitches *prometheus.CounterVec
	menuToggles     *prometheus.CounterVec
	galleryOpens    *prometheus.CounterVec
	galleryCloses   *prometheus.CounterVec
	actionRedirects *prometheus.CounterVec
	contentReloads  *prometheus.CounterVec
	fragmentCache   *prometheus.CounterVec
	pageRenders     prometheus.Counter
}

// New creates the collectors and registers them on registry.
func New(registry *prometheus.Registry) (*SiteMetrics, error) {
	m := &SiteMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Registry returns the registry the collectors live on.
func (m *SiteMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *SiteMetrics) initMetrics() {
	m.menuTabSwitches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madhatter_menu_tab_switches_total",
			Help: "Total number of menu tab switches",
		},
		[]string{"tab"}, // tab: food, drinks
	)

	m.menuToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madhatter_menu_category_toggles_total",
			Help: "Total number of menu category expand/collapse toggles",
		},
		[]string{"tab", "state"}, // state: expanded, collapsed
	)

	m.galleryOpens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madhatter_gallery_opens_total",
			Help: "Total number of gallery images opened in the detail dialog",
		},
		[]string{"gallery"},
	)

	m.galleryCloses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madhatter_gallery_closes_total",
			Help: "Total number of gallery detail dialogs dismissed",
		},
		[]string{"gallery"},
	)

	m.actionRedirects = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madhatter_location_actions_total",
			Help: "Total number of location actions triggered",
		},
		[]string{"action"}, // action: directions, call, qr
	)

	m.contentReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madhatter_content_reloads_total",
			Help: "Total number of content file reloads",
		},
		[]string{"result"}, // result: ok, error
	)

	m.fragmentCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madhatter_fragment_cache_lookups_total",
			Help: "Total number of rendered section cache lookups",
		},
		[]string{"result"}, // result: hit, miss
	)

	m.pageRenders = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "madhatter_page_renders_total",
			Help: "Total number of full home page renders",
		},
	)
}

func (m *SiteMetrics) getCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.menuTabSwitches,
		m.menuToggles,
		m.galleryOpens,
		m.galleryCloses,
		m.actionRedirects,
		m.contentReloads,
		m.fragmentCache,
		m.pageRenders,
	}
}

// Describe implements the Collector interface
func (m *SiteMetrics) Describe(ch chan<- *prometheus.Desc) {
	for _, collector := range m.getCollectors() {
		collector.Describe(ch)
	}
}

// Collect implements the Collector interface
func (m *SiteMetrics) Collect(ch chan<- prometheus.Metric) {
	for _, collector := range m.getCollectors() {
		collector.Collect(ch)
	}
}

// RecordTabSwitch records a menu tab change.
func (m *SiteMetrics) RecordTabSwitch(tab string) {
	m.menuTabSwitches.WithLabelValues(tab).Inc()
}

// RecordToggle records a category toggle and the state it ended in.
func (m *SiteMetrics) RecordToggle(tab string, expanded bool) {
	state := "collapsed"
	if expanded {
		state = "expanded"
	}
	m.menuToggles.WithLabelValues(tab, state).Inc()
}

// RecordGalleryOpen records an image opened in a gallery dialog.
func (m *SiteMetrics) RecordGalleryOpen(gallery string) {
	m.galleryOpens.WithLabelValues(gallery).Inc()
}

// RecordGalleryClose records a dismissed gallery dialog.
func (m *SiteMetrics) RecordGalleryClose(gallery string) {
	m.galleryCloses.WithLabelValues(gallery).Inc()
}

// RecordAction records a location action (directions, call, qr).
func (m *SiteMetrics) RecordAction(action string) {
	m.actionRedirects.WithLabelValues(action).Inc()
}

// RecordContentReload records the outcome of a content reload.
func (m *SiteMetrics) RecordContentReload(err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.contentReloads.WithLabelValues(result).Inc()
}

// RecordCacheLookup records a fragment cache hit or miss.
func (m *SiteMetrics) RecordCacheLookup(hit bool) {
	result := ResultMiss
	if hit {
		result = ResultHit
	}
	m.fragmentCache.WithLabelValues(result).Inc()
}

// RecordPageRender records a full page render.
func (m *SiteMetrics) RecordPageRender() {
	m.pageRenders.Inc()
}
