package rendering

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type countingRecorder struct {
	hits, misses int
}

func (r *countingRecorder) RecordCacheLookup(hit bool) {
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	out, err := NewUniversalRenderer().RenderComponent(context.Background(), n)
	require.NoError(t, err)
	return string(out)
}

func TestFragmentCache_HitAndMiss(t *testing.T) {
	rec := &countingRecorder{}
	fc := NewFragmentCache(NewUniversalRenderer(), time.Minute, rec)

	builds := 0
	build := func() g.Node {
		builds++
		return Section(ID("about"), g.Text("Welcome"))
	}

	first := render(t, fc.Fragment(context.Background(), "about", 1, build))
	second := render(t, fc.Fragment(context.Background(), "about", 1, build))

	assert.Equal(t, `<section id="about">Welcome</section>`, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, builds)
	assert.Equal(t, 1, rec.hits)
	assert.Equal(t, 1, rec.misses)
	assert.Equal(t, 1, fc.Len())
}

func TestFragmentCache_VersionChangeRebuilds(t *testing.T) {
	fc := NewFragmentCache(NewUniversalRenderer(), time.Minute, nil)

	text := "v1"
	build := func() g.Node { return P(g.Text(text)) }

	assert.Equal(t, "<p>v1</p>", render(t, fc.Fragment(context.Background(), "hero", 1, build)))
	text = "v2"
	assert.Equal(t, "<p>v1</p>", render(t, fc.Fragment(context.Background(), "hero", 1, build)))
	assert.Equal(t, "<p>v2</p>", render(t, fc.Fragment(context.Background(), "hero", 2, build)))
}

func TestFragmentCache_Flush(t *testing.T) {
	fc := NewFragmentCache(NewUniversalRenderer(), time.Minute, nil)
	fc.Fragment(context.Background(), "footer", 1, func() g.Node { return Footer() })
	require.Equal(t, 1, fc.Len())

	fc.Flush()
	assert.Equal(t, 0, fc.Len())
}

func TestFragmentCache_Disabled(t *testing.T) {
	fc := NewFragmentCache(NewUniversalRenderer(), 0, nil)

	builds := 0
	build := func() g.Node { builds++; return Br() }
	fc.Fragment(context.Background(), "x", 1, build)
	fc.Fragment(context.Background(), "x", 1, build)

	assert.Equal(t, 2, builds)
	assert.Equal(t, 0, fc.Len())
	fc.Flush()

	var nilCache *FragmentCache
	assert.Equal(t, "<br>", render(t, nilCache.Fragment(context.Background(), "x", 1, build)))
}
