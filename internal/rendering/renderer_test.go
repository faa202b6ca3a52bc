package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func TestUniversalRenderer_RenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	tests := []struct {
		name      string
		component any
		want      string
		wantErr   bool
	}{
		{
			name:      "gomponents node",
			component: P(Class("lead"), g.Text("Fish & Chips")),
			want:      `<p class="lead">Fish &amp; Chips</p>`,
		},
		{
			name: "templ component",
			component: templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				_, err := io.WriteString(w, "<span>templ</span>")
				return err
			}),
			want: "<span>templ</span>",
		},
		{
			name:      "unsupported value",
			component: 42,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RenderComponent(context.Background(), tt.component)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported component type: int")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestUniversalRenderer_EchoRender(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", Div(g.Text("hello")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<div>hello</div>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}

func TestUniversalRenderer_RenderPage(t *testing.T) {
	e := echo.New()
	r := NewUniversalRenderer()

	t.Run("writes status and body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, r.RenderPage(c, http.StatusNotFound, H1(g.Text("Not here"))))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "<h1>Not here</h1>", rec.Body.String())
	})

	t.Run("render failure leaves response untouched", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		assert.Error(t, r.RenderPage(c, http.StatusOK, struct{}{}))
		assert.False(t, c.Response().Committed)
	})
}
