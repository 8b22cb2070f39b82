package static

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, fsys fstest.MapFS, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/*", Handler(fsys))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler(t *testing.T) {
	site := fstest.MapFS{
		"index.html":     {Data: []byte("<html>app</html>")},
		"assets/app.js":  {Data: []byte("console.log(1)")},
		"assets/img/a b": {Data: []byte("spaced")},
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"root", "/", "<html>app</html>"},
		{"existing file", "/assets/app.js", "console.log(1)"},
		{"escaped name", "/assets/img/a%20b", "spaced"},
		{"client route", "/projects/3", "<html>app</html>"},
		{"directory", "/assets", "<html>app</html>"},
		{"traversal", "/../secret", "<html>app</html>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, site, tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestHandlerWithoutIndex(t *testing.T) {
	rec := serve(t, fstest.MapFS{"app.js": {Data: []byte("x")}}, "/about")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "index.html not found", rec.Body.String())

	rec = serve(t, fstest.MapFS{"app.js": {Data: []byte("x")}}, "/app.js")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlerMatchesFullRequestPath(t *testing.T) {
	site := fstest.MapFS{
		"index.html": {Data: []byte("index")},
		"app.js":     {Data: []byte("js")},
	}
	e := echo.New()
	e.RouteNotFound("/api/admin/*", Handler(site))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/app.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "index", rec.Body.String())
}
