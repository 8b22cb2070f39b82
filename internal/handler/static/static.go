// File: internal/handler/static/static.go
package static

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const indexFile = "index.html"

// Handler 提供前端靜態檔案；找不到對應檔案時回傳 index.html 交由前端路由處理
func Handler(fsys fs.FS) echo.HandlerFunc {
	return func(c echo.Context) error {
		if name, ok := resolve(c.Request().URL.Path); ok && isFile(fsys, name) {
			return echo.StaticFileHandler(name, fsys)(c)
		}
		if !isFile(fsys, indexFile) {
			return c.String(http.StatusNotFound, "index.html not found")
		}
		return echo.StaticFileHandler(indexFile, fsys)(c)
	}
}

// resolve 以完整請求路徑（已解碼）對應檔案，與掛載的路由無關
func resolve(path string) (string, bool) {
	p := strings.TrimPrefix(path, "/")
	if p == "" || !fs.ValidPath(p) {
		return "", false
	}
	return p, true
}

func isFile(fsys fs.FS, name string) bool {
	fi, err := fs.Stat(fsys, name)
	return err == nil && !fi.IsDir()
}
