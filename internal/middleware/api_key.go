package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// APIキー検証を免除するパスのprefix（ヘルスチェック・APIドキュメント）
var excludedPrefixes = []string{
	"/health",
	"/swagger-ui",
	"/v3/api-docs",
	"/swagger-resources",
	"/webjars",
}

// APIKeyAuth はX-API-KEYヘッダの共有シークレット検証ミドルウェア。
// 免除パス以外はハンドラ実行前に401で止める。
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			for _, prefix := range excludedPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			requestKey := c.Request().Header.Get("X-API-KEY")
			if requestKey == "" || requestKey != apiKey {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthorized - Invalid API Key"))
			}

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
