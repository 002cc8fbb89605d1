package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"linktic/internal/domain/model"
)

// ProductoClient はproducto-apiへの同期呼び出しクライアント。
// リトライ・キャッシュなし。1回の呼び出しは独立した試行。
type ProductoClient struct {
	baseURL        string
	apiKey         string
	validateExists bool

	httpClient *http.Client
	logger     *slog.Logger
}

// NewProductoClient は設定済みクライアントを生成する。
// httpClientがnilならタイムアウト5秒のデフォルトを使う。
func NewProductoClient(baseURL string, apiKey string, validateExists bool, httpClient *http.Client, logger *slog.Logger) (*ProductoClient, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("producto service base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &ProductoClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		apiKey:         apiKey,
		validateExists: validateExists,
		httpClient:     httpClient,
		logger:         logger,
	}, nil
}

// Exists は商品の存在を確認する。2xxのときだけtrue。
// 通信エラー・タイムアウト・非2xxはすべてfalse（エラーは返さない）。
func (c *ProductoClient) Exists(ctx context.Context, id int64) bool {
	if !c.validateExists {
		c.logger.Info("validación de producto deshabilitada", "productoId", id)
		return true
	}

	resp, err := c.get(ctx, id)
	if err != nil {
		c.logger.Error("error al validar producto", "productoId", id, "error", err.Error())
		return false
	}
	defer resp.Body.Close()

	return is2xx(resp.StatusCode)
}

// Fetch は商品情報を取得する。
// 失敗（通信エラー・非2xx・パース失敗）はすべてfalse。中途半端な値は返さない。
func (c *ProductoClient) Fetch(ctx context.Context, id int64) (model.Producto, bool) {
	if !c.validateExists {
		//検証スキップ時はネットワーク呼び出しをせず、IDだけ埋めた値を返す
		c.logger.Info("validación de producto deshabilitada", "productoId", id)
		return model.Producto{ID: id}, true
	}

	resp, err := c.get(ctx, id)
	if err != nil {
		c.logger.Error("error al obtener producto", "productoId", id, "error", err.Error())
		return model.Producto{}, false
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		c.logger.Warn("no se pudo obtener el producto", "productoId", id, "status", resp.StatusCode)
		return model.Producto{}, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("error al leer respuesta de producto", "productoId", id, "error", err.Error())
		return model.Producto{}, false
	}

	var p model.Producto
	if err := json.Unmarshal(body, &p); err != nil {
		c.logger.Error("respuesta de producto inválida", "productoId", id, "error", err.Error())
		return model.Producto{}, false
	}

	return p, true
}

func (c *ProductoClient) get(ctx context.Context, id int64) (*http.Response, error) {
	url := fmt.Sprintf("%s/api/productos/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	return c.httpClient.Do(req)
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
