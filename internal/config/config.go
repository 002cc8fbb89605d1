package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ProductoConfig はproducto-apiの設定
type ProductoConfig struct {
	Port string // サーバーポート（8080）

	APIKey string // 受信リクエストのX-API-KEY
}

// InventarioConfig はinventario-apiの設定
type InventarioConfig struct {
	Port string // サーバーポート（8081）

	APIKey string // 受信リクエストのX-API-KEY

	ProductoServiceURL    string        // producto-apiのベースURL
	ProductoServiceAPIKey string        // producto-apiへ送るX-API-KEY
	ValidateExists        bool          // falseなら商品存在チェックをスキップ（開発用）
	ClientTimeout         time.Duration // producto-api呼び出しのタイムアウト
}

// LoadProducto は環境変数からproducto-apiの設定を組み立てる
func LoadProducto() (ProductoConfig, error) {
	cfg := ProductoConfig{
		Port:   os.Getenv("PORT"),
		APIKey: os.Getenv("API_KEY"),
	}

	//必須チェック
	if cfg.Port == "" {
		return ProductoConfig{}, fmt.Errorf("PORT is required")
	}
	if cfg.APIKey == "" {
		return ProductoConfig{}, fmt.Errorf("API_KEY is required")
	}

	return cfg, nil
}

// LoadInventario は環境変数からinventario-apiの設定を組み立てる
func LoadInventario() (InventarioConfig, error) {
	validate, err := boolOr("PRODUCTO_VALIDATE_EXISTS", true)
	if err != nil {
		return InventarioConfig{}, err
	}

	timeout, err := secondsOr("PRODUCTO_CLIENT_TIMEOUT_SECONDS", 5)
	if err != nil {
		return InventarioConfig{}, err
	}

	cfg := InventarioConfig{
		Port:   os.Getenv("PORT"),
		APIKey: os.Getenv("API_KEY"),

		ProductoServiceURL:    os.Getenv("PRODUCTO_SERVICE_URL"),
		ProductoServiceAPIKey: os.Getenv("PRODUCTO_SERVICE_API_KEY"),
		ValidateExists:        validate,
		ClientTimeout:         timeout,
	}

	//必須チェック
	if cfg.Port == "" {
		return InventarioConfig{}, fmt.Errorf("PORT is required")
	}
	if cfg.APIKey == "" {
		return InventarioConfig{}, fmt.Errorf("API_KEY is required")
	}
	if cfg.ProductoServiceURL == "" {
		return InventarioConfig{}, fmt.Errorf("PRODUCTO_SERVICE_URL is required")
	}
	if cfg.ProductoServiceAPIKey == "" {
		return InventarioConfig{}, fmt.Errorf("PRODUCTO_SERVICE_API_KEY is required")
	}

	return cfg, nil
}

func boolOr(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be bool: %w", key, err)
	}
	return b, nil
}

func secondsOr(key string, def int) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(def) * time.Second, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return time.Duration(i) * time.Second, nil
}
