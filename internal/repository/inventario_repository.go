package repository

import (
	"context"

	"linktic/internal/domain/model"
)

// 在庫の永続化。productoIdをキーにした1行のみ扱う。
type InventarioRepository interface {
	// 見つからなければErrNotFound
	FindByProductoID(ctx context.Context, productoID int64) (model.Inventario, error)

	// upsert。最後のSaveが勝つ（バージョン管理なし）。
	Save(ctx context.Context, inv model.Inventario) (model.Inventario, error)
}
