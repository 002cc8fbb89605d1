package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"linktic/internal/domain/model"
	repo "linktic/internal/repository"
)

// ProductoDirectory は商品の存在確認・取得の約束。
// 失敗はすべて「不在」に畳み込まれ、エラーは返ってこない。
type ProductoDirectory interface {
	Exists(ctx context.Context, id int64) bool
	Fetch(ctx context.Context, id int64) (model.Producto, bool)
}

type InventarioUsecase struct {
	directory ProductoDirectory
	invRepo   repo.InventarioRepository
	logger    *slog.Logger
}

// DI
func NewInventarioUsecase(
	directory ProductoDirectory,
	invRepo repo.InventarioRepository,
	logger *slog.Logger,
) *InventarioUsecase {
	return &InventarioUsecase{
		directory: directory,
		invRepo:   invRepo,
		logger:    logger,
	}
}

type InventarioInfo struct {
	ProductoID int64 `json:"productoId"`
	Cantidad   int64 `json:"cantidad"`
}

// 読み取り/更新の共通レスポンス。永続化はしない読み取り時の射影。
type InventarioCompleteOutput struct {
	Inventario InventarioInfo `json:"inventario"`
	Producto   model.Producto `json:"producto"`
}

// GetCantidad は在庫数を返す。
// 商品が存在しなければ404で終わり、在庫は参照しない。
// 在庫行がなければcantidad=0扱い（初期状態であってエラーではない）。
func (u *InventarioUsecase) GetCantidad(ctx context.Context, productoID int64) (InventarioCompleteOutput, error) {
	if productoID <= 0 {
		return InventarioCompleteOutput{}, NewHTTPError(http.StatusBadRequest, "invalid producto id")
	}

	producto, ok := u.directory.Fetch(ctx, productoID)
	if !ok {
		u.logger.Warn("producto no encontrado", "productoId", productoID)
		return InventarioCompleteOutput{}, NewHTTPError(http.StatusNotFound, "Producto no encontrado")
	}

	cantidad := int64(0)
	inv, err := u.invRepo.FindByProductoID(ctx, productoID)
	if err == nil {
		cantidad = inv.Cantidad
	} else if err != repo.ErrNotFound {
		return InventarioCompleteOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return InventarioCompleteOutput{
		Inventario: InventarioInfo{ProductoID: productoID, Cantidad: cantidad},
		Producto:   producto,
	}, nil
}

// ActualizarCantidad は在庫数を全上書きする（加減算ではない）。
// 同じproductoIdへの同時書き込みは最後の保存が勝つ。
func (u *InventarioUsecase) ActualizarCantidad(ctx context.Context, productoID int64, cantidad int64) (InventarioCompleteOutput, error) {
	if productoID <= 0 {
		return InventarioCompleteOutput{}, NewHTTPError(http.StatusBadRequest, "invalid producto id")
	}

	producto, ok := u.directory.Fetch(ctx, productoID)
	if !ok {
		u.logger.Warn("producto no encontrado al actualizar inventario", "productoId", productoID)
		return InventarioCompleteOutput{}, NewHTTPError(http.StatusNotFound, "Producto no encontrado")
	}

	inv, err := u.invRepo.FindByProductoID(ctx, productoID)
	if err == repo.ErrNotFound {
		//初回書き込み。ベースラインはcantidad=0（保存はこの後のSaveで）
		inv = model.Inventario{ProductoID: productoID, Cantidad: 0}
	} else if err != nil {
		return InventarioCompleteOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	anterior := inv.Cantidad
	inv.Cantidad = cantidad

	saved, err := u.invRepo.Save(ctx, inv)
	if err != nil {
		return InventarioCompleteOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.logger.Info("inventario actualizado",
		"productoId", productoID,
		"cantidadAnterior", anterior,
		"cantidadNueva", saved.Cantidad,
	)

	return InventarioCompleteOutput{
		Inventario: InventarioInfo{ProductoID: productoID, Cantidad: saved.Cantidad},
		Producto:   producto,
	}, nil
}
