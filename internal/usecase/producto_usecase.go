package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"linktic/internal/domain/model"
	repo "linktic/internal/repository"
)

type ProductoUsecase struct {
	productoRepo repo.ProductoRepository
	logger       *slog.Logger
}

// DI
func NewProductoUsecase(productoRepo repo.ProductoRepository, logger *slog.Logger) *ProductoUsecase {
	return &ProductoUsecase{
		productoRepo: productoRepo,
		logger:       logger,
	}
}

type ProductoInput struct {
	Nombre string
	Precio float64
}

func (u *ProductoUsecase) CreateProducto(ctx context.Context, in ProductoInput) (model.Producto, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return model.Producto{}, NewHTTPError(http.StatusBadRequest, "nombre required")
	}
	if in.Precio <= 0 {
		return model.Producto{}, NewHTTPError(http.StatusBadRequest, "precio must be > 0")
	}

	p, err := u.productoRepo.Create(ctx, model.Producto{
		Nombre: strings.TrimSpace(in.Nombre),
		Precio: in.Precio,
	})
	if err != nil {
		return model.Producto{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.logger.Info("producto creado", "productoId", p.ID, "nombre", p.Nombre)
	return p, nil
}

func (u *ProductoUsecase) GetProductoByID(ctx context.Context, id int64) (model.Producto, error) {
	if id <= 0 {
		return model.Producto{}, NewHTTPError(http.StatusBadRequest, "invalid producto id")
	}

	p, err := u.productoRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Producto{}, NewHTTPError(http.StatusNotFound, "Producto no encontrado")
	}
	if err != nil {
		return model.Producto{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// GET /api/productosの入力（pageは0始まり）
func (u *ProductoUsecase) ListProductos(ctx context.Context, page int, size int) ([]model.Producto, error) {
	if page < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if size < 1 || size > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid size")
	}

	productos, err := u.productoRepo.FindAll(ctx, page, size)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return productos, nil
}

func (u *ProductoUsecase) UpdateProducto(ctx context.Context, id int64, in ProductoInput) (model.Producto, error) {
	if id <= 0 {
		return model.Producto{}, NewHTTPError(http.StatusBadRequest, "invalid producto id")
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return model.Producto{}, NewHTTPError(http.StatusBadRequest, "nombre required")
	}
	if in.Precio <= 0 {
		return model.Producto{}, NewHTTPError(http.StatusBadRequest, "precio must be > 0")
	}

	p := model.Producto{
		ID:     id,
		Nombre: strings.TrimSpace(in.Nombre),
		Precio: in.Precio,
	}

	err := u.productoRepo.Update(ctx, p)
	if err == repo.ErrNotFound {
		return model.Producto{}, NewHTTPError(http.StatusNotFound, "Producto no encontrado")
	}
	if err != nil {
		return model.Producto{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.logger.Info("producto actualizado", "productoId", id)
	return p, nil
}

func (u *ProductoUsecase) DeleteProducto(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid producto id")
	}

	err := u.productoRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Producto no encontrado")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.logger.Info("producto eliminado", "productoId", id)
	return nil
}
