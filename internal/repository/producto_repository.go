package repository

import (
	"context"
	"errors"

	"linktic/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductoRepository interface {
	FindByID(ctx context.Context, id int64) (model.Producto, error)
	FindAll(ctx context.Context, page int, size int) ([]model.Producto, error)

	Create(ctx context.Context, p model.Producto) (model.Producto, error)
	Update(ctx context.Context, p model.Producto) error
	Delete(ctx context.Context, id int64) error
}
