package repository

import (
	"context"
	"errors"

	"linktic/internal/domain/model"
	repo "linktic/internal/repository"

	"gorm.io/gorm"
)

type ProductoGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductoGormRepository(db *gorm.DB) *ProductoGormRepository {
	return &ProductoGormRepository{db: db}
}

// IDで商品を取得
func (r *ProductoGormRepository) FindByID(ctx context.Context, id int64) (model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Producto{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Producto{}, err
	}
	return p, nil
}

// ページング付き一覧（pageは0始まり）
func (r *ProductoGormRepository) FindAll(ctx context.Context, page int, size int) ([]model.Producto, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(page * size).
		Limit(size).
		Find(&productos).Error
	if err != nil {
		return []model.Producto{}, err
	}
	return productos, nil
}

// 商品の作成
func (r *ProductoGormRepository) Create(ctx context.Context, p model.Producto) (model.Producto, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Producto{}, err
	}
	return p, nil
}

// 商品の更新
func (r *ProductoGormRepository) Update(ctx context.Context, p model.Producto) error {
	res := r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"nombre": p.Nombre,
		"precio": p.Precio,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品の削除（物理削除）
func (r *ProductoGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Producto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
