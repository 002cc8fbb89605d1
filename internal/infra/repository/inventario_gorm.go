package repository

import (
	"context"
	"errors"

	"linktic/internal/domain/model"
	repo "linktic/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventarioGormRepository struct {
	db *gorm.DB
}

// DI
func NewInventarioGormRepository(db *gorm.DB) *InventarioGormRepository {
	return &InventarioGormRepository{db: db}
}

// productoIdで在庫を取得
func (r *InventarioGormRepository) FindByProductoID(ctx context.Context, productoID int64) (model.Inventario, error) {
	var inv model.Inventario
	err := r.db.WithContext(ctx).First(&inv, "producto_id = ?", productoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Inventario{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Inventario{}, err
	}
	return inv, nil
}

// upsert。行がなければINSERT、あればcantidadを上書き。
func (r *InventarioGormRepository) Save(ctx context.Context, inv model.Inventario) (model.Inventario, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "producto_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"cantidad"}),
		}).
		Create(&inv).Error
	if err != nil {
		return model.Inventario{}, err
	}
	return inv, nil
}
