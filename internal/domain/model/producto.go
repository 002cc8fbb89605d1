package model

// 商品。producto-serviceが所有し、inventario-serviceは参照のみ。
type Producto struct {
	ID     int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre string  `gorm:"type:varchar(255);not null" json:"nombre"`
	Precio float64 `gorm:"not null" json:"precio"`
}
