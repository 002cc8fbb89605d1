package model

// 在庫。productoIdごとに最大1行。
// cantidadは符号付き（0・マイナスも許容）。
type Inventario struct {
	ProductoID int64 `gorm:"primaryKey" json:"productoId"`
	Cantidad   int64 `gorm:"not null" json:"cantidad"`
}
