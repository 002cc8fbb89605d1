package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"linktic/internal/domain/model"
	repo "linktic/internal/repository"
	"linktic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// 最小限のインメモリ実装。gorm実装はDBが要るのでここでは使わない。
type fakeProductoRepo struct {
	records map[int64]model.Producto
	nextID  int64
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{records: map[int64]model.Producto{}, nextID: 1}
}

func (f *fakeProductoRepo) FindByID(ctx context.Context, id int64) (model.Producto, error) {
	p, ok := f.records[id]
	if !ok {
		return model.Producto{}, repo.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductoRepo) FindAll(ctx context.Context, page int, size int) ([]model.Producto, error) {
	out := []model.Producto{}
	for _, p := range f.records {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductoRepo) Create(ctx context.Context, p model.Producto) (model.Producto, error) {
	p.ID = f.nextID
	f.nextID++
	f.records[p.ID] = p
	return p, nil
}

func (f *fakeProductoRepo) Update(ctx context.Context, p model.Producto) error {
	if _, ok := f.records[p.ID]; !ok {
		return repo.ErrNotFound
	}
	f.records[p.ID] = p
	return nil
}

func (f *fakeProductoRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func newProductoEcho(repo repo.ProductoRepository) *echo.Echo {
	uc := usecase.NewProductoUsecase(repo, testLogger())
	e := echo.New()
	NewProductoHandler(uc).RegisterRoutes(e)
	return e
}

func TestProductoHandler_Create(t *testing.T) {
	e := newProductoEcho(newFakeProductoRepo())

	rec := doJSON(e, http.MethodPost, "/api/productos", `{"nombre":"Widget","precio":9.99}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var p model.Producto
	_ = json.NewDecoder(rec.Body).Decode(&p)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "Widget", p.Nombre)
	assert.Equal(t, 9.99, p.Precio)
}

func TestProductoHandler_Create_InvalidPrecio(t *testing.T) {
	e := newProductoEcho(newFakeProductoRepo())

	rec := doJSON(e, http.MethodPost, "/api/productos", `{"nombre":"Widget","precio":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductoHandler_Detail_NotFound(t *testing.T) {
	e := newProductoEcho(newFakeProductoRepo())

	rec := doJSON(e, http.MethodGet, "/api/productos/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var er ErrorResponse
	_ = json.NewDecoder(rec.Body).Decode(&er)
	assert.Equal(t, "Producto no encontrado", er.Error)
}

func TestProductoHandler_CreateThenGetUpdateDelete(t *testing.T) {
	e := newProductoEcho(newFakeProductoRepo())

	rec := doJSON(e, http.MethodPost, "/api/productos", `{"nombre":"Widget","precio":9.99}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/productos/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPut, "/api/productos/1", `{"nombre":"Widget v2","precio":19.99}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var p model.Producto
	_ = json.NewDecoder(rec.Body).Decode(&p)
	assert.Equal(t, "Widget v2", p.Nombre)

	rec = doJSON(e, http.MethodDelete, "/api/productos/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/productos/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductoHandler_List_InvalidQuery(t *testing.T) {
	e := newProductoEcho(newFakeProductoRepo())

	rec := doJSON(e, http.MethodGet, "/api/productos?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/productos?size=101", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
