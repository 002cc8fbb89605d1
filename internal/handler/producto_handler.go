package handler

import (
	"net/http"
	"strconv"

	"linktic/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /api/productos のCRUD
type ProductoHandler struct {
	uc *usecase.ProductoUsecase
}

// DI
func NewProductoHandler(uc *usecase.ProductoUsecase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

func (h *ProductoHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/productos", h.create)
	e.GET("/api/productos", h.list)
	e.GET("/api/productos/:id", h.detail)
	e.PUT("/api/productos/:id", h.update)
	e.DELETE("/api/productos/:id", h.delete)
}

type ProductoRequest struct {
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
}

func (h *ProductoHandler) create(c echo.Context) error {
	var req ProductoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.CreateProducto(c.Request().Context(), usecase.ProductoInput{
		Nombre: req.Nombre,
		Precio: req.Precio,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}

func (h *ProductoHandler) list(c echo.Context) error {
	// page（default 0）
	page := 0
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// size（default 10）
	size := 10
	if v := c.QueryParam("size"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid size"})
		}
		size = s
	}

	productos, err := h.uc.ListProductos(c.Request().Context(), page, size)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, productos)
}

func (h *ProductoHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProductoByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *ProductoHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ProductoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.UpdateProducto(c.Request().Context(), id, usecase.ProductoInput{
		Nombre: req.Nombre,
		Precio: req.Precio,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *ProductoHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteProducto(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
