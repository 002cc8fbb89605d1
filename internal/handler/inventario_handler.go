package handler

import (
	"net/http"
	"strconv"

	"linktic/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /inventarios の読み取り・更新
type InventarioHandler struct {
	uc *usecase.InventarioUsecase
}

// DI
func NewInventarioHandler(uc *usecase.InventarioUsecase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

func (h *InventarioHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/inventarios/:productoId", h.getCantidad)
	e.PUT("/inventarios/:productoId", h.actualizarCantidad)
}

type InventarioUpdateRequest struct {
	//未指定とゼロを区別するためポインタ
	Cantidad *int64 `json:"cantidad"`
}

func (h *InventarioHandler) getCantidad(c echo.Context) error {
	productoID, err := strconv.ParseInt(c.Param("productoId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid producto id"})
	}

	out, err := h.uc.GetCantidad(c.Request().Context(), productoID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *InventarioHandler) actualizarCantidad(c echo.Context) error {
	productoID, err := strconv.ParseInt(c.Param("productoId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid producto id"})
	}

	var req InventarioUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Cantidad == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cantidad required"})
	}

	out, err := h.uc.ActualizarCantidad(c.Request().Context(), productoID, *req.Cantidad)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
