package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.MovementUseCase
	metrics  *Metrics
}

// NewMovementHandler construye el handler. metrics puede ser nil.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, query *inventory.MovementUseCase, metrics *Metrics) *MovementHandler {
	return &MovementHandler{register: register, query: query, metrics: metrics}
}

// Register godoc
// @Summary      Registrar movimiento
// @Description  Sin from_location es una entrada, sin to_location una salida, con ambas un traslado.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, from_location, to_location, qty"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse  "MISSING_LOCATION, SAME_LOCATION, INVALID_QUANTITY, MISSING_PRODUCT"
// @Failure      404   {object}  dto.ErrorResponse  "referencia inexistente (modo estricto)"
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.register.RegisterMovementFromRequest(c.UserContext(), in, GetUserID(c))
	h.metrics.ObserveMovement(err)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.query.List(pageFromQuery(c)))
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser numérico"})
	}
	out, err := h.query.GetByID(int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Description  El stock se recalcula sin el movimiento. Un id inexistente no es error.
// @Tags         movements
// @Security     Bearer
// @Param        id   path  int  true  "ID del movimiento"
// @Success      204
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser numérico"})
	}
	if err := h.query.Delete(c.UserContext(), int64(id)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
