package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-dashboard/internal/application/dto"
	"github.com/jhoicas/sales-dashboard/internal/domain"
)

// LocalError key de Locals donde los handlers dejan el error para el log de la petición.
const LocalError = "error"

var errorTable = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrBadPassword, fiber.StatusUnauthorized, "BAD_PASSWORD"},
	{domain.ErrUsernameTaken, fiber.StatusConflict, "USERNAME_TAKEN"},
	{domain.ErrPasswordMismatch, fiber.StatusBadRequest, "PASSWORD_MISMATCH"},
	{domain.ErrParse, fiber.StatusUnprocessableEntity, "PARSE_ERROR"},
	{domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrIO, fiber.StatusInternalServerError, "IO_ERROR"},
	{domain.ErrDatasetNotReady, fiber.StatusPreconditionFailed, "DATASET_NOT_READY"},
	{domain.ErrSessionNotFound, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
}

// writeError traduce errores de dominio a dto.ErrorResponse. Lo no mapeado es 500 INTERNAL
// y no expone el detalle al cliente.
func writeError(c *fiber.Ctx, err error) error {
	c.Locals(LocalError, err)
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return c.Status(e.status).JSON(dto.ErrorResponse{Code: e.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
