package server

import (
	"errors"
	"net/http"

	"warehouse-gateway/internal/core/apperror"
	"warehouse-gateway/internal/core/i18n"
	"warehouse-gateway/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SuccessResponse wraps every successful payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
	RayID   string `json:"ray_id,omitempty"`
}

// Respond writes data in the success envelope.
func Respond(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(SuccessResponse{
		Success: true,
		Code:    status,
		Data:    data,
	})
}

// Welcome returns a handler answering with a localized greeting.
func Welcome(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(SuccessResponse{
			Success: true,
			Code:    http.StatusOK,
			Message: i18n.T(key),
			Data:    nil,
		})
	}
}

// ErrorHandler renders any error returned by a handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	rayID, _ := c.Locals("requestid").(string)

	resp := ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: i18n.T(i18n.InternalServerError),
		RayID:   rayID,
	}

	var fiberErr *fiber.Error
	if appErr, ok := apperror.As(err); ok {
		resp.Code = appErr.Status
		resp.Message = appErr.Message
		resp.Errors = appErr.Details
	} else if errors.As(err, &fiberErr) {
		resp.Code = fiberErr.Code
		resp.Message = fiberErr.Message
	}

	log := logger.Ctx(c.UserContext())
	fields := []zap.Field{
		zap.String("ray_id", rayID),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", resp.Code),
		zap.Error(err),
	}
	if resp.Code >= http.StatusInternalServerError {
		log.Error("Request failed", fields...)
	} else {
		log.Warn("Request rejected", fields...)
	}

	return c.Status(resp.Code).JSON(resp)
}
