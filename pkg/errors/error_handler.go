package errors

import (
	stderrors "errors"

	"file-relay/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// StatusOf maps a RelayError code to the HTTP status the façade answers with.
func StatusOf(err error) int {
	var re *RelayError
	if !stderrors.As(err, &re) {
		return fiber.StatusInternalServerError
	}
	switch re.Code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeMissingFile:
		return fiber.StatusBadRequest
	case CodeFileTooLarge:
		return fiber.StatusRequestEntityTooLarge
	default:
		return fiber.StatusInternalServerError
	}
}

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	status := StatusOf(err)
	var re *RelayError
	if stderrors.As(err, &re) {
		if status >= fiber.StatusInternalServerError {
			logger.Sugar.Errorw("request failed", "code", re.Code, "path", c.Path(), "error", err)
		}
	} else {
		logger.Sugar.Errorw("unexpected error", "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   Message(err),
	})
}

// FiberErrorHandler is installed as fiber.Config.ErrorHandler so framework
// errors (body too large, unknown route) keep the JSON envelope.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"error":   fe.Message,
		})
	}
	return HandleError(c, err)
}
