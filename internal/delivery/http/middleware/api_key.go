package middleware

import (
	"crypto/subtle"

	"file-relay/pkg/constants"
	"file-relay/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

// APIKeyAuth accepts the key from the X-API-Key header or the apiKey query
// parameter. An empty configured key rejects every request.
func APIKeyAuth(apiKey string) fiber.Handler {
	want := []byte(apiKey)
	return func(c *fiber.Ctx) error {
		got := c.Get(constants.APIKeyHeader)
		if got == "" {
			got = c.Query(constants.APIKeyQuery)
		}
		if len(want) == 0 || got == "" || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			return errors.HandleError(c, errors.ErrUnauthorized())
		}
		return c.Next()
	}
}
