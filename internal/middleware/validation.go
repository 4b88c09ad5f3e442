package middleware

import (
	"time"

	"cs-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedDateKey holds the parsed date query parameter in fiber.Ctx locals.
const ValidatedDateKey = "validated_date"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateDateQuery validates the optional date query parameter. When present
// the parsed date is stored in locals under ValidatedDateKey.
func (vm *ValidationMiddleware) ValidateDateQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, ok, err := vm.validator.ValidateDate(c.Query("date"))
		if err != nil {
			return err // handled by ErrorHandler
		}
		if ok {
			c.Locals(ValidatedDateKey, date)
		}
		return c.Next()
	}
}

// ValidatedDate returns the date stored by ValidateDateQuery, if any.
func ValidatedDate(c *fiber.Ctx) (time.Time, bool) {
	date, ok := c.Locals(ValidatedDateKey).(time.Time)
	return date, ok
}
