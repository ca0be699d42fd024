package controllers

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mehmood09/restaurant-system/models"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9 ()-]{5,18}$`)

// RequestValidator handles input validation beyond what binding tags cover.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &RequestValidator{validate: v}
}

// ParseCategoryFilter reads the optional ?category=<id> query parameter.
// Returns the cache key alongside: "all" when unfiltered.
func (rv *RequestValidator) ParseCategoryFilter(c *gin.Context) (*uuid.UUID, string, error) {
	raw := c.Query("category")
	if raw == "" {
		return nil, "all", nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, "", errors.New("invalid category ID format")
	}
	return &id, id.String(), nil
}

// ValidateCheckout applies the customer-detail rules the binding tags cannot
// express, currently the phone format.
func (rv *RequestValidator) ValidateCheckout(req *models.CheckoutRequest) error {
	if err := rv.validate.Var(req.CustomerPhone, "phone"); err != nil {
		return errors.New("invalid phone number")
	}
	return nil
}
