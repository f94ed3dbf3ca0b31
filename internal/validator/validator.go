// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finpro/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_category", validateAssetCategory)
	}
}

// Note: risk_profile is deliberately not a binding validation. Unrecognized
// profiles must be accepted and treated as Balanced, not rejected.
func validateAssetCategory(fl validator.FieldLevel) bool {
	return models.AssetCategory(fl.Field().String()).Valid()
}
