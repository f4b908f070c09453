// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// tickerRegex accepts exchange symbols such as "ITSA4.SA", "BRK-B" and "^BVSP".
var tickerRegex = regexp.MustCompile(`^[A-Za-z0-9^][A-Za-z0-9.\-=^]{0,19}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_type", validateAssetType)
		_ = v.RegisterValidation("ticker", validateTicker)
	}
}

// IsTicker reports whether s is a well-formed ticker symbol.
func IsTicker(s string) bool {
	return tickerRegex.MatchString(strings.TrimSpace(s))
}

// IsAssetType reports whether s names a supported asset type, ignoring case.
func IsAssetType(s string) bool {
	switch strings.ToLower(s) {
	case "stock", "reit", "etf":
		return true
	}
	return false
}

func validateAssetType(fl validator.FieldLevel) bool {
	return IsAssetType(fl.Field().String())
}

func validateTicker(fl validator.FieldLevel) bool {
	return IsTicker(fl.Field().String())
}
