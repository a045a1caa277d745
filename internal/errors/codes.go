package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidTime   ErrorCode = "VALIDATION_006"
)

// Analysis error codes (ANALYSIS_*)
const (
	AnalysisEmptyInput      ErrorCode = "ANALYSIS_001"
	AnalysisMalformedRecord ErrorCode = "ANALYSIS_002"
	AnalysisFailed          ErrorCode = "ANALYSIS_003"
)

// Catalog error codes (CATALOG_*)
const (
	CatalogUnavailable ErrorCode = "CATALOG_001"
	CatalogEmpty       ErrorCode = "CATALOG_002"
)

// Product recommendation error codes (PRODUCT_*)
const (
	ProductRecommendationFailed ErrorCode = "PRODUCT_001"
	ProductInvalidProfile       ErrorCode = "PRODUCT_002"
)

// Insight error codes (INSIGHT_*)
const (
	InsightUnavailable ErrorCode = "INSIGHT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid transaction date format",
	ValidationInvalidTime:   "Invalid transaction time format",

	// Analysis errors
	AnalysisEmptyInput:      "At least one transaction is required",
	AnalysisMalformedRecord: "Transaction record could not be classified",
	AnalysisFailed:          "Transaction analysis failed",

	// Catalog errors
	CatalogUnavailable: "Product catalog is not loaded",
	CatalogEmpty:       "Product catalog contains no products",

	// Product errors
	ProductRecommendationFailed: "Product recommendation failed",
	ProductInvalidProfile:       "User profile data is invalid",

	// Insight errors
	InsightUnavailable: "Insight service is not configured",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
