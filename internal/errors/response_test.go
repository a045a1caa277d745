package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(AnalysisEmptyInput, "trace-123")

	s.Equal("ANALYSIS_001", resp.Error.Code)
	s.Equal(GetErrorMessage(AnalysisEmptyInput), resp.Error.Message)
	s.Equal("trace-123", resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	resp := NewErrorResponse(ValidationGeneral, "trace-123",
		WithDetails("amount must be positive"),
		WithMessage("custom message"))

	s.Equal([]string{"amount must be positive"}, resp.Error.Details)
	s.Equal("custom message", resp.Error.Message)
}

func (s *ResponseTestSuite) TestNewValidationError_FieldDetails() {
	resp := NewValidationError(map[string]string{"date": "is required"}, "t-1")

	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Contains(resp.Error.Details, "date: is required")
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetail() {
	internal := errors.New("catalog file corrupted at byte 1337")
	resp, err := WrapSystemError(internal, "t-1")

	s.Equal(internal, err)
	s.Equal("SYSTEM_001", resp.Error.Code)
	s.NotContains(resp.Error.Message, "1337")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{ValidationInvalidTime, http.StatusBadRequest},
		{AnalysisEmptyInput, http.StatusBadRequest},
		{AnalysisMalformedRecord, http.StatusBadRequest},
		{CatalogEmpty, http.StatusNotFound},
		{ProductInvalidProfile, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{CatalogUnavailable, http.StatusServiceUnavailable},
		{InsightUnavailable, http.StatusServiceUnavailable},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{AnalysisFailed, http.StatusInternalServerError},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(string(tt.code), func() {
			s.Equal(tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientServerSplit() {
	s.True(NewErrorResponse(ValidationGeneral, "t").IsClientError())
	s.False(NewErrorResponse(ValidationGeneral, "t").IsServerError())
	s.True(NewErrorResponse(SystemInternalError, "t").IsServerError())
}

func (s *ResponseTestSuite) TestToJSON_Envelope() {
	data, err := NewErrorResponse(CatalogEmpty, "t-9").ToJSON()
	s.NoError(err)

	var decoded map[string]map[string]interface{}
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("CATALOG_002", decoded["error"]["code"])
	s.Equal("t-9", decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(AnalysisFailed))
	s.False(IsValidErrorCode(ErrorCode("NOPE_001")))
}
