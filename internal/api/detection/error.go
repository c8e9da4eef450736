package detection

import (
	"net/http"

	"TutelaGolang/pkg/response"
)

var (
	ErrInternalServerError  = response.NewError(http.StatusInternalServerError, "internal server error")
	ErrBadRequest           = response.NewError(http.StatusBadRequest, "bad request")
	ErrInvalidImagePayload  = response.NewError(http.StatusBadRequest, "invalid image payload")
	ErrDetectorUnavailable  = response.NewError(http.StatusServiceUnavailable, "detector service unavailable")
	ErrFrameResultsNotFound = response.NewError(http.StatusNotFound, "no frame results recorded")
)
