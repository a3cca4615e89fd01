package dashboard

import (
	"net/http"

	"github.com/Abraxas-365/pathway/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("DASHBOARD")

var CodeFetchFailed = ErrRegistry.Register("FETCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error fetching dashboard data")

func ErrFetchFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeFetchFailed, cause)
}
