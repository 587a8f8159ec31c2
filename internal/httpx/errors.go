package httpx

import (
	"errors"
	"net/http"

	"github.com/stocklens/stocklens-mobile/internal/catalog"
)

// RespondError maps catalog errors to RFC7807 responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, catalog.ErrBatchesNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, catalog.ErrDuplicateSKU):
		Problem(w, http.StatusConflict, "Duplicate", err.Error())
	case errors.Is(err, catalog.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
