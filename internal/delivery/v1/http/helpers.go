package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/msr-works/storefront-backend/pkg/e"
)

// Заголовок, в котором клиент передает и получает идентификатор сессии.
const sessionHeader = "X-Session-ID"

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrUnknownView):
		return http.StatusBadRequest, e.ErrUnknownView.Error()
	case errors.Is(err, e.ErrProductRequired):
		return http.StatusBadRequest, e.ErrProductRequired.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrSessionNotFound):
		return http.StatusNotFound, e.ErrSessionNotFound.Error()
	case errors.Is(err, e.ErrCartLineNotFound):
		return http.StatusNotFound, e.ErrCartLineNotFound.Error()
	case errors.Is(err, e.ErrInvalidTransition):
		return http.StatusConflict, e.ErrInvalidTransition.Error()
	case errors.Is(err, e.ErrPaymentInProgress):
		return http.StatusConflict, e.ErrPaymentInProgress.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusConflict, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrUnsupportedRegion):
		return http.StatusUnprocessableEntity, e.ErrUnsupportedRegion.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sessionID достает идентификатор сессии из заголовка.
// Пустое значение допустимо: юзкейс создаст новую сессию.
func sessionID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(sessionHeader))
}

// decodeJSON разбирает тело запроса; любой мусор трактуется как 400.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.ErrStatusBadRequest
	}

	return nil
}
