package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Domje/Arc-Looterputer/internal/locale"
	"github.com/Domje/Arc-Looterputer/internal/logger"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 16

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req AddItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))
	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

type languageQuery struct {
	Lang string `validate:"omitempty,max=35,lang"`
}

// requestLanguages returns the display languages for r: the lang query
// parameter first, then Accept-Language. An invalid lang parameter writes a
// 400 response and returns false.
func requestLanguages(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	q := languageQuery{Lang: r.URL.Query().Get("lang")}
	if err := GetValidator().ValidateStruct(q); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLanguage)
		return nil, false
	}
	return locale.Languages(q.Lang, r.Header.Get("Accept-Language")), true
}
