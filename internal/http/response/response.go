package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"intakedesk/internal/common"
)

type errorBody struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// Error maps the error taxonomy onto HTTP statuses. Errors without a
// caller-facing code render as a generic internal error.
func Error(w http.ResponseWriter, err error) {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		JSON(w, http.StatusInternalServerError, errorBody{Error: "internal error", Code: string(common.CodeInternal)})
		return
	}

	status := http.StatusInternalServerError
	message := appErr.Message
	switch appErr.Code {
	case common.CodeValidation, common.CodeInvalidArgument:
		status = http.StatusBadRequest
	case common.CodeNotFound:
		status = http.StatusNotFound
	default:
		message = "internal error"
	}
	JSON(w, status, errorBody{Error: message, Code: string(appErr.Code), Fields: appErr.Fields})
}
