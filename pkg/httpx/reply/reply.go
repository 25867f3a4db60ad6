package reply

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"dealdesk/pkg/contextx"
	"dealdesk/pkg/errcodes"
	"dealdesk/pkg/logx"
	"dealdesk/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	code := failure.Code(err)

	// Ошибки схемы запроса отдаются фиксированной формой без деталей,
	// детали остаются в логе.
	if code == errcodes.ValidationError {
		logger(ctx).Error(
			"validation failed",
			slog.String("details", failure.Description(err)),
			slog.Time("timestamp", time.Now()),
		)
		JSON(ctx, w, http.StatusBadRequest, rest.Error{
			OK:   false,
			Code: rest.ErrorCode(errcodes.ValidationError),
		})

		return
	}

	response := rest.Error{
		OK:        false,
		Code:      rest.ErrorCode(code.String()),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsConflictError(err):
		JSON(ctx, w, http.StatusConflict, response)
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		if response.Code == "" {
			response.Code = rest.ErrorCode(errcodes.InternalServerError)
		}

		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
