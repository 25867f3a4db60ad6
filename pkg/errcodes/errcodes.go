package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "VALIDATION_ERROR"
	NotFound            failure.ErrorCode = "NotFound"

	// Ошибки сборки сделки.
	DeviceNotFound  failure.ErrorCode = "DeviceNotFound"
	PartNotFound    failure.ErrorCode = "PartNotFound"
	ServiceNotFound failure.ErrorCode = "ServiceNotFound"
	PriceRequired   failure.ErrorCode = "PriceRequired"
	InvalidQuantity failure.ErrorCode = "InvalidQuantity"
	InvalidCategory failure.ErrorCode = "InvalidCategory"

	// Ошибки взаимодействия с Битриксом.
	UpstreamFailure failure.ErrorCode = "UpstreamFailure"
	RowsPending     failure.ErrorCode = "ROWS_PENDING"
)
