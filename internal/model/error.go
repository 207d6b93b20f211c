package model

import "errors"

var (
	ErrValidation        = errors.New("validation error")   // 400
	ErrOrderNotFound     = errors.New("order not found")    // 404
	ErrModelNotFound     = errors.New("model not found")    // 404
	ErrPartNotFound      = errors.New("part not found")     // 404
	ErrVisitNotFound     = errors.New("visit not found")    // 404
	ErrUnknownStation    = errors.New("unknown station")    // 400
	ErrUnknownStatus     = errors.New("unknown status")     // 400
	ErrOrderClosed       = errors.New("order closed")       // 409
	ErrInsufficientStock = errors.New("insufficient stock") // 409
	ErrBOMUnavailable    = errors.New("bom unavailable")    // 422
)
