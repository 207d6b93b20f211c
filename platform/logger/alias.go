package logger

import "go.uber.org/zap"

// Field constructors re-exported so callers never import zap directly.
var (
	String  = zap.String
	Strings = zap.Strings
	Int     = zap.Int
	Int32   = zap.Int32
	Int64   = zap.Int64
	Bool    = zap.Bool
	Any     = zap.Any
	ErrorF  = zap.Error
)

type Field = zap.Field
