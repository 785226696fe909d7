package logging

import (
	"go.uber.org/zap"

	"github.com/go-drift/drift/pkg/errors"
)

// FrameworkHandler routes framework errors through the structured logger.
// Install it once at startup:
//
//	errors.SetHandler(logging.NewFrameworkHandler())
type FrameworkHandler struct{}

// NewFrameworkHandler returns a handler backed by the global logger.
func NewFrameworkHandler() *FrameworkHandler {
	return &FrameworkHandler{}
}

// HandleError logs a framework error with its operation and kind.
func (h *FrameworkHandler) HandleError(err *errors.DriftError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Channel != "" {
		fields = append(fields, zap.String("channel", err.Channel))
	}
	Error("Framework error", fields...)
}

// HandlePanic logs a recovered panic with its stack trace.
func (h *FrameworkHandler) HandlePanic(err *errors.PanicError) {
	if err == nil {
		return
	}
	Error("Recovered panic",
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
		zap.String("stack", err.StackTrace),
	)
}

// HandleBuildError logs a widget build failure.
func (h *FrameworkHandler) HandleBuildError(err *errors.BuildError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("widget", err.Widget),
		zap.String("element", err.Element),
	}
	if err.Err != nil {
		fields = append(fields, zap.Error(err.Err))
	}
	if err.Recovered != nil {
		fields = append(fields, zap.Any("recovered", err.Recovered))
	}
	Error("Widget build failed", fields...)
}
