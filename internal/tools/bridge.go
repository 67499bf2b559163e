package tools

import (
	"github.com/HendryAvila/sheraa-eligibility/internal/eligibility"
	"go.uber.org/zap"
)

// LogObserver forwards wizard notifications to the structured log. Hosts
// without a UI of their own (the MCP and HTTP adapters) install it so
// blocked steps and navigation requests stay visible.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an observer writing to logger. Returns nil if
// logger is nil; wizards accept a nil observer.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		return nil
	}
	return &LogObserver{log: logger}
}

var _ eligibility.Observer = (*LogObserver)(nil)

// SelectionRequired logs a blocked Advance.
func (o *LogObserver) SelectionRequired(questionID string) {
	if o == nil {
		return
	}
	o.log.Info("selection required", zap.String("question", questionID))
}

// NavigateTo logs a request to open a program page.
func (o *LogObserver) NavigateTo(programID, link string) {
	if o == nil {
		return
	}
	o.log.Info("navigate to program", zap.String("program", programID), zap.String("link", link))
}
