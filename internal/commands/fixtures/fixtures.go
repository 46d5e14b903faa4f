package fixtures

import "errors"

// RecordingRegistry captures command handlers passed to RegisterCommand.
type RecordingRegistry struct {
	Handlers []any
	Err      error
}

// NewRecordingRegistry constructs an empty registry recorder.
func NewRecordingRegistry() *RecordingRegistry {
	return &RecordingRegistry{
		Handlers: make([]any, 0),
	}
}

// RegisterCommand satisfies commands.CommandRegistry while recording the handler.
func (r *RecordingRegistry) RegisterCommand(handler any) error {
	if r.Err != nil {
		return r.Err
	}
	if handler == nil {
		return errors.New("fixtures: nil handler")
	}
	r.Handlers = append(r.Handlers, handler)
	return nil
}
