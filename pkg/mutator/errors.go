package mutator

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationMismatch is matched by every *ConfigurationError.
	ErrConfigurationMismatch = errors.New("configuration mismatch")
	// ErrTransformFailure is matched by flow errors raised in a transformer.
	ErrTransformFailure = errors.New("transform failure")
	// ErrSinkFailure is matched by flow errors raised in a sink.
	ErrSinkFailure = errors.New("sink failure")
)

// Stage names the step of a flow an error was raised in.
type Stage int

const (
	StageTransform Stage = iota
	StageSink
)

func (s Stage) String() string {
	return [...]string{
		"transform",
		"sink",
	}[s]
}

func (s Stage) sentinel() error {
	if s == StageSink {
		return ErrSinkFailure
	}
	return ErrTransformFailure
}

// ConfigurationError reports transformers registered on a pipe that Start
// cannot build a flow for.
type ConfigurationError struct {
	Pipe   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: transformers registered on pipe %q but %s", ErrConfigurationMismatch, e.Pipe, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfigurationMismatch
}

// FlowError is a failure raised by one stage of one flow.
type FlowError struct {
	Pipe           string
	SubscriptionID string
	Stage          Stage
	Err            error
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("pipe %s: %s failure (subscription %s): %v", e.Pipe, e.Stage, e.SubscriptionID, e.Err)
}

func (e *FlowError) Unwrap() []error {
	return []error{e.Stage.sentinel(), e.Err}
}
