package core

import "errors"

// ErrStarted is the panic value for configuring or starting an engine whose
// loop has already been started.
var ErrStarted = errors.New("core: engine already started")

// Stage names the construction step that failed.
type Stage int

const (
	StageWindow Stage = iota
	StageContext
	StageRenderer
	StageSurface
)

func (s Stage) String() string {
	switch s {
	case StageWindow:
		return "window"
	case StageContext:
		return "context"
	case StageRenderer:
		return "renderer"
	case StageSurface:
		return "surface"
	}
	return "unknown"
}

// ConstructionError reports why New failed. No resources are retained when
// it is returned.
type ConstructionError struct {
	Stage Stage
	Err   error
}

func (e *ConstructionError) Error() string {
	var msg string
	switch e.Stage {
	case StageWindow:
		msg = "could not build window"
	case StageContext:
		msg = "could not make context current"
	case StageRenderer:
		msg = "could not create renderer"
	case StageSurface:
		msg = "could not create canvas"
	default:
		msg = "could not construct engine"
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *ConstructionError) Unwrap() error { return e.Err }
