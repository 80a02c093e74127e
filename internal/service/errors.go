package service

import "errors"

var (
	ErrNodeNotFound  = errors.New("node not found")
	ErrRootNode      = errors.New("operation not allowed on the root node")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrInvalidPlan   = errors.New("invalid plan")
	ErrEmptyTopic    = errors.New("topic must not be empty")
)
