package engine

import (
	"errors"
	"fmt"

	"github.com/stewardhq/steward/pkg/models"
)

// Driver control-flow errors. errCancelled aborts processing of a task
// an operator cancelled; errShutdown aborts because the engine is
// stopping and leaves the task for orphan recovery.
var (
	errCancelled = errors.New("task cancelled")
	errShutdown  = errors.New("engine shutting down")
)

// taskFailure fails the whole task with a reason.
type taskFailure struct {
	reason string
}

func (e *taskFailure) Error() string { return e.reason }

func failTaskf(format string, args ...any) error {
	return &taskFailure{reason: fmt.Sprintf(format, args...)}
}

// stageError reports one failed stage execution. The graph driver
// inspects it for on_failure redirects; the linear driver converts it
// into a task failure.
type stageError struct {
	stage    string
	category models.FailureCategory
	reason   string
}

func (e *stageError) Error() string {
	return fmt.Sprintf("stage %q failed (%s): %s", e.stage, e.category, e.reason)
}
