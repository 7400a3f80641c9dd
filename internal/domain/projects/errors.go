package projects

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrPhaseNotFound      = errors.New("phase not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrCostNotFound       = errors.New("cost not found")
	ErrHourEntryNotFound  = errors.New("hour entry not found")
	ErrAssignmentNotFound = errors.New("team assignment not found")
)
