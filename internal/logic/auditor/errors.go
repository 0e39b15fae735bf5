package auditor

import "errors"

var (
	ErrInvalidSchedule = errors.New("invalid audit schedule")
	ErrNotReady        = errors.New("auditor is not ready")
	ErrNoAudit         = errors.New("no successful audit yet")
	ErrAuditStale      = errors.New("last successful audit is too old")
	ErrAuditFatal      = errors.New("last audit failed")
)
