package taxonomy

// Kind tags a failure class raised by the Tiller client core.
// The set is closed: every Kind has exactly one message template.
type Kind string

const (
	KindChannelSetupFailed   Kind = "ChannelSetupFailed"
	KindServicesUnavailable  Kind = "ServicesUnavailable"
	KindPodNotFound          Kind = "PodNotFound"
	KindPodNotRunning        Kind = "PodNotRunning"
	KindReleaseActionFailed  Kind = "ReleaseActionFailed"
	KindTestFailed           Kind = "TestFailed"
	KindStatusQueryFailed    Kind = "StatusQueryFailed"
	KindContentQueryFailed   Kind = "ContentQueryFailed"
	KindRollbackFailed       Kind = "RollbackFailed"
	KindListingFailed        Kind = "ListingFailed"
	KindListingDriftDetected Kind = "ListingDriftDetected"
	KindJobCreateFailed      Kind = "JobCreateFailed"
	KindJobDeleteFailed      Kind = "JobDeleteFailed"
	KindChartCleanupFailed   Kind = "ChartCleanupFailed"
	KindVersionQueryFailed   Kind = "VersionQueryFailed"
)

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindChannelSetupFailed,
		KindServicesUnavailable,
		KindPodNotFound,
		KindPodNotRunning,
		KindReleaseActionFailed,
		KindTestFailed,
		KindStatusQueryFailed,
		KindContentQueryFailed,
		KindRollbackFailed,
		KindListingFailed,
		KindListingDriftDetected,
		KindJobCreateFailed,
		KindJobDeleteFailed,
		KindChartCleanupFailed,
		KindVersionQueryFailed,
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := templates[k]

	return ok
}

// Retryable reports whether the core itself restarts the operation on this kind.
// Only listing drift is restarted (bounded); pod polling happens before any
// error is raised.
func (k Kind) Retryable() bool {
	return k == KindListingDriftDetected
}

// Fatal reports whether an error of this kind aborts the enclosing operation
// by default. Cleanup failures are reported only; a caller may escalate them.
func (k Kind) Fatal() bool {
	switch k {
	case KindJobDeleteFailed, KindChartCleanupFailed, KindListingDriftDetected:
		return false
	default:
		return true
	}
}

func (k Kind) String() string {
	return string(k)
}
