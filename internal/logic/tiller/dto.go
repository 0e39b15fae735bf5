package tiller

import (
	"strconv"
	"time"
)

// Action is a mutating release operation.
type Action string

const (
	ActionInstall  Action = "install"
	ActionUpgrade  Action = "upgrade"
	ActionDelete   Action = "delete"
	ActionRollback Action = "rollback"
	ActionTest     Action = "test"
)

// StatusCode is the release state reported by the release service.
type StatusCode string

const (
	StatusUnknown         StatusCode = "UNKNOWN"
	StatusDeployed        StatusCode = "DEPLOYED"
	StatusDeleted         StatusCode = "DELETED"
	StatusSuperseded      StatusCode = "SUPERSEDED"
	StatusFailed          StatusCode = "FAILED"
	StatusDeleting        StatusCode = "DELETING"
	StatusPendingInstall  StatusCode = "PENDING_INSTALL"
	StatusPendingUpgrade  StatusCode = "PENDING_UPGRADE"
	StatusPendingRollback StatusCode = "PENDING_ROLLBACK"
)

// ReleaseStatus is the remote view of a single release revision.
type ReleaseStatus struct {
	ReleaseName string
	Version     int32
	Code        StatusCode
	Description string
}

// ReleaseSummary is one entry of a release listing.
type ReleaseSummary struct {
	Name         string     `json:"name"`
	Namespace    string     `json:"namespace"`
	Version      int32      `json:"version"`
	Status       StatusCode `json:"status"`
	ChartName    string     `json:"chart"`
	ChartVersion string     `json:"chartVersion"`
}

// Key identifies a release across pages.
func (r ReleaseSummary) Key() string {
	return r.Namespace + "/" + r.Name
}

// Release is the full content of a release revision.
type Release struct {
	ReleaseSummary
	Description string
	Values      map[string]any
	Manifest    string
}

// ReleasePage is one page returned by ListReleases.
// Total is the number of releases the service knew about when serving the page.
// Next names the release the following page starts at; empty on the last page.
type ReleasePage struct {
	Items []ReleaseSummary
	Total int
	Next  string
}

// ListingCursor tracks one listing attempt. It never outlives a ListAll call.
// PageOffset counts the releases consumed, Next is the token passed to the
// following ListReleases call.
type ListingCursor struct {
	PageOffset           int
	Next                 string
	AccumulatedCount     int
	ExpectedTotalAtStart int
}

// ChartRequest installs or upgrades a release. Chart is the path of a chart
// directory or packaged chart archive.
type ChartRequest struct {
	ReleaseName string
	Namespace   string
	Chart       string
	Values      map[string]any
	Timeout     time.Duration
	Wait        bool
}

// UninstallRequest deletes a release.
type UninstallRequest struct {
	ReleaseName string
	Purge       bool
	Timeout     time.Duration
}

// RollbackRequest rolls a release back to Version.
type RollbackRequest struct {
	ReleaseName string
	Version     int32
	Timeout     time.Duration
	Wait        bool
}

// TestRequest runs the release's test hooks.
type TestRequest struct {
	ReleaseName string
	Timeout     time.Duration
	Cleanup     bool
}

// TestRun is the outcome of a single test hook.
type TestRun struct {
	Name   string
	Passed bool
	Info   string
}

// TestResult aggregates the test hooks of one release.
type TestResult struct {
	ReleaseName string
	Runs        []TestRun
}

// Passed reports whether every test hook passed. No hooks counts as passed.
func (r *TestResult) Passed() bool {
	for i := range r.Runs {
		if !r.Runs[i].Passed {
			return false
		}
	}

	return true
}

// Failed returns the names of failing test hooks.
func (r *TestResult) Failed() []string {
	var out []string

	for i := range r.Runs {
		if !r.Runs[i].Passed {
			out = append(out, r.Runs[i].Name)
		}
	}

	return out
}

// ActionRequest is the input of Service.Perform. Fields unused by the action are ignored.
type ActionRequest struct {
	Action      Action
	ReleaseName string
	Namespace   string
	Chart       string
	Values      map[string]any
	Version     int32
	Timeout     time.Duration
	Wait        bool
	Purge       bool
	Cleanup     bool
}

// ActionResult is the success value of Service.Perform.
// Status is set for install, upgrade, delete and rollback; Test for test.
type ActionResult struct {
	Status *ReleaseStatus
	Test   *TestResult
}

// PodPhase mirrors the Kubernetes pod phase.
type PodPhase string

const (
	PodPending   PodPhase = "Pending"
	PodRunning   PodPhase = "Running"
	PodSucceeded PodPhase = "Succeeded"
	PodFailed    PodPhase = "Failed"
	PodUnknown   PodPhase = "Unknown"
)

// Pod represents a Kubernetes pod in the domain layer.
type Pod struct {
	UID         string
	Name        string
	Namespace   string
	IP          string
	Phase       PodPhase
	Terminating bool
}

// Running reports whether the pod can serve the release service.
func (p Pod) Running() bool {
	return p.Phase == PodRunning && !p.Terminating
}

func (p Pod) identifier() PodIdentifier {
	return PodIdentifier{
		Name:      p.Name,
		Namespace: p.Namespace,
		IP:        p.IP,
	}
}

func (p Pod) key() string {
	if p.UID != "" {
		return p.UID
	}

	return p.Namespace + "/" + p.Name
}

// PodIdentifier locates the pod hosting the release service.
type PodIdentifier struct {
	Name      string
	Namespace string
	IP        string
}

func (p PodIdentifier) String() string {
	return p.Namespace + "/" + p.Name
}

// Endpoint returns host:port for dialing the pod directly.
func (p PodIdentifier) Endpoint(port int) string {
	return p.IP + ":" + strconv.Itoa(port)
}

// JobOp selects what EnsureJob does.
type JobOp string

const (
	JobOpCreate JobOp = "create"
	JobOpDelete JobOp = "delete"
)

// CleanupMode decides whether a failed delete aborts the enclosing action.
type CleanupMode int

const (
	// CleanupBestEffort reports delete failures without aborting.
	CleanupBestEffort CleanupMode = iota
	// CleanupMandatory escalates delete failures; used for pre-update teardown.
	CleanupMandatory
)

func (m CleanupMode) String() string {
	if m == CleanupMandatory {
		return "mandatory"
	}

	return "best-effort"
}

// JobSpec describes an auxiliary pre/post-update job.
type JobSpec struct {
	Name                    string
	Namespace               string
	Image                   string
	Command                 []string
	Labels                  map[string]string
	BackoffLimit            int32
	ActiveDeadline          time.Duration
	TTLSecondsAfterFinished int32
}

// Job is the domain view of an existing job.
type Job struct {
	Name      string
	Namespace string
	Labels    map[string]string
	Active    int32
	Succeeded int32
	Failed    int32
}
