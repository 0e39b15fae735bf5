package tiller

import "time"

const (
	DefaultTillerNamespace = "kube-system"
	DefaultTillerPodLabels = "app=helm,name=tiller"
	DefaultTillerPort      = 44134

	// DefaultListPageSize matches the page size Tiller clients have historically used.
	DefaultListPageSize = 32

	DefaultListRetryBudget = 3
	DefaultListRetryDelay  = time.Second

	defaultPollInterval = time.Second

	// latestVersion asks the release service for the most recent revision.
	latestVersion int32 = 0

	noDescriptionPlaceholder = "no description available"
)
