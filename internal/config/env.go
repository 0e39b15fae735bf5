package config

import "time"

// All tillerguard env vars use the TILLERGUARD_ prefix; duration values
// support explicit units (e.g. 500ms, 40s, 2m).
const envPrefix = "TILLERGUARD_"

// Standard k8s env keys used as fallback when the prefixed keys are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)

// Lower bounds enforced after parsing.
const (
	envMinPingerInterval         = time.Second
	envMinPingerFailureThreshold = 1
	envMinChannelTimeout         = 100 * time.Millisecond
	envMinPodDiscoveryTimeout    = time.Second
	envMinPodPollInterval        = 100 * time.Millisecond
	envMinListPageSize           = 1
	envMinTillerPort             = 1
	envMaxTillerPort             = 65535
)
