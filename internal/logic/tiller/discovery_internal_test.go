package tiller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDiscoveryState_FirstRunning(t *testing.T) {
	t.Parallel()

	state := newDiscoveryState("app=helm", time.Now().Add(time.Minute))

	a := Pod{UID: "a", Name: "tiller-a", Namespace: "kube-system", Phase: PodPending}
	b := Pod{UID: "b", Name: "tiller-b", Namespace: "kube-system", Phase: PodPending}

	state.observe([]Pod{b})
	state.observe([]Pod{a, b})

	require.Len(t, state.candidates, 2)
	require.Equal(t, "tiller-b", state.candidates[0].Name)

	_, ok := state.firstRunning([]Pod{a, b})
	require.False(t, ok)

	a.Phase = PodRunning
	b.Phase = PodRunning

	got, ok := state.firstRunning([]Pod{a, b})
	require.True(t, ok)
	require.Equal(t, "tiller-b", got.Name)
}

func TestPod_KeyFallsBackToName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "uid-1", Pod{UID: "uid-1", Name: "x", Namespace: "ns"}.key())
	require.Equal(t, "ns/x", Pod{Name: "x", Namespace: "ns"}.key())
}
