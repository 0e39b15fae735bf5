package k8s_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"
	metricsfake "k8s.io/metrics/pkg/client/clientset/versioned/fake"

	"github.com/skillcoder/tillerguard/internal/adapters/outbound/k8s"
	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

type notFound interface {
	IsNotFound()
}

func tillerPod(name, namespace string, phase corev1.PodPhase, labels map[string]string) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			UID:       types.UID("uid-" + name),
			Labels:    labels,
		},
		Status: corev1.PodStatus{
			Phase: phase,
			PodIP: "10.1.2.3",
		},
	}
}

func TestAdapter_ListPodsQuery(t *testing.T) {
	t.Parallel()

	tillerLabels := map[string]string{"app": "helm", "name": "tiller"}

	terminating := tillerPod("tiller-old", "kube-system", corev1.PodRunning, tillerLabels)
	now := metav1.NewTime(time.Now())
	terminating.DeletionTimestamp = &now

	clientset := fake.NewSimpleClientset(
		tillerPod("tiller-abc", "kube-system", corev1.PodRunning, tillerLabels),
		terminating,
		tillerPod("tiller-other-ns", "default", corev1.PodRunning, tillerLabels),
		tillerPod("coredns", "kube-system", corev1.PodRunning, map[string]string{"k8s-app": "kube-dns"}),
	)

	adapter := k8s.New(slog.Default(), clientset, metricsfake.NewSimpleClientset())

	got, err := adapter.ListPodsQuery(t.Context(), "kube-system", "app=helm,name=tiller")
	require.NoError(t, err)
	require.ElementsMatch(t, []tiller.Pod{
		{
			UID:       "uid-tiller-abc",
			Name:      "tiller-abc",
			Namespace: "kube-system",
			IP:        "10.1.2.3",
			Phase:     tiller.PodRunning,
		},
		{
			UID:         "uid-tiller-old",
			Name:        "tiller-old",
			Namespace:   "kube-system",
			IP:          "10.1.2.3",
			Phase:       tiller.PodRunning,
			Terminating: true,
		},
	}, got)
}

func TestAdapter_Jobs(t *testing.T) {
	t.Parallel()

	spec := tiller.JobSpec{
		Name:                    "pre-hook",
		Namespace:               "ns1",
		Image:                   "busybox:1.36",
		Command:                 []string{"sh", "-c", "true"},
		Labels:                  map[string]string{"release": "web"},
		BackoffLimit:            1,
		ActiveDeadline:          5 * time.Minute,
		TTLSecondsAfterFinished: 600,
	}

	t.Run("create list delete", func(t *testing.T) {
		t.Parallel()

		clientset := fake.NewSimpleClientset()
		adapter := k8s.New(slog.Default(), clientset, metricsfake.NewSimpleClientset())

		require.NoError(t, adapter.CreateJobCommand(t.Context(), spec))

		created, err := clientset.BatchV1().Jobs("ns1").Get(t.Context(), "pre-hook", metav1.GetOptions{})
		require.NoError(t, err)
		require.Equal(t, corev1.RestartPolicyNever, created.Spec.Template.Spec.RestartPolicy)
		require.Equal(t, "busybox:1.36", created.Spec.Template.Spec.Containers[0].Image)
		require.Equal(t, int64(300), *created.Spec.ActiveDeadlineSeconds)
		require.Equal(t, int32(600), *created.Spec.TTLSecondsAfterFinished)
		require.Equal(t, int32(1), *created.Spec.BackoffLimit)

		jobs, err := adapter.ListJobsQuery(t.Context(), "ns1", "release=web")
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.Equal(t, "pre-hook", jobs[0].Name)

		require.NoError(t, adapter.DeleteJobCommand(t.Context(), "ns1", "pre-hook"))

		jobs, err = adapter.ListJobsQuery(t.Context(), "ns1", "release=web")
		require.NoError(t, err)
		require.Empty(t, jobs)
	})

	t.Run("delete missing job is marked not found", func(t *testing.T) {
		t.Parallel()

		adapter := k8s.New(slog.Default(), fake.NewSimpleClientset(), metricsfake.NewSimpleClientset())

		err := adapter.DeleteJobCommand(t.Context(), "ns1", "ghost")
		require.Error(t, err)

		var target notFound
		require.ErrorAs(t, err, &target)
	})

	t.Run("create existing job", func(t *testing.T) {
		t.Parallel()

		clientset := fake.NewSimpleClientset(&batchv1.Job{
			ObjectMeta: metav1.ObjectMeta{Name: "pre-hook", Namespace: "ns1"},
		})
		adapter := k8s.New(slog.Default(), clientset, metricsfake.NewSimpleClientset())

		err := adapter.CreateJobCommand(t.Context(), spec)

		var target *k8s.AlreadyExistsError
		require.ErrorAs(t, err, &target)
	})
}

func TestAdapter_GetPodMemoryQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		giveObject   runtime.Object
		giveErr      error
		wantBytes    int64
		wantNotFound bool
		wantErr      bool
	}{
		{
			name: "sums container usage",
			giveObject: &metricsv1beta1.PodMetrics{
				ObjectMeta: metav1.ObjectMeta{Name: "tiller-abc", Namespace: "kube-system"},
				Containers: []metricsv1beta1.ContainerMetrics{
					{
						Name:  "tiller",
						Usage: corev1.ResourceList{corev1.ResourceMemory: resource.MustParse("64Mi")},
					},
					{
						Name:  "sidecar",
						Usage: corev1.ResourceList{corev1.ResourceMemory: resource.MustParse("16Mi")},
					},
				},
			},
			wantBytes: 80 * 1024 * 1024,
		},
		{
			name:         "not found",
			giveErr:      apierrors.NewNotFound(schema.GroupResource{Group: "metrics.k8s.io", Resource: "pods"}, "tiller-abc"),
			wantNotFound: true,
			wantErr:      true,
		},
		{
			name:    "other error",
			giveErr: errors.New("metrics api unavailable"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			metricsClientset := metricsfake.NewSimpleClientset()
			metricsClientset.PrependReactor("get", "*", func(k8stesting.Action) (bool, runtime.Object, error) {
				return true, tt.giveObject, tt.giveErr
			})

			adapter := k8s.New(slog.Default(), fake.NewSimpleClientset(), metricsClientset)

			got, err := adapter.GetPodMemoryQuery(t.Context(), "kube-system", "tiller-abc")
			if !tt.wantErr {
				require.NoError(t, err)
				require.Equal(t, tt.wantBytes, got)

				return
			}

			require.Error(t, err)

			var target notFound
			require.Equal(t, tt.wantNotFound, errors.As(err, &target))
		})
	}
}
