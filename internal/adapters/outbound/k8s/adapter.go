package k8s

import (
	"context"
	"fmt"
	"log/slog"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/tillerguard/internal/logic/auditor"
	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

// Adapter serves the cluster-side ports: pods, hook jobs and pod metrics.
type Adapter struct {
	logger           *slog.Logger
	clientset        kubernetes.Interface
	metricsClientset metricsv.Interface
}

// New creates a new K8s adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	metricsClientset metricsv.Interface,
) *Adapter {
	return &Adapter{
		logger:           logger,
		clientset:        clientset,
		metricsClientset: metricsClientset,
	}
}

var (
	_ tiller.PodRepository       = (*Adapter)(nil)
	_ tiller.JobRepository       = (*Adapter)(nil)
	_ auditor.PodUsageRepository = (*Adapter)(nil)
)

func (a *Adapter) ListPodsQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) ([]tiller.Pod, error) {
	podList, err := a.clientset.CoreV1().Pods(namespace).List(
		ctx,
		metav1.ListOptions{
			LabelSelector: labelSelector,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	pods := make([]tiller.Pod, 0, len(podList.Items))
	for i := range podList.Items {
		pods = append(pods, toDomainPod(&podList.Items[i]))
	}

	return pods, nil
}

func (a *Adapter) CreateJobCommand(
	ctx context.Context,
	spec tiller.JobSpec,
) error {
	_, err := a.clientset.BatchV1().Jobs(spec.Namespace).Create(
		ctx,
		toJob(spec),
		metav1.CreateOptions{},
	)
	if err != nil {
		if apierrors.IsAlreadyExists(err) {
			return fmt.Errorf("create job: %w", errJobAlreadyExists)
		}

		return fmt.Errorf("create job: %w", err)
	}

	return nil
}

func (a *Adapter) DeleteJobCommand(
	ctx context.Context,
	namespace,
	name string,
) error {
	propagation := metav1.DeletePropagationBackground

	err := a.clientset.BatchV1().Jobs(namespace).Delete(
		ctx,
		name,
		metav1.DeleteOptions{
			PropagationPolicy: &propagation,
		},
	)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return fmt.Errorf("delete job: %w", errJobNotFound)
		}

		return fmt.Errorf("delete job: %w", err)
	}

	return nil
}

func (a *Adapter) ListJobsQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) ([]tiller.Job, error) {
	jobList, err := a.clientset.BatchV1().Jobs(namespace).List(
		ctx,
		metav1.ListOptions{
			LabelSelector: labelSelector,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := make([]tiller.Job, 0, len(jobList.Items))
	for i := range jobList.Items {
		jobs = append(jobs, toDomainJob(&jobList.Items[i]))
	}

	return jobs, nil
}

func (a *Adapter) GetPodMemoryQuery(
	ctx context.Context,
	namespace,
	name string,
) (int64, error) {
	podMetrics, err := a.metricsClientset.MetricsV1beta1().PodMetricses(namespace).Get(
		ctx,
		name,
		metav1.GetOptions{},
	)
	if err != nil {
		switch {
		case apierrors.IsNotFound(err):
			return 0, fmt.Errorf("get pod metrics: %w", errPodNotFound)
		case apierrors.IsTooManyRequests(err):
			return 0, fmt.Errorf("get pod metrics: %w", errTooManyRequests)
		}

		return 0, fmt.Errorf("get pod metrics: %w", err)
	}

	return toMemoryBytes(ctx, a.logger, podMetrics), nil
}
