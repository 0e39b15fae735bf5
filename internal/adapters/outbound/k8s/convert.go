package k8s

import (
	"context"
	"log/slog"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"

	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

const hookContainerName = "hook"

func toDomainPod(pod *corev1.Pod) tiller.Pod {
	return tiller.Pod{
		UID:         string(pod.UID),
		Name:        pod.Name,
		Namespace:   pod.Namespace,
		IP:          pod.Status.PodIP,
		Phase:       tiller.PodPhase(pod.Status.Phase),
		Terminating: pod.DeletionTimestamp != nil,
	}
}

func toJob(spec tiller.JobSpec) *batchv1.Job {
	job := &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: spec.Namespace,
			Labels:    spec.Labels,
		},
		Spec: batchv1.JobSpec{
			BackoffLimit: &spec.BackoffLimit,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: spec.Labels,
				},
				Spec: corev1.PodSpec{
					RestartPolicy: corev1.RestartPolicyNever,
					Containers: []corev1.Container{
						{
							Name:    hookContainerName,
							Image:   spec.Image,
							Command: spec.Command,
						},
					},
				},
			},
		},
	}

	if spec.ActiveDeadline > 0 {
		seconds := int64(spec.ActiveDeadline.Seconds())
		job.Spec.ActiveDeadlineSeconds = &seconds
	}

	if spec.TTLSecondsAfterFinished > 0 {
		ttl := spec.TTLSecondsAfterFinished
		job.Spec.TTLSecondsAfterFinished = &ttl
	}

	return job
}

func toDomainJob(job *batchv1.Job) tiller.Job {
	return tiller.Job{
		Name:      job.Name,
		Namespace: job.Namespace,
		Labels:    job.Labels,
		Active:    job.Status.Active,
		Succeeded: job.Status.Succeeded,
		Failed:    job.Status.Failed,
	}
}

func toMemoryBytes(
	ctx context.Context,
	logger *slog.Logger,
	podMetrics *metricsv1beta1.PodMetrics,
) int64 {
	memoryUsage := resource.NewQuantity(0, resource.BinarySI)

	for i := range podMetrics.Containers {
		containerMemoryUsage := podMetrics.Containers[i].Usage.Memory()
		if containerMemoryUsage == nil {
			logger.WarnContext(ctx, "container memory usage is nil, skipping",
				"pod", podMetrics.Name,
				"namespace", podMetrics.Namespace,
				"container", podMetrics.Containers[i].Name,
			)

			continue
		}

		memoryUsage.Add(*containerMemoryUsage)
	}

	return memoryUsage.Value()
}
