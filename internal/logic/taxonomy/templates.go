package taxonomy

import (
	"errors"
	"fmt"
)

// ErrMissingField is the panic value cause when a required context field is absent.
var ErrMissingField = errors.New("missing required context field")

// suffix is an optional trailing fragment rendered only when its field is present.
type suffix struct {
	field  Field
	format string
}

type template struct {
	format   string
	required []Field
	optional *suffix
}

// Message text is matched by operators and log pipelines; keep wording stable.
var templates = map[Kind]template{
	KindChannelSetupFailed: {
		format: "Failed to create gRPC channel.",
	},
	KindServicesUnavailable: {
		format: "Tiller services unavailable.",
	},
	KindPodNotFound: {
		format:   `Could not find Tiller pod with labels "%s"`,
		required: []Field{FieldLabelSelector},
	},
	KindPodNotRunning: {
		format: "No Tiller pods found in running state",
	},
	KindReleaseActionFailed: {
		format:   "Failed to %s release: %s - Tiller Message: %s",
		required: []Field{FieldAction, FieldReleaseName, FieldDescription},
	},
	KindTestFailed: {
		format:   "Test failed for release: %s",
		required: []Field{FieldReleaseName},
	},
	KindStatusQueryFailed: {
		format:   "Failed to get %s status %s version",
		required: []Field{FieldReleaseName, FieldReleaseVersion},
	},
	KindContentQueryFailed: {
		format:   "Failed to get %s content %s version",
		required: []Field{FieldReleaseName, FieldReleaseVersion},
		optional: &suffix{field: FieldDetail, format: " - Tiller Message: %s"},
	},
	KindRollbackFailed: {
		format:   "Failed to rollback release %s to version %s",
		required: []Field{FieldReleaseName, FieldReleaseVersion},
	},
	KindListingFailed: {
		format: "There was an error listing the Helm chart releases.",
	},
	KindListingDriftDetected: {
		format: "Failed to page through tiller releases, possibly due to releases being added between pages",
	},
	KindJobCreateFailed: {
		format:   "Failed to create k8s job %s in %s",
		required: []Field{FieldJobName, FieldNamespace},
	},
	KindJobDeleteFailed: {
		format:   "Failed to delete k8s job %s in %s",
		required: []Field{FieldJobName, FieldNamespace},
	},
	KindChartCleanupFailed: {
		format:   "An error occurred during cleanup while removing %s",
		required: []Field{FieldChartName},
	},
	KindVersionQueryFailed: {
		format: "Failed to get Tiller Version",
	},
}

func (t template) render(ctx Context) (string, error) {
	if len(t.required) == 0 && t.optional == nil {
		return t.format, nil
	}

	args := make([]any, 0, len(t.required))

	for _, field := range t.required {
		value, ok := ctx[field]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingField, field)
		}

		args = append(args, value)
	}

	message := fmt.Sprintf(t.format, args...)

	if t.optional != nil {
		if value, ok := ctx[t.optional.field]; ok && value != "" {
			message += fmt.Sprintf(t.optional.format, value)
		}
	}

	return message, nil
}
