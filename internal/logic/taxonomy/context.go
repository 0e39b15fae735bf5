package taxonomy

import (
	"maps"
	"slices"
)

// Field names a context value carried by an Error.
type Field string

const (
	FieldAction         Field = "action"
	FieldChartName      Field = "chart_name"
	FieldDescription    Field = "description"
	FieldDetail         Field = "detail"
	FieldEndpoint       Field = "endpoint"
	FieldJobName        Field = "job_name"
	FieldLabelSelector  Field = "label_selector"
	FieldNamespace      Field = "namespace"
	FieldReleaseName    Field = "release_name"
	FieldReleaseVersion Field = "release_version"
)

// Context maps fields to their values. An absent key and an empty value are
// different: templates require presence, not non-emptiness.
type Context map[Field]string

func (c Context) clone() Context {
	if c == nil {
		return Context{}
	}

	return maps.Clone(c)
}

func (c Context) sortedFields() []Field {
	return slices.Sorted(maps.Keys(c))
}
