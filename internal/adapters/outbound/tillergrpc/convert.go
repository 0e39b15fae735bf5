package tillergrpc

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"k8s.io/helm/pkg/chartutil"
	"k8s.io/helm/pkg/proto/hapi/chart"
	"k8s.io/helm/pkg/proto/hapi/release"
	"k8s.io/helm/pkg/proto/hapi/services"

	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

func toSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

// loadChart reads the chart directory or archive at req.Chart and renders
// the override values as the raw YAML Tiller merges over the chart defaults.
func loadChart(req tiller.ChartRequest) (*chart.Chart, *chart.Config, error) {
	ch, err := chartutil.Load(req.Chart)
	if err != nil {
		return nil, nil, fmt.Errorf("load chart %s: %w", req.Chart, err)
	}

	values, err := toConfig(req.Values)
	if err != nil {
		return nil, nil, err
	}

	return ch, values, nil
}

func toConfig(values map[string]any) (*chart.Config, error) {
	if len(values) == 0 {
		return &chart.Config{}, nil
	}

	raw, err := yaml.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("marshal values: %w", err)
	}

	return &chart.Config{Raw: string(raw)}, nil
}

func fromConfig(cfg *chart.Config) (map[string]any, error) {
	if strings.TrimSpace(cfg.GetRaw()) == "" {
		return nil, nil //nolint:nilnil // no values supplied
	}

	var values map[string]any
	if err := yaml.Unmarshal([]byte(cfg.GetRaw()), &values); err != nil {
		return nil, fmt.Errorf("unmarshal values: %w", err)
	}

	return values, nil
}

func toStatusCode(code release.Status_Code) tiller.StatusCode {
	name, ok := release.Status_Code_name[int32(code)]
	if !ok {
		return tiller.StatusUnknown
	}

	return tiller.StatusCode(name)
}

func toDomainStatus(rel *release.Release) *tiller.ReleaseStatus {
	return &tiller.ReleaseStatus{
		ReleaseName: rel.GetName(),
		Version:     rel.GetVersion(),
		Code:        toStatusCode(rel.GetInfo().GetStatus().GetCode()),
		Description: rel.GetInfo().GetDescription(),
	}
}

func toDomainSummary(rel *release.Release) tiller.ReleaseSummary {
	meta := rel.GetChart().GetMetadata()

	return tiller.ReleaseSummary{
		Name:         rel.GetName(),
		Namespace:    rel.GetNamespace(),
		Version:      rel.GetVersion(),
		Status:       toStatusCode(rel.GetInfo().GetStatus().GetCode()),
		ChartName:    meta.GetName(),
		ChartVersion: meta.GetVersion(),
	}
}

func toDomainRelease(rel *release.Release) (*tiller.Release, error) {
	values, err := fromConfig(rel.GetConfig())
	if err != nil {
		return nil, err
	}

	return &tiller.Release{
		ReleaseSummary: toDomainSummary(rel),
		Description:    rel.GetInfo().GetDescription(),
		Values:         values,
		Manifest:       rel.GetManifest(),
	}, nil
}

func appendSummaries(items []tiller.ReleaseSummary, rels []*release.Release) []tiller.ReleaseSummary {
	for _, rel := range rels {
		if rel == nil {
			continue
		}

		items = append(items, toDomainSummary(rel))
	}

	return items
}

// toTestRun maps a terminal test message such as "PASSED: smoke" to a run.
func toTestRun(resp *services.TestReleaseResponse) (tiller.TestRun, bool) {
	switch resp.GetStatus() {
	case release.TestRun_SUCCESS, release.TestRun_FAILURE:
	default:
		return tiller.TestRun{}, false
	}

	name := resp.GetMsg()
	if _, after, ok := strings.Cut(name, ": "); ok {
		name = after
	}

	return tiller.TestRun{
		Name:   name,
		Passed: resp.GetStatus() == release.TestRun_SUCCESS,
		Info:   resp.GetMsg(),
	}, true
}
