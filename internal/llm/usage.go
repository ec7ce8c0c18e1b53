package llm

import (
	"context"
	"sort"
	"sync"
)

// UsageTracker is a decorator that accumulates token usage per purpose and
// per model for the lifetime of the process. Nothing is persisted.
type UsageTracker struct {
	inner Provider

	mu        sync.Mutex
	byPurpose map[string]*UsageStat
	byModel   map[string]*UsageStat
}

// UsageStat aggregates calls and tokens for one key.
type UsageStat struct {
	Key          string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// CostReport summarizes estimated spend across models.
type CostReport struct {
	Models  []ModelSpend
	Total   float64
	Unknown []string // models with no pricing entry
}

// ModelSpend is the estimated cost for one model.
type ModelSpend struct {
	UsageStat
	Cost  float64
	Known bool
}

// WithUsage wraps a Provider with a usage tracker.
func WithUsage(p Provider) *UsageTracker {
	return &UsageTracker{
		inner:     p,
		byPurpose: make(map[string]*UsageStat),
		byModel:   make(map[string]*UsageStat),
	}
}

func (u *UsageTracker) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := u.inner.Generate(ctx, req)

	u.mu.Lock()
	defer u.mu.Unlock()

	purpose := u.stat(u.byPurpose, PurposeFrom(ctx))
	purpose.Calls++
	if err != nil {
		purpose.Failures++
		return resp, err
	}

	model := resp.Model
	if model == "" {
		model = u.inner.ModelID()
	}
	byModel := u.stat(u.byModel, model)
	byModel.Calls++
	for _, s := range []*UsageStat{purpose, byModel} {
		s.InputTokens += resp.Usage.InputTokens
		s.OutputTokens += resp.Usage.OutputTokens
	}
	return resp, nil
}

func (u *UsageTracker) ModelID() string {
	return u.inner.ModelID()
}

func (u *UsageTracker) stat(m map[string]*UsageStat, key string) *UsageStat {
	s, ok := m[key]
	if !ok {
		s = &UsageStat{Key: key}
		m[key] = s
	}
	return s
}

// ByPurpose returns a snapshot of usage per purpose, sorted by purpose.
func (u *UsageTracker) ByPurpose() []UsageStat {
	u.mu.Lock()
	defer u.mu.Unlock()
	return snapshot(u.byPurpose)
}

// Cost estimates spend per model using the embedded pricing table.
func (u *UsageTracker) Cost() CostReport {
	u.mu.Lock()
	models := snapshot(u.byModel)
	u.mu.Unlock()

	var report CostReport
	for _, m := range models {
		spend := ModelSpend{UsageStat: m}
		if c := LookupCost(m.Key); c != nil {
			spend.Cost = c.Cost(m.InputTokens, m.OutputTokens)
			spend.Known = true
			report.Total += spend.Cost
		} else {
			report.Unknown = append(report.Unknown, m.Key)
		}
		report.Models = append(report.Models, spend)
	}
	return report
}

func snapshot(m map[string]*UsageStat) []UsageStat {
	out := make([]UsageStat, 0, len(m))
	for _, s := range m {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
