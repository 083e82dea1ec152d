package domain

// PlanMeta contains metadata about a wave plan
type PlanMeta struct {
	RunID        string  `json:"run_id"`
	ReportDir    string  `json:"report_dir"`
	ReportFiles  int     `json:"report_files"`
	FailedFiles  int     `json:"failed_files"`
	Suites       int     `json:"suites"`
	Waves        int     `json:"waves"`
	Strategy     string  `json:"strategy"`
	TotalRuntime float64 `json:"total_runtime"`
	Makespan     float64 `json:"makespan"`
	Timestamp    string  `json:"timestamp"`
}

// WaveSummary is the persisted view of a wave
type WaveSummary struct {
	Label   string   `json:"label"`
	Index   int      `json:"index"`
	Runtime float64  `json:"runtime"`
	Suites  []string `json:"suites"`
}

// Plan is the complete output of a run: suites in pool order plus their waves
type Plan struct {
	Meta     PlanMeta        `json:"meta"`
	Waves    []WaveSummary   `json:"waves"`
	Suites   []*SuiteRecord  `json:"suites"`
	Failures []*ParseFailure `json:"failures,omitempty"`
}

// NewPlan builds a plan from the pooled suites and the waves they were assigned to
func NewPlan(meta PlanMeta, suites []*SuiteRecord, waves []*Wave) *Plan {
	plan := &Plan{Meta: meta, Suites: suites}
	plan.Meta.Suites = len(suites)
	plan.Meta.Waves = len(waves)

	for _, s := range suites {
		plan.Meta.TotalRuntime += s.Runtime
	}

	for _, w := range waves {
		names := make([]string, 0, len(w.Suites))
		for _, s := range w.Suites {
			names = append(names, s.Name)
		}
		if w.Runtime > plan.Meta.Makespan {
			plan.Meta.Makespan = w.Runtime
		}
		plan.Waves = append(plan.Waves, WaveSummary{
			Label:   w.Label(),
			Index:   w.Index,
			Runtime: w.Runtime,
			Suites:  names,
		})
	}

	return plan
}

// SuitesInWave returns the suites of the plan assigned to the given wave label, in pool order
func (p *Plan) SuitesInWave(label string) []*SuiteRecord {
	var out []*SuiteRecord
	for _, s := range p.Suites {
		if s.Wave == label {
			out = append(out, s)
		}
	}
	return out
}
