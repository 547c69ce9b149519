package report

// ComponentResult is one component's verdict, immutable once produced.
type ComponentResult struct {
	Name   string
	Passed bool
}

// Report collects component verdicts in the order they were produced.
type Report struct {
	results []ComponentResult
}

// Add appends one component verdict.
func (r *Report) Add(res ComponentResult) {
	r.results = append(r.results, res)
}

// Results returns the verdicts in insertion order.
func (r *Report) Results() []ComponentResult {
	return append([]ComponentResult(nil), r.results...)
}

// Overall is the logical AND over all component verdicts.
func (r *Report) Overall() bool {
	for _, res := range r.results {
		if !res.Passed {
			return false
		}
	}
	return true
}
