package report

import (
	"go.uber.org/zap"

	"treecheck/internal/checkspec"
)

// ComponentValidator produces a verdict for one component.
type ComponentValidator interface {
	Validate(c checkspec.Component) ComponentResult
}

// Aggregator runs every component of a manifest exactly once, in declared
// order. Components are fully isolated: no outcome affects whether another
// component runs.
type Aggregator struct {
	validator ComponentValidator
	log       *zap.SugaredLogger
}

func NewAggregator(v ComponentValidator, log *zap.SugaredLogger) *Aggregator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Aggregator{validator: v, log: log}
}

// RunAll validates the whole manifest and returns the collected report.
func (a *Aggregator) RunAll(m *checkspec.Manifest) *Report {
	rep := &Report{}
	for _, c := range m.Components {
		res := a.validator.Validate(c)
		a.log.Debugw("component validated", "name", res.Name, "passed", res.Passed)
		rep.Add(res)
	}
	return rep
}
