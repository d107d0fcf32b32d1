package filter

import "github.com/nethoundsh/findit/pkg/list"

// Observer receives progress events while a pipeline runs.
type Observer interface {
	PassStarted(p Predicate, pending int)
	PathChecked(p Predicate, path string, kept bool)
	PassFinished(p Predicate, survivors int)
}

// PassStats records what one predicate pass did.
type PassStats struct {
	Predicate Predicate
	Checked   int
	Removed   int
}

// Run applies each predicate in filters, in order, to paths. A path survives
// only if every predicate accepts it; rejected nodes are unlinked and
// cleared during the pass that rejects them.
func Run(paths *list.List[string], filters *list.List[Predicate], q *Query) []PassStats {
	return RunObserved(paths, filters, q, nil)
}

// RunObserved is Run with progress reported to obs, which may be nil.
func RunObserved(paths *list.List[string], filters *list.List[Predicate], q *Query, obs Observer) []PassStats {
	stats := make([]PassStats, 0, filters.Len())
	for p := range filters.All() {
		checked := paths.Len()
		if obs != nil {
			obs.PassStarted(p, checked)
		}
		removed := paths.Filter(func(path string) bool {
			ok := p.Accept(path, q)
			if obs != nil {
				obs.PathChecked(p, path, ok)
			}
			return ok
		}, nil)
		if obs != nil {
			obs.PassFinished(p, paths.Len())
		}
		stats = append(stats, PassStats{Predicate: p, Checked: checked, Removed: removed})
	}
	return stats
}
