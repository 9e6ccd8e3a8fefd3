package pipeline

// State tracks one target's progress through the chain. The single transition
// rule: advance on non-empty stage output, otherwise move to StateSkipped.
type State int

const (
	StateEnumerate State = iota
	StateResolve
	StateScan
	StateProbe
	StateCrawl
	StateDone
	StateSkipped
)

func (s State) String() string {
	switch s {
	case StateEnumerate:
		return "enumerate"
	case StateResolve:
		return "resolve"
	case StateScan:
		return "scan"
	case StateProbe:
		return "probe"
	case StateCrawl:
		return "crawl"
	case StateDone:
		return "done"
	case StateSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}
