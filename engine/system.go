package engine

// System is one simulation pass. Systems run strictly in ascending Priority
// order every step; none may suspend mid-step.
type System interface {
	Update()
	Priority() int
}
