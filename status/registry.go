package status

// Registry is the central metrics facade
// It records the simulation's non-fatal anomalies (dropped spawns, rejected
// purchases) alongside throughput counters
type Registry struct {
	Ints *MetricMap
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints: NewMetricMap(),
	}
}
