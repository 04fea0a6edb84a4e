package sat

// Statistics holds the solver's running counters, exposed to the CLI
// collaborator for logging (§6).
type Statistics struct {
	Iterations   int64
	Propagations int64
	Conflicts    int64
	Restarts     int64
	Decisions    int64
}
