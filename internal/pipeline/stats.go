package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total      int
	Converted  int
	Skipped    int
	InputBytes int64
}
