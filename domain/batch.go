package domain

// FileIssues pairs a file path with its analysis result
type FileIssues struct {
	Path   string
	Issues []Issue
}

// BatchResult maps file paths to their issue sequences. Entries keep the
// traversal insertion order, which the summary reports rely on for stable
// tie-breaking.
type BatchResult struct {
	entries []FileIssues
	index   map[string]int
}

// NewBatchResult creates an empty batch result
func NewBatchResult() *BatchResult {
	return &BatchResult{
		index: make(map[string]int),
	}
}

// Add appends a file result, replacing any previous entry for the same path
func (r *BatchResult) Add(path string, issues []Issue) {
	if i, ok := r.index[path]; ok {
		r.entries[i].Issues = issues
		return
	}
	r.index[path] = len(r.entries)
	r.entries = append(r.entries, FileIssues{Path: path, Issues: issues})
}

// Get returns the issues recorded for a path
func (r *BatchResult) Get(path string) ([]Issue, bool) {
	i, ok := r.index[path]
	if !ok {
		return nil, false
	}
	return r.entries[i].Issues, true
}

// Entries returns all file results in insertion order
func (r *BatchResult) Entries() []FileIssues {
	return r.entries
}

// Len returns the number of analyzed files
func (r *BatchResult) Len() int {
	return len(r.entries)
}

// TotalIssues returns the issue count summed across all files
func (r *BatchResult) TotalIssues() int {
	total := 0
	for _, e := range r.entries {
		total += len(e.Issues)
	}
	return total
}
