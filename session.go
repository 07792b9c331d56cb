package stockexplorer

// Session holds the summaries analyzed so far in this process. It is
// discarded on exit; CSV export is the only persistence.
type Session struct {
	summaries []*Summary
}

// NewSession returns a new empty session store.
func NewSession() *Session { return &Session{} }

// Add appends the summary unless one with the same company and date range is
// already stored. It reports whether the summary was added.
func (s *Session) Add(sum *Summary) bool {
	for _, existing := range s.summaries {
		if existing.Company == sum.Company && existing.DateRange == sum.DateRange {
			return false
		}
	}
	s.summaries = append(s.summaries, sum)
	return true
}

// Len returns the number of stored summaries.
func (s *Session) Len() int { return len(s.summaries) }

// All returns the stored summaries in insertion order.
func (s *Session) All() []*Summary { return s.summaries }

// Get returns the i-th stored summary (0-based).
func (s *Session) Get(i int) *Summary { return s.summaries[i] }
