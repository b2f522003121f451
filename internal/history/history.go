package history

// #region turn-record

// TurnRecord is one immutable (speaker, question, answer) entry in a game's
// dialogue history. Records are created once and never mutated; append order
// is chronological order.
type TurnRecord struct {
	Speaker  string
	Question string
	Answer   string
}

// #endregion turn-record

// #region log

// Log is the append-only dialogue history for a single game. It is owned by
// the orchestrator; roles only ever see bounded suffix views.
type Log struct {
	records []TurnRecord
}

// NewLog creates an empty dialogue history.
func NewLog() *Log {
	return &Log{}
}

// Append adds a record to the end of the history.
func (l *Log) Append(rec TurnRecord) {
	l.records = append(l.records, rec)
}

// Len returns the number of recorded turns.
func (l *Log) Len() int {
	return len(l.records)
}

// #endregion log

// #region window

// Window returns a copy of the most recent k records (all records when the
// history is shorter). The returned slice is a contiguous suffix at the
// moment of the call and is safe to hold across later appends.
func (l *Log) Window(k int) []TurnRecord {
	if k < 0 {
		k = 0
	}
	start := len(l.records) - k
	if start < 0 {
		start = 0
	}
	out := make([]TurnRecord, len(l.records)-start)
	copy(out, l.records[start:])
	return out
}

// #endregion window

// #region questions-by

// QuestionsBy filters a history view down to the set of questions previously
// asked by one speaker. Used for exact-match deduplication only.
func QuestionsBy(view []TurnRecord, speaker string) map[string]bool {
	seen := make(map[string]bool)
	for _, rec := range view {
		if rec.Speaker == speaker {
			seen[rec.Question] = true
		}
	}
	return seen
}

// #endregion questions-by
