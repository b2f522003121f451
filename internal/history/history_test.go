package history

import (
	"fmt"
	"testing"
)

func fillLog(n int) *Log {
	l := NewLog()
	for i := 0; i < n; i++ {
		l.Append(TurnRecord{
			Speaker:  fmt.Sprintf("player-%d", i%3),
			Question: fmt.Sprintf("question %d?", i),
			Answer:   "Yes.",
		})
	}
	return l
}

func TestWindowShorterThanHistory(t *testing.T) {
	l := fillLog(20)

	view := l.Window(8)
	if len(view) != 8 {
		t.Fatalf("expected window of 8, got %d", len(view))
	}
	// Must be the most recent suffix
	if view[7].Question != "question 19?" {
		t.Errorf("expected last record to be newest, got %q", view[7].Question)
	}
	if view[0].Question != "question 12?" {
		t.Errorf("expected suffix start at record 12, got %q", view[0].Question)
	}
}

func TestWindowLongerThanHistory(t *testing.T) {
	l := fillLog(5)

	view := l.Window(12)
	if len(view) != 5 {
		t.Fatalf("expected min(N, k)=5, got %d", len(view))
	}
}

func TestWindowEmptyLog(t *testing.T) {
	l := NewLog()
	if got := l.Window(8); len(got) != 0 {
		t.Fatalf("expected empty window, got %d records", len(got))
	}
}

func TestWindowIsCopy(t *testing.T) {
	l := fillLog(3)
	view := l.Window(3)

	l.Append(TurnRecord{Speaker: "late", Question: "late?", Answer: "No."})

	if len(view) != 3 {
		t.Fatalf("view grew after append: %d", len(view))
	}
	view[0].Question = "mutated"
	fresh := l.Window(4)
	if fresh[0].Question != "question 0?" {
		t.Error("mutating a view leaked into the log")
	}
}

func TestQuestionsByFiltersSpeaker(t *testing.T) {
	l := NewLog()
	l.Append(TurnRecord{Speaker: "a", Question: "one?", Answer: "Yes."})
	l.Append(TurnRecord{Speaker: "b", Question: "two?", Answer: "No."})
	l.Append(TurnRecord{Speaker: "a", Question: "three?", Answer: "Irrelevant."})

	mine := QuestionsBy(l.Window(8), "a")
	if len(mine) != 2 {
		t.Fatalf("expected 2 questions by a, got %d", len(mine))
	}
	if !mine["one?"] || !mine["three?"] {
		t.Error("missing expected questions for speaker a")
	}
	if mine["two?"] {
		t.Error("question by another speaker leaked into the set")
	}
}
