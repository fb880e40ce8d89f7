package logging

import "testing"

func TestMessageQueueChronologicalPeek(t *testing.T) {
	var q MessageQueue
	q.Append(&ConfigError{Kind: "A", Message: "first"})
	q.Append(&ConfigError{Kind: "B", Message: "second"})
	q.Append(&ConfigError{Kind: "C", Message: "third"})

	peeked := q.Peek()
	if len(peeked) != 3 {
		t.Fatalf("Peek() returned %d messages, want 3", len(peeked))
	}

	want := []string{"first", "second", "third"}
	for i, m := range peeked {
		ce, ok := m.(*ConfigError)
		if !ok {
			t.Fatalf("Peek()[%d] is not a *ConfigError", i)
		}
		if ce.Message != want[i] {
			t.Errorf("Peek()[%d].Message = %q, want %q", i, ce.Message, want[i])
		}
	}
}

func TestMessageQueueErrorCount(t *testing.T) {
	var q MessageQueue
	q.Append(&CompileMessage{Message: "warn", IsError: false})
	q.Append(&CompileMessage{Message: "err1", IsError: true})
	q.Append(&CompileMessage{Message: "err2", IsError: true})

	if got := q.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount() = %d, want 2", got)
	}
	if got := q.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestMessageQueueDrainEmpties(t *testing.T) {
	var q MessageQueue
	q.Append(&ConfigError{Kind: "A", Message: "x"})

	Init(LogLevelSilent)
	q.Drain()

	if q.Len() != 0 {
		t.Errorf("Len() after Drain() = %d, want 0", q.Len())
	}
}
