package logging

import "testing"

func TestTotalsAccumulate(t *testing.T) {
	Init(LogLevelSilent)
	before, warnBefore := Totals()

	var q MessageQueue
	q.Append(&CompileMessage{Message: "e", IsError: true})
	q.Append(&CompileMessage{Message: "w", IsError: false})
	q.Drain()

	after, warnAfter := Totals()
	if after != before+1 {
		t.Errorf("error total = %d, want %d", after, before+1)
	}
	if warnAfter != warnBefore+1 {
		t.Errorf("warn total = %d, want %d", warnAfter, warnBefore+1)
	}
}
