package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTraceReturn(t *testing.T) {
	trace := NewTrace()
	s := &stubState{"s", nil}
	a := &stubAction{"a"}
	trace.Append(0, s, a, -1, s)
	trace.Append(1, s, a, -2.5, s)

	if got := trace.Return(); got != -3.5 {
		t.Errorf("return = %f, want -3.5", got)
	}
	if trace.Len() != 2 {
		t.Errorf("length = %d, want 2", trace.Len())
	}
	_, _, reward, _, ok := trace.Last()
	if !ok || reward != -2.5 {
		t.Errorf("last reward = %f, want -2.5", reward)
	}
}

func TestTraceMarshal(t *testing.T) {
	trace := NewTrace()
	trace.Append(0, &stubState{"s0", nil}, &stubAction{"a0"}, -1, &stubState{"s1", nil})
	trace.MarkTerminated()

	bs, err := json.Marshal(trace)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(bs)
	for _, want := range []string{`"terminated":true`, `"state":"s0"`, `"action":"a0"`, `"next":"s1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("marshaled trace %s missing %s", out, want)
		}
	}
}

func TestSoftMaxPolicyUpdate(t *testing.T) {
	policy := NewSoftMaxPolicy(0.5, 1.0)
	s0 := &stubState{"s0", []Action{&stubAction{"a"}}}
	s1 := &stubState{"s1", []Action{&stubAction{"a"}}}

	// seed the table for s0
	if _, ok := policy.NextAction(0, s0, s0.Actions()); !ok {
		t.Fatal("no action sampled")
	}
	policy.Update(0, s0, s0.Actions()[0], -2, s1)

	// Q(s0, a) = (1-0.5)*0 + 0.5*(-2 + 0) = -1
	if got := policy.QTable["s0"]["a"]; got != -1 {
		t.Errorf("Q(s0, a) = %f, want -1", got)
	}
}
