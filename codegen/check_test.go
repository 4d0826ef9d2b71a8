package codegen

import "testing"

func TestLineDiff(t *testing.T) {
	tests := []struct {
		name string
		have string
		want string
		diff string
	}{
		{name: "equal", have: "a\nb\n", want: "a\nb\n", diff: ""},
		{name: "changed line", have: "a\nb\nc\n", want: "a\nx\nc\n", diff: "-b\n+x\n"},
		{name: "added", have: "", want: "a\n", diff: "+a\n"},
		{name: "removed", have: "a\nb\n", want: "a\n", diff: "-b\n"},
		{name: "no trailing newline", have: "a", want: "b", diff: "-a\n+b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineDiff(tt.have, tt.want); got != tt.diff {
				t.Errorf("LineDiff() = %q, want %q", got, tt.diff)
			}
		})
	}
}
