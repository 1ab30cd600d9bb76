package listerr

import (
	"strings"
	"testing"

	"github.com/sirkon/errors"
)

func TestAsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "nil",
			err:  nil,
			want: CodeOK,
		},
		{
			name: "list-error",
			err:  New(CodeWrongSize, "size 3", "walked 2"),
			want: CodeWrongSize,
		},
		{
			name: "wrapped",
			err:  errors.Wrap(New(CodeEmptyList), "pop"),
			want: CodeEmptyList,
		},
		{
			name: "fatal-without-cause",
			err:  &Fatal{Code: CodeDestructorRepeated},
			want: CodeDestructorRepeated,
		},
		{
			name: "foreign",
			err:  errors.New("disk is full"),
			want: CodeNotOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsCode(tt.err); got != tt.want {
				t.Errorf("expected %s got %s", tt.want, got)
			}
		})
	}
}

func TestErrorText(t *testing.T) {
	e := New(CodeWrongNextNode, "node 3", "next 5")
	if want := "LIST_WRONG_NEXT_NODE: Wrong pointer to next node found [node 3: next 5]"; e.Error() != want {
		t.Errorf("expected %q got %q", want, e.Error())
	}

	f := &Fatal{
		Code:      CodeEmptyList,
		Operation: "PopBack",
		ListName:  "queue",
		ListID:    3,
		Cause:     New(CodeEmptyList),
	}
	if !strings.Contains(f.Error(), `list "queue" [3] PopBack: List is empty`) {
		t.Errorf("unexpected fatal text %q", f.Error())
	}

	if _, ok := AsFatal("not a fatal"); ok {
		t.Error("string must not be taken for a fatal")
	}
	if got, ok := AsFatal(f); !ok || got != f {
		t.Error("fatal must be recognized")
	}
}

func TestCodesAreDistinct(t *testing.T) {
	seen := map[string]Code{}
	for c := CodeNotOK; c <= CodeWrongSize; c++ {
		name := c.String()
		if prev, ok := seen[name]; ok {
			t.Errorf("codes %d and %d share name %s", prev, c, name)
		}
		seen[name] = c

		if c.Explain() == "Unknown error" {
			t.Errorf("code %d has no explanation", c)
		}
	}
}
