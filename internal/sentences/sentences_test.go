package sentences

import (
	"errors"
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []string
		wantErr error
	}{
		{name: "valid", data: `{"expressions": ["a b", "c d"]}`, want: []string{"a b", "c d"}},
		{name: "extra fields", data: `{"title": "x", "expressions": ["only one"]}`, want: []string{"only one"}},
		{name: "empty list", data: `{"expressions": []}`, want: []string{}},
		{name: "empty object", data: `{}`, wantErr: ErrMissingExpressions},
		{name: "null expressions", data: `{"expressions": null}`, wantErr: ErrMissingExpressions},
		{name: "not an array", data: `{"expressions": "a b"}`, wantErr: ErrMissingExpressions},
		{name: "non-string items", data: `{"expressions": ["a", 2]}`, wantErr: ErrMissingExpressions},
		{name: "top-level array", data: `["a b"]`, wantErr: ErrMalformed},
		{name: "invalid text", data: `not json at all`, wantErr: ErrMalformed},
		{name: "empty input", data: ``, wantErr: ErrMalformed},
		{name: "top-level null", data: `null`, wantErr: ErrMissingExpressions},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.data))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDefaultIsUsableAndCopied(t *testing.T) {
	list, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(list) == 0 {
		t.Fatal("default list is empty")
	}
	list[0] = "mutated"

	again, _ := Default()
	if again[0] == "mutated" {
		t.Error("Default returned shared backing array")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal([]string{"I like books."})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Parse(data)
	if err != nil || len(got) != 1 || got[0] != "I like books." {
		t.Errorf("Parse(Marshal) = %q, %v", got, err)
	}

	data, _ = Marshal(nil)
	if got, err := Parse(data); err != nil || len(got) != 0 {
		t.Errorf("nil list should encode as empty array, got %q %v", got, err)
	}
}
