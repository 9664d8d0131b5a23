package game

import "testing"

func TestClassify(t *testing.T) {
	tests := map[string]Role{
		"I":         RoleSubject,
		"The":       RoleSubject,
		"they":      RoleSubject,
		"shining":   RoleVerb,
		"loves":     RoleVerb,
		"books.":    RoleObject,
		"(music)":   RoleObject,
		"to":        RolePreposition,
		"while,":    RolePreposition,
		"brightly!": RoleAdverb,
		"delicious": RoleAdjective,
		"Blue;":     RoleAdjective,
		"wallet?":   RoleOther, // '?' is not stripped
		"park":      RoleOther,
		"":          RoleOther,
	}
	for word, want := range tests {
		if got := Classify(word); got != want {
			t.Errorf("Classify(%q) = %s, want %s", word, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("Well-Known_{A}.~"); got != "wellknowna" {
		t.Errorf("Normalize = %q", got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	first := Classify("Cooking,")
	e, _, _ := newTestEngine(1)
	e.Begin("cooking is fun")
	_ = e.Move("cooking", AreaPool)
	for i := 0; i < 5; i++ {
		if got := Classify("Cooking,"); got != first {
			t.Fatalf("call %d: %s != %s", i, got, first)
		}
	}
}
