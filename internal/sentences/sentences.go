// Package sentences loads sentence lists: the embedded default list and
// imported JSON files of the form {"expressions": ["...", ...]}.
package sentences

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
)

//go:embed default.json
var defaultJSON []byte

var (
	ErrMalformed          = errors.New("sentence data is not a JSON object")
	ErrMissingExpressions = errors.New(`sentence data has no "expressions" string array`)
)

var (
	defaultOnce sync.Once
	defaults    []string
	defaultErr  error
)

// File is the on-disk format of a sentence list.
type File struct {
	Expressions []string `json:"expressions"`
}

// Default returns a copy of the embedded sentence list.
func Default() ([]string, error) {
	defaultOnce.Do(func() {
		defaults, defaultErr = Parse(defaultJSON)
	})
	if defaultErr != nil {
		return nil, fmt.Errorf("embedded default sentences: %w", defaultErr)
	}
	return slices.Clone(defaults), nil
}

// Parse validates data and returns its expressions in order.
// Any shape other than an object with an "expressions" array of strings is rejected.
func Parse(data []byte) ([]string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	raw, ok := doc["expressions"]
	if !ok {
		return nil, ErrMissingExpressions
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingExpressions, err)
	}
	if list == nil {
		return nil, ErrMissingExpressions
	}
	return list, nil
}

// Marshal encodes list in the import format.
func Marshal(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(File{Expressions: list})
}
