package game

import "strings"

// Role is the grammatical group a word is coloured by. It never affects
// whether a round is solved.
type Role string

const (
	RoleSubject     Role = "subject"
	RoleVerb        Role = "verb"
	RoleObject      Role = "object"
	RolePreposition Role = "preposition"
	RoleAdverb      Role = "adverb"
	RoleAdjective   Role = "adjective"
	RoleOther       Role = "other"
)

const strippedPunctuation = ".,/#!$%^&*;:{}=-_`~()"

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Checked in order; the first table containing the word wins.
var roleTables = []struct {
	role  Role
	words map[string]struct{}
}{
	{RoleSubject, wordSet("i", "you", "he", "she", "it", "we", "they", "the")},
	{RoleVerb, wordSet("like", "is", "can", "help", "enjoy", "loves", "listen", "studying", "shining", "find", "cooking")},
	{RoleObject, wordSet("books", "sun", "wallet", "meals", "music")},
	{RolePreposition, wordSet("to", "in", "for", "while")},
	{RoleAdverb, wordSet("brightly")},
	{RoleAdjective, wordSet("free", "blue", "lost", "delicious")},
}

// Normalize lower-cases word and removes punctuation anywhere in it.
func Normalize(word string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedPunctuation, r) {
			return -1
		}
		return r
	}, strings.ToLower(word))
}

// Classify returns the role of word.
func Classify(word string) Role {
	w := Normalize(word)
	for _, t := range roleTables {
		if _, ok := t.words[w]; ok {
			return t.role
		}
	}
	return RoleOther
}
