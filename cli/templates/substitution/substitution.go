// Package substitution implements ordered literal replacement of placeholder tokens.
package substitution

import (
	"fmt"
	"sort"
	"strings"
)

// Pair binds a placeholder token to its replacement.
type Pair struct {
	// Key is a name of the template variable the pair comes from.
	Key string
	// Token is a literal placeholder string present in the template.
	Token string
	// Value replaces Token.
	Value string
}

// ConflictError is reported when one token gets different values.
type ConflictError struct {
	Token  string
	First  Pair
	Second Pair
}

// Error returns error message.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("token %q has conflicting values: %q (%s) and %q (%s)",
		e.Token, e.First.Value, e.First.Key, e.Second.Value, e.Second.Key)
}

// List is an ordered list of substitution pairs. Longer tokens go first, so a
// token embedded in another one (butler in butler-team/butler) never breaks
// the longer match.
type List struct {
	pairs    []Pair
	replacer *strings.Replacer
}

// NewList orders pairs and builds the list. Pairs with equal tokens are merged if
// their values are equal, different values for one token are reported as an error.
func NewList(pairs []Pair) (*List, error) {
	ordered := make([]Pair, 0, len(pairs))
	seen := make(map[string]Pair, len(pairs))
	for _, pair := range pairs {
		if pair.Token == "" {
			return nil, fmt.Errorf("empty token for %q", pair.Key)
		}
		if prev, found := seen[pair.Token]; found {
			if prev.Value != pair.Value {
				return nil, &ConflictError{Token: pair.Token, First: prev, Second: pair}
			}
			continue
		}
		seen[pair.Token] = pair
		ordered = append(ordered, pair)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Token) > len(ordered[j].Token)
	})

	oldnew := make([]string, 0, len(ordered)*2)
	for _, pair := range ordered {
		oldnew = append(oldnew, pair.Token, pair.Value)
	}

	return &List{pairs: ordered, replacer: strings.NewReplacer(oldnew...)}, nil
}

// Pairs returns pairs in application order.
func (list *List) Pairs() []Pair {
	return append([]Pair(nil), list.pairs...)
}

// Apply replaces all tokens in s. The input is scanned once from left to right,
// at every position the longest matching token wins. Replaced text is not scanned
// again.
func (list *List) Apply(s string) string {
	if len(list.pairs) == 0 {
		return s
	}
	return list.replacer.Replace(s)
}

// ApplyBytes is Apply for a byte slice.
func (list *List) ApplyBytes(data []byte) []byte {
	return []byte(list.Apply(string(data)))
}

// Residual returns tokens still present in s. Tokens that are part of some
// replacement value are not reported: such a value legitimately brings the token
// back into the output.
func (list *List) Residual(s string) []string {
	var found []string
	for _, pair := range list.pairs {
		if list.producedByValue(pair.Token) {
			continue
		}
		if strings.Contains(s, pair.Token) {
			found = append(found, pair.Token)
		}
	}
	return found
}

func (list *List) producedByValue(token string) bool {
	for _, pair := range list.pairs {
		if strings.Contains(pair.Value, token) {
			return true
		}
	}
	return false
}
