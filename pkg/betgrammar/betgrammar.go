// Package betgrammar parses the free-text bet lines users type into the bot,
// e.g. "12-2000 45r-1000 5h/500 pue-100". Parsing has no side effects and a
// single bad token rejects the whole line.
package betgrammar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Entry is one fully-expanded wager: a two-digit number and its stake.
type Entry struct {
	Number string
	Amount int64
}

// ParseError names the token that could not be parsed.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad token %q: %s", e.Token, e.Reason)
}

// DefaultSets are the operator-defined named enumerations. The keys are the
// selector words; each set expands to exactly ten numbers.
var DefaultSets = map[string][]string{
	// doubles
	"pue": {"00", "11", "22", "33", "44", "55", "66", "77", "88", "99"},
	// power pairs, digits five apart
	"pow": {"05", "16", "27", "38", "49", "50", "61", "72", "83", "94"},
	// the traditional nat-khat set
	"nat": {"07", "18", "24", "35", "42", "53", "69", "70", "81", "96"},
}

var (
	plainRe   = regexp.MustCompile(`^\d{2}$`)
	reverseRe = regexp.MustCompile(`^\d{2}r$`)
	headRe    = regexp.MustCompile(`^\dh$`)
	tailRe    = regexp.MustCompile(`^\dn$`)
)

// Parse turns a bet line into an ordered list of entries. Selectors referring
// to the same number are merged by summing stakes; order is the first
// appearance of each number. Any unparseable token fails the whole line.
func Parse(text string, sets map[string][]string) ([]Entry, error) {
	if sets == nil {
		sets = DefaultSets
	}

	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil, &ParseError{Token: "", Reason: "empty bet line"}
	}

	var entries []Entry
	index := make(map[string]int)

	for _, chunk := range strings.Fields(text) {
		for _, token := range splitChunk(chunk) {
			tokenEntries, err := parseToken(token, sets)
			if err != nil {
				return nil, err
			}
			for _, e := range tokenEntries {
				if i, ok := index[e.Number]; ok {
					entries[i].Amount += e.Amount
					continue
				}
				index[e.Number] = len(entries)
				entries = append(entries, e)
			}
		}
	}

	if len(entries) == 0 {
		return nil, &ParseError{Token: text, Reason: "no wager entries found"}
	}
	return entries, nil
}

// splitChunk decides whether commas inside a whitespace chunk separate whole
// tokens or join selectors. Pieces become separate tokens only when every
// piece carries its own amount delimiter; otherwise the commas are selector
// joiners and the chunk is one token.
func splitChunk(chunk string) []string {
	chunk = strings.Trim(chunk, ",")
	pieces := strings.Split(chunk, ",")
	if len(pieces) < 2 {
		return []string{chunk}
	}
	for _, p := range pieces {
		if !strings.ContainsAny(p, "-/") {
			return []string{chunk}
		}
	}
	return pieces
}

func parseToken(token string, sets map[string][]string) ([]Entry, error) {
	if token == "" {
		return nil, &ParseError{Token: token, Reason: "empty token"}
	}

	delim := strings.IndexAny(token, "-/")
	if delim < 0 {
		return nil, &ParseError{Token: token, Reason: "missing amount delimiter"}
	}
	if delim == 0 {
		return nil, &ParseError{Token: token, Reason: "missing number selector"}
	}

	amount, err := strconv.ParseInt(token[delim+1:], 10, 64)
	if err != nil || amount <= 0 {
		return nil, &ParseError{Token: token, Reason: "amount must be a positive integer"}
	}

	var entries []Entry
	seen := make(map[string]bool)
	add := func(number string) {
		if seen[number] {
			return
		}
		seen[number] = true
		entries = append(entries, Entry{Number: number, Amount: amount})
	}

	selectors := strings.FieldsFunc(token[:delim], func(r rune) bool {
		return r == '.' || r == ','
	})
	if len(selectors) == 0 {
		return nil, &ParseError{Token: token, Reason: "missing number selector"}
	}

	for _, sel := range selectors {
		switch {
		case plainRe.MatchString(sel):
			add(sel)
		case reverseRe.MatchString(sel):
			num := sel[:2]
			add(num)
			add(string([]byte{num[1], num[0]}))
		case headRe.MatchString(sel):
			for i := 0; i < 10; i++ {
				add(fmt.Sprintf("%c%d", sel[0], i))
			}
		case tailRe.MatchString(sel):
			for i := 0; i < 10; i++ {
				add(fmt.Sprintf("%d%c", i, sel[0]))
			}
		default:
			if set, ok := sets[sel]; ok {
				for _, number := range set {
					add(number)
				}
				continue
			}
			return nil, &ParseError{Token: token, Reason: fmt.Sprintf("unrecognized selector %q", sel)}
		}
	}

	return entries, nil
}
