package icelandic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCase is returned by ParseCase for unrecognised abbreviations.
var ErrUnknownCase = errors.New("icelandic: unknown grammatical case")

// Case is an Icelandic noun case.
type Case int

const (
	Nominative Case = iota // nefnifall (nf)
	Accusative             // þolfall (þf)
	Dative                 // þágufall (þgf)
	Genitive               // eignarfall (ef)
)

var caseAbbreviations = [...]string{
	Nominative: "nf",
	Accusative: "þf",
	Dative:     "þgf",
	Genitive:   "ef",
}

// ParseCase reads the usual abbreviations nf, þf, þgf and ef.
// ASCII spellings (tf, thf, tgf, thgf) are accepted too; "" means Nominative.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nf":
		return Nominative, nil
	case "þf", "tf", "thf":
		return Accusative, nil
	case "þgf", "tgf", "thgf":
		return Dative, nil
	case "ef":
		return Genitive, nil
	}
	return Nominative, fmt.Errorf("%w: %q", ErrUnknownCase, s)
}

// Valid reports whether c is one of the four cases.
func (c Case) Valid() bool {
	return c >= Nominative && c <= Genitive
}

// String returns the abbreviation of c.
func (c Case) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Case(%d)", int(c))
	}
	return caseAbbreviations[c]
}
