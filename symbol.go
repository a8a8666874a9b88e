package huffcoder

import (
	"strconv"
	"unicode"
)

// Symbol represents a symbol in an arbitrary alphabet.  Any int32 value is a
// legal Symbol; a rune converts to a Symbol without loss.
type Symbol int32

// String returns the quoted rune for printable symbols, or the decimal value
// otherwise.
func (s Symbol) String() string {
	if s >= 0 && unicode.IsPrint(rune(s)) {
		return strconv.QuoteRune(rune(s))
	}
	return strconv.FormatInt(int64(s), 10)
}

// SymbolsFromString returns one Symbol per rune of str.
func SymbolsFromString(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, ch := range str {
		out = append(out, Symbol(ch))
	}
	return out
}

// StringFromSymbols is the inverse of SymbolsFromString.  Symbols which are
// not valid runes come out as U+FFFD.
func StringFromSymbols(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for index, sym := range symbols {
		runes[index] = rune(sym)
	}
	return string(runes)
}
