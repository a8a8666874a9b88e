package huffcoder

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
)

// minParallelChunk is the smallest chunk AnalyzeParallel hands to a worker.
const minParallelChunk = 4096

// FrequencyTable maps each Symbol to its number of occurrences.  Every Symbol
// present has a count of at least 1; absent Symbols have a count of 0.
//
// A FrequencyTable is immutable once constructed.  The zero value is the empty
// table.
type FrequencyTable struct {
	counts map[Symbol]uint64
	total  uint64
}

// Analyze counts the occurrences of each Symbol in input.
func Analyze(input []Symbol) FrequencyTable {
	counts := make(map[Symbol]uint64)
	for _, sym := range input {
		counts[sym]++
	}
	return FrequencyTable{counts: counts, total: uint64(len(input))}
}

// AnalyzeParallel is like Analyze, but counts contiguous chunks of input on up
// to workers goroutines and merges the partial tables.  The result is always
// identical to Analyze(input).
func AnalyzeParallel(input []Symbol, workers int) FrequencyTable {
	if limit := len(input) / minParallelChunk; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		return Analyze(input)
	}

	partials := make([]FrequencyTable, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for index := 0; index < workers; index++ {
		lo, hi := splitEven(len(input), workers, index)
		go func(index int, chunk []Symbol) {
			defer wg.Done()
			partials[index] = Analyze(chunk)
		}(index, input[lo:hi])
	}
	wg.Wait()
	return Merge(partials...)
}

// NewFrequencyTable constructs a FrequencyTable from explicit counts.  Entries
// with a count of 0 are dropped.  The map is copied.
func NewFrequencyTable(counts map[Symbol]uint64) FrequencyTable {
	out := make(map[Symbol]uint64, len(counts))
	var total uint64
	for sym, count := range counts {
		if count == 0 {
			continue
		}
		out[sym] = count
		total = addSaturating(total, count)
	}
	return FrequencyTable{counts: out, total: total}
}

// Merge returns a FrequencyTable whose counts are the sums of the counts in
// tables.
func Merge(tables ...FrequencyTable) FrequencyTable {
	out := make(map[Symbol]uint64)
	var total uint64
	for _, table := range tables {
		for sym, count := range table.counts {
			out[sym] = addSaturating(out[sym], count)
		}
		total = addSaturating(total, table.total)
	}
	return FrequencyTable{counts: out, total: total}
}

// Len returns the number of distinct Symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.counts)
}

// Count returns the number of occurrences of sym.
func (ft FrequencyTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Total returns the sum of all counts.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct Symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	return sortedSymbols(ft.counts)
}

// Entropy returns the Shannon entropy of the distribution, in bits per
// symbol.  No prefix code can have an average codeword length below this.
func (ft FrequencyTable) Entropy() float64 {
	if ft.total == 0 {
		return 0
	}
	total := float64(ft.total)
	var h float64
	for _, count := range ft.counts {
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return h
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, sym := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%v) = %d\n", sym, ft.counts[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the table.
func (ft FrequencyTable) String() string {
	return fmt.Sprintf("(frequency table with %d symbols, %d occurrences)", ft.Len(), ft.total)
}

var _ fmt.Stringer = FrequencyTable{}

func sortedSymbols[V any](m map[Symbol]V) []Symbol {
	out := make([]Symbol, 0, len(m))
	for sym := range m {
		out = append(out, sym)
	}
	sort.Sort(bySymbol(out))
	return out
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
