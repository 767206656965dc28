package freq

// Dist is a frequency distribution over a token sequence. Iteration
// order is the order in which words were first encountered.
type Dist struct {
	N      int            // total number of tokens counted
	counts map[string]int // occurrences per word
	first  map[string]int // index of first occurrence
	order  []string       // distinct words in first-encounter order
}

// NewDist counts every token of seq.
func NewDist(seq []string) *Dist {
	d := &Dist{
		counts: make(map[string]int),
		first:  make(map[string]int),
	}
	for _, tok := range seq {
		d.Add(tok)
	}
	return d
}

// Add counts one more token at the next position
func (d *Dist) Add(tok string) {
	if _, ok := d.counts[tok]; !ok {
		d.first[tok] = d.N
		d.order = append(d.order, tok)
	}
	d.counts[tok]++
	d.N++
}

// Count returns the number of occurrences of word
func (d *Dist) Count(word string) int {
	return d.counts[word]
}

// Freq returns Count(word)/N, or 0 for an empty distribution.
func (d *Dist) Freq(word string) float64 {
	if d.N == 0 {
		return 0
	}
	return float64(d.counts[word]) / float64(d.N)
}

// First returns the index of the first occurrence of word.
func (d *Dist) First(word string) (int, bool) {
	i, ok := d.first[word]
	return i, ok
}

// Words returns the distinct words in first-encounter order.
func (d *Dist) Words() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Unique returns the number of distinct words
func (d *Dist) Unique() int {
	return len(d.order)
}
