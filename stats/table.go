package stats

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Tables start small and double as keys arrive.
const initialSlots = 1 << 10

// Aggregate is the running count/sum/min/max of one key, all in tenths.
// A bucket is created from its first observation, so min and max are always
// real values.
type Aggregate struct {
	Count uint64
	Sum   int64
	Min   int64
	Max   int64
}

func newAggregate(tenths int64) Aggregate {
	return Aggregate{Count: 1, Sum: tenths, Min: tenths, Max: tenths}
}

func (a *Aggregate) add(tenths int64) {
	a.Count++
	a.Sum += tenths
	a.Min = min(a.Min, tenths)
	a.Max = max(a.Max, tenths)
}

func (a *Aggregate) merge(o Aggregate) {
	a.Count += o.Count
	a.Sum += o.Sum
	a.Min = min(a.Min, o.Min)
	a.Max = max(a.Max, o.Max)
}

func (a Aggregate) Mean() int64 {
	return MeanTenths(a.Sum, a.Count)
}

type entry struct {
	hash uint64
	key  string
	agg  Aggregate
}

// Table maps keys to aggregates with open addressing. slots holds 1-based
// indexes into entries so that growing only rehashes the slot array.
//
// A Table is not safe for concurrent use.
type Table struct {
	hash    Hasher
	slots   []int32
	mask    uint64
	entries []entry
}

func NewTable(h Hasher) *Table {
	if h == nil {
		h = XXHash
	}
	return &Table{
		hash:    h,
		slots:   make([]int32, initialSlots),
		mask:    initialSlots - 1,
		entries: make([]entry, 0, initialSlots/2),
	}
}

// Fold records one observation of key. The key bytes are copied only when
// the key is seen for the first time.
func (t *Table) Fold(key []byte, tenths int64) {
	h := t.hash(key)
	slot, idx := t.lookup(h, key)
	if idx >= 0 {
		t.entries[idx].agg.add(tenths)
		return
	}
	t.insert(slot, entry{hash: h, key: string(key), agg: newAggregate(tenths)})
}

func (t *Table) foldAggregate(key string, agg Aggregate) {
	kb := []byte(key)
	h := t.hash(kb)
	slot, idx := t.lookup(h, kb)
	if idx >= 0 {
		t.entries[idx].agg.merge(agg)
		return
	}
	t.insert(slot, entry{hash: h, key: key, agg: agg})
}

func (t *Table) Get(key string) (Aggregate, bool) {
	kb := []byte(key)
	_, idx := t.lookup(t.hash(kb), kb)
	if idx < 0 {
		return Aggregate{}, false
	}
	return t.entries[idx].agg, true
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Range calls f for every key in insertion order until f returns false.
func (t *Table) Range(f func(key string, agg Aggregate) bool) {
	for i := range t.entries {
		if !f(t.entries[i].key, t.entries[i].agg) {
			return
		}
	}
}

// Snapshot copies the table into a plain map.
func (t *Table) Snapshot() map[string]Aggregate {
	m := make(map[string]Aggregate, len(t.entries))
	for _, e := range t.entries {
		m[e.key] = e.agg
	}
	return m
}

// lookup returns the entry index for key, or -1 and the empty slot where it
// belongs.
func (t *Table) lookup(h uint64, key []byte) (uint64, int) {
	for i := h & t.mask; ; i = (i + 1) & t.mask {
		idx := t.slots[i]
		if idx == 0 {
			return i, -1
		}
		e := &t.entries[idx-1]
		if e.hash == h && e.key == string(key) {
			return i, int(idx - 1)
		}
	}
}

func (t *Table) insert(slot uint64, e entry) {
	t.entries = append(t.entries, e)
	t.slots[slot] = int32(len(t.entries))

	// Keep the load factor under 3/4.
	if len(t.entries)*4 >= len(t.slots)*3 {
		t.grow()
	}
}

func (t *Table) grow() {
	slots := make([]int32, len(t.slots)*2)
	mask := uint64(len(slots) - 1)
	for idx, e := range t.entries {
		i := e.hash & mask
		for slots[i] != 0 {
			i = (i + 1) & mask
		}
		slots[i] = int32(idx + 1)
	}
	t.slots = slots
	t.mask = mask
}

// Summary is the reportable form of an Aggregate, in tenths.
type Summary struct {
	Key   string
	Min   int64
	Mean  int64
	Max   int64
	Count uint64
}

// Summaries returns one Summary per key, sorted by key bytes.
func (t *Table) Summaries() []Summary {
	sums := make([]Summary, 0, len(t.entries))
	for _, e := range t.entries {
		sums = append(sums, Summary{
			Key:   e.key,
			Min:   e.agg.Min,
			Mean:  e.agg.Mean(),
			Max:   e.agg.Max,
			Count: e.agg.Count,
		})
	}
	slices.SortFunc(sums, func(a, b Summary) int {
		return strings.Compare(a.Key, b.Key)
	})
	return sums
}

// MeanTenths divides sum by count and rounds half up, toward positive
// infinity, so 1.5 tenths becomes 2 and -1.5 tenths becomes -1.
func MeanTenths(sum int64, count uint64) int64 {
	if count == 0 {
		return 0
	}
	n := 2*sum + int64(count)
	d := 2 * int64(count)
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
