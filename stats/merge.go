package stats

// Merge folds every bucket of a into b and returns b. a must not be used
// afterwards.
func Merge(a, b *Table) *Table {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	for _, e := range a.entries {
		b.foldAggregate(e.key, e.agg)
	}
	return b
}

// MergeAll reduces tables pairwise in a balanced tree. nil tables are
// skipped. Every input table is consumed.
func MergeAll(tables []*Table) *Table {
	live := make([]*Table, 0, len(tables))
	for _, t := range tables {
		if t != nil {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return NewTable(XXHash)
	}

	for stride := 1; stride < len(live); stride *= 2 {
		for i := 0; i+stride < len(live); i += 2 * stride {
			live[i] = Merge(live[i+stride], live[i])
		}
	}
	return live[0]
}
