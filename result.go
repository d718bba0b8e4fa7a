package scamintel

// Result maps a category key to the matches found for it, in order of
// occurrence. A key is present only when at least one match was found, so a
// missing key means zero matches.
type Result map[string][]string

// Add appends value under c's key.
func (r Result) Add(c Category, value string) {
	r[c.Key()] = append(r[c.Key()], value)
}

// Get returns the matches for c, or nil.
func (r Result) Get(c Category) []string {
	return r[c.Key()]
}

// Has reports whether at least one match was found for c.
func (r Result) Has(c Category) bool {
	return len(r[c.Key()]) > 0
}

// Keys returns the present keys in category order.
func (r Result) Keys() []string {
	var keys []string
	for _, c := range categories {
		if r.Has(c) {
			keys = append(keys, c.Key())
		}
	}
	return keys
}

// Merge appends every list of other onto r, keeping order.
func (r Result) Merge(other Result) {
	for _, c := range categories {
		for _, v := range other.Get(c) {
			r.Add(c, v)
		}
	}
}

// ResultFromFindings assembles the wire-visible result from findings,
// keeping their order.
func ResultFromFindings(findings []Finding) Result {
	r := Result{}
	for _, f := range findings {
		r.Add(f.Category, f.Value)
	}
	return r
}

// ResultFromMatches assembles a Result from matches. Matches are appended
// in the order given.
func ResultFromMatches(matches []Match) Result {
	r := Result{}
	for _, m := range matches {
		r.Add(m.Category, m.Value)
	}
	return r
}
