package scamintel

// Match is a verbatim substring of the scanned text that satisfied one
// category's rule. Start and End are byte offsets, End exclusive.
type Match struct {
	Category Category
	Start    int
	End      int
	Value    string
}
