package scan

// extractContext extracts bytes before and after the match from the message text.
// start and end are the [start, end) byte range of the match within raw.
func extractContext(raw string, start, end int, matchContextBytes int) string {
	if matchContextBytes <= 0 || len(raw) == 0 {
		return ""
	}

	from := start - matchContextBytes
	if from < 0 {
		from = 0
	}
	to := end + matchContextBytes
	if to > len(raw) {
		to = len(raw)
	}

	return raw[from:to]
}
