package scamintel

// Intel is the per-message intelligence summary handed to downstream triage:
// the extraction result plus the scam keywords seen in the text.
type Intel struct {
	Result       Result   `json:"extractedIntelligence"`
	Keywords     []string `json:"suspiciousKeywords"`
	ScamDetected bool     `json:"scamDetected"`
}
