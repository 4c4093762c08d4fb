package domain

// DifferenceReport is the structured comparison between two deck versions.
// The AI is asked to return exactly these five list-valued fields.
type DifferenceReport struct {
	ContentChanges []string `json:"content_changes"`
	MeaningChanges []string `json:"meaning_changes"`
	Additions      []string `json:"additions"`
	Removals       []string `json:"removals"`
	ToneChanges    []string `json:"tone_changes"`
}

// FirstVersionReport is the report returned when there is no previous deck
// version to compare against.
func FirstVersionReport() *DifferenceReport {
	return &DifferenceReport{
		ContentChanges: []string{"This is the first version of the pitch deck"},
		MeaningChanges: []string{},
		Additions:      []string{},
		Removals:       []string{},
		ToneChanges:    []string{},
	}
}

// FallbackReport is the report returned when the AI reply cannot be parsed
// or the completion call fails.
func FallbackReport() *DifferenceReport {
	return &DifferenceReport{
		ContentChanges: []string{"Error parsing AI response"},
		MeaningChanges: []string{},
		Additions:      []string{},
		Removals:       []string{},
		ToneChanges:    []string{},
	}
}
