package models

// Insights is the structured narrative returned by the external generator.
// Schema enforcement belongs to the generator boundary; the core only
// requires a non-empty payload.
type Insights struct {
	Archetype            string   `json:"archetype"`
	ArchetypeDescription string   `json:"archetype_description"`
	Insights             []string `json:"insights"`
	Patterns             []string `json:"patterns"`
	Narrative            string   `json:"narrative"`
	CardInsight          string   `json:"card_insight"`
}

// Empty reports whether the generator returned nothing usable.
func (i *Insights) Empty() bool {
	return i.Archetype == "" && i.Narrative == ""
}
