// https://dictionaryapi.dev
package dictapi

// PlaceholderDefinition is used when an entry has to be synthesized because
// the dictionary API could not be reached.
const PlaceholderDefinition = "Definition not available (offline)."

type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic,omitempty"`
	Phonetics []Phonetic `json:"phonetics,omitempty"`
	Meanings  []Meaning  `json:"meanings"`
}

type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

// FirstMeaning returns the primary meaning, or nil when the entry has none.
func (e Entry) FirstMeaning() *Meaning {
	if len(e.Meanings) == 0 {
		return nil
	}
	return &e.Meanings[0]
}

// FirstDefinition returns the primary definition of a meaning, or nil.
func (m Meaning) FirstDefinition() *Definition {
	if len(m.Definitions) == 0 {
		return nil
	}
	return &m.Definitions[0]
}

// PhoneticText returns the top-level pronunciation guide, falling back to the
// first phonetics element that has a text.
func (e Entry) PhoneticText() string {
	if e.Phonetic != "" {
		return e.Phonetic
	}
	for _, p := range e.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// NewPlaceholder builds a minimal offline entry for a word so callers never
// see a hard failure from an unreachable dictionary API.
func NewPlaceholder(word string) Entry {
	return Entry{
		Word: word,
		Meanings: []Meaning{
			{
				PartOfSpeech: "noun",
				Definitions:  []Definition{{Definition: PlaceholderDefinition}},
			},
		},
	}
}
