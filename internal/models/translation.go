package models

// MyMemoryResponse mirrors the api.mymemory.translated.net payload.
type MyMemoryResponse struct {
	ResponseBody struct {
		TranslatedText  string  `json:"translatedText"`
		Match           float64 `json:"match"`
		ResponseStatus  int     `json:"responseStatus"`
		ResponseDetails string  `json:"responseDetails"` // "OK" or a quota / error message
	} `json:"responseData"`

	Matches []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

// MachineTranslation is the normalized machine-translation result.
type MachineTranslation struct {
	Text         string
	Match        float64
	Source       string
	Target       string
	Reliable     bool
	Alternatives []string
	Error        string
}

// DictionaryResponse mirrors the ftapi.pythonanywhere.com payload.
type DictionaryResponse struct {
	SourceText      string                 `json:"source-text"`
	DestinationText string                 `json:"destination-text"`
	Translations    DictionaryTranslations `json:"translations"`
	Definitions     []DictionaryDefinition `json:"definitions"`
}

type DictionaryTranslations struct {
	PossibleTranslations []string `json:"possible-translations"`
}

type DictionaryDefinition struct {
	PartOfSpeech  string              `json:"part-of-speech"`
	Definition    string              `json:"definition"`
	Example       string              `json:"example"`
	OtherExamples []string            `json:"other-examples"`
	Synonyms      map[string][]string `json:"synonyms"`
}
