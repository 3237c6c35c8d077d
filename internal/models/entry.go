package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	LangGerman = "de"
	LangFrench = "fr"
)

func SupportedLang(code string) bool {
	return code == LangGerman || code == LangFrench
}

type Sense struct {
	Meaning     string `json:"meaning"`
	Translation string `json:"translation"`
}

type Phrase struct {
	Phrase      string `json:"phrase"`
	Translation string `json:"translation"`
}

type Example struct {
	Original    string `json:"original"`
	Translation string `json:"translation"`
}

// List types are stored as JSONB columns in postgres.

type StringList []string

func (l StringList) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *StringList) Scan(src any) error          { return scanJSON(src, l) }

type SenseList []Sense

func (l SenseList) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *SenseList) Scan(src any) error          { return scanJSON(src, l) }

type PhraseList []Phrase

func (l PhraseList) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *PhraseList) Scan(src any) error          { return scanJSON(src, l) }

type ExampleList []Example

func (l ExampleList) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *ExampleList) Scan(src any) error          { return scanJSON(src, l) }

func scanJSON(src any, dest any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into %T", src, dest)
	}
}

// VocabularyEntry is one tracked word for one user and one direction.
// Exactly one entry exists per (user_id, lower(word), src_lang).
type VocabularyEntry struct {
	ID              uuid.UUID   `db:"id" json:"id"`
	UserID          string      `db:"user_id" json:"user_id"`
	Word            string      `db:"word" json:"word"`
	SrcLang         string      `db:"src_lang" json:"src_lang"`
	TgtLang         string      `db:"tgt_lang" json:"tgt_lang"`
	MainTranslation string      `db:"main_translation" json:"main_translation"`
	Translations    StringList  `db:"translations" json:"translations"`
	Senses          SenseList   `db:"senses" json:"senses"`
	Phrases         PhraseList  `db:"phrases" json:"phrases"`
	Examples        ExampleList `db:"examples" json:"examples"`
	Synonyms        StringList  `db:"synonyms" json:"synonyms"`
	LookupCount     int         `db:"lookup_count" json:"lookup_count"`
	DateAdded       time.Time   `db:"date_added" json:"date_added"`
	LastLookup      time.Time   `db:"last_lookup" json:"last_lookup"`
	RevisionScore   int         `db:"revision_score" json:"revision_score"`
	NextRevision    time.Time   `db:"next_revision" json:"next_revision"`
	TimesCorrect    int         `db:"times_correct" json:"times_correct"`
	TimesIncorrect  int         `db:"times_incorrect" json:"times_incorrect"`
}

// LookupResult is the normalized provider payload for one word lookup.
// Any list may be empty when the corresponding upstream source failed.
type LookupResult struct {
	Word            string    `json:"word"`
	MainTranslation string    `json:"main_translation"`
	Translations    []string  `json:"translations"`
	Senses          []Sense   `json:"senses"`
	Phrases         []Phrase  `json:"phrases"`
	Examples        []Example `json:"examples"`
	Synonyms        []string  `json:"synonyms"`
	Src             string    `json:"src"`
	Tgt             string    `json:"tgt"`
}

// SentenceResult is the sentence-mode translation payload.
type SentenceResult struct {
	Original    string            `json:"original"`
	Translation string            `json:"translation"`
	WordByWord  map[string]string `json:"word_by_word"`
	Src         string            `json:"src"`
	Tgt         string            `json:"tgt"`
}
