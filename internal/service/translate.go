package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Korichi-ishak/traducteur-pro/internal/config"
	"github.com/Korichi-ishak/traducteur-pro/internal/models"

	"go.uber.org/zap"
)

type TranslateS struct {
	myMemory MyMemoryAPII
	dict     DictionaryAPII
	cfg      config.LookupConfig
	log      *zap.Logger
}

func NewTranslateService(api APII, cfg config.LookupConfig, log *zap.Logger) *TranslateS {
	return &TranslateS{
		myMemory: api,
		dict:     api,
		cfg:      cfg,
		log:      log,
	}
}

// TranslateWord aggregates the machine translation and the dictionary data
// for one word into a lookup result. A failed provider only empties its own
// fields; the lookup fails only when no translation at all can be produced.
func (t *TranslateS) TranslateWord(ctx context.Context, word, src, tgt string) (models.LookupResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return models.LookupResult{}, fmt.Errorf("empty word: %w", models.ErrInvalidInput)
	}
	if err := validateLangPair(src, tgt); err != nil {
		return models.LookupResult{}, fmt.Errorf("unsupported language pair %s→%s: %w", src, tgt, err)
	}

	mt, err := t.myMemory.Translate(ctx, word, src, tgt)
	if err != nil {
		t.log.Error("failed to get machine translation", zap.String("word", word), zap.Error(err))
		mt = models.MachineTranslation{}
	}
	if mt.Error != "" {
		t.log.Warn("machine translation rejected", zap.String("word", word), zap.String("detail", mt.Error))
		mt.Text = ""
	}

	dict, err := t.dict.DictionaryData(ctx, word, src, tgt)
	if err != nil {
		t.log.Error("failed to get dictionary data", zap.String("word", word), zap.Error(err))
		dict = models.DictionaryResponse{}
	}

	main := mt.Text
	if main == "" {
		main = dict.DestinationText
	}

	translations := mergeUnique(t.cfg.MaxTranslations, main)
	translations = appendUnique(translations, t.cfg.MaxTranslations, dict.Translations.PossibleTranslations...)
	translations = appendUnique(translations, t.cfg.MaxTranslations, mt.Alternatives...)

	if main == "" {
		if len(translations) == 0 {
			return models.LookupResult{}, fmt.Errorf("failed to translate word %q", word)
		}
		main = translations[0]
	}

	senses := make([]models.Sense, 0, len(dict.Definitions))
	dictSynonyms := make([]string, 0)
	for i, def := range dict.Definitions {
		if def.Definition != "" && len(senses) < t.cfg.MaxSenses {
			meaning := def.Definition
			if def.PartOfSpeech != "" {
				meaning = def.PartOfSpeech + ": " + def.Definition
			}
			translation := main
			if i < len(dict.Translations.PossibleTranslations) {
				translation = dict.Translations.PossibleTranslations[i]
			}
			senses = append(senses, models.Sense{Meaning: meaning, Translation: translation})
		}
		for _, words := range def.Synonyms {
			dictSynonyms = append(dictSynonyms, words...)
		}
	}

	examples := t.collectExamples(ctx, dict, src, tgt)
	synonyms := t.collectSynonyms(ctx, word, src, tgt, translations, dictSynonyms)

	return models.LookupResult{
		Word:            word,
		MainTranslation: main,
		Translations:    translations,
		Senses:          senses,
		Phrases:         []models.Phrase{},
		Examples:        examples,
		Synonyms:        synonyms,
		Src:             src,
		Tgt:             tgt,
	}, nil
}

// collectExamples picks example sentences from the dictionary payload and
// translates each one best-effort; an untranslatable example keeps an empty
// translation rather than dropping out.
func (t *TranslateS) collectExamples(ctx context.Context, dict models.DictionaryResponse, src, tgt string) []models.Example {
	examples := make([]models.Example, 0, t.cfg.MaxExamples)
	for _, def := range dict.Definitions {
		candidates := def.OtherExamples
		if def.Example != "" {
			candidates = append([]string{def.Example}, candidates...)
		}
		for _, sentence := range candidates {
			if len(examples) >= t.cfg.MaxExamples {
				return examples
			}
			if sentence == "" {
				continue
			}
			translated := ""
			if mt, err := t.myMemory.Translate(ctx, sentence, src, tgt); err == nil && mt.Error == "" {
				translated = mt.Text
			}
			examples = append(examples, models.Example{Original: sentence, Translation: translated})
		}
	}
	return examples
}

// collectSynonyms merges the dictionary's source-language synonyms with
// round-trip translations of the top candidate translations, the same trick
// the lookup uses to surface near-meaning words.
func (t *TranslateS) collectSynonyms(ctx context.Context, word, src, tgt string, translations, dictSynonyms []string) []string {
	synonyms := make([]string, 0, t.cfg.MaxSynonyms)
	seen := map[string]bool{strings.ToLower(word): true}

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] || len(synonyms) >= t.cfg.MaxSynonyms {
			return
		}
		seen[strings.ToLower(s)] = true
		synonyms = append(synonyms, s)
	}

	for _, s := range dictSynonyms {
		add(s)
	}

	limit := 3
	if limit > len(translations) {
		limit = len(translations)
	}
	for _, candidate := range translations[:limit] {
		if len(synonyms) >= t.cfg.MaxSynonyms {
			break
		}
		reverse, err := t.myMemory.Translate(ctx, candidate, tgt, src)
		if err != nil || reverse.Error != "" {
			continue
		}
		add(reverse.Text)
	}

	return synonyms
}

// TranslateSentence translates a full sentence and builds a word-by-word
// vocabulary map for every token longer than two letters.
func (t *TranslateS) TranslateSentence(ctx context.Context, sentence, src, tgt string) (models.SentenceResult, error) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return models.SentenceResult{}, fmt.Errorf("empty sentence: %w", models.ErrInvalidInput)
	}
	if err := validateLangPair(src, tgt); err != nil {
		return models.SentenceResult{}, fmt.Errorf("unsupported language pair %s→%s: %w", src, tgt, err)
	}

	mt, err := t.myMemory.Translate(ctx, sentence, src, tgt)
	if err != nil {
		return models.SentenceResult{}, fmt.Errorf("failed to translate sentence: %w", err)
	}
	if mt.Error != "" {
		return models.SentenceResult{}, fmt.Errorf("failed to translate sentence: %s", mt.Error)
	}

	wordByWord := make(map[string]string)
	for _, token := range tokenize(sentence) {
		if _, done := wordByWord[token]; done {
			continue
		}
		wt, err := t.myMemory.Translate(ctx, token, src, tgt)
		if err != nil || wt.Error != "" || wt.Text == "" {
			continue
		}
		wordByWord[token] = wt.Text
	}

	return models.SentenceResult{
		Original:    sentence,
		Translation: mt.Text,
		WordByWord:  wordByWord,
		Src:         src,
		Tgt:         tgt,
	}, nil
}

// QuickTranslate is the machine-translation-only path, nothing persisted.
func (t *TranslateS) QuickTranslate(ctx context.Context, text, src, tgt string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty text: %w", models.ErrInvalidInput)
	}
	if err := validateLangPair(src, tgt); err != nil {
		return "", fmt.Errorf("unsupported language pair %s→%s: %w", src, tgt, err)
	}

	mt, err := t.myMemory.Translate(ctx, text, src, tgt)
	if err != nil {
		return "", fmt.Errorf("failed to translate: %w", err)
	}
	if mt.Error != "" {
		return "", fmt.Errorf("failed to translate: %s", mt.Error)
	}

	return mt.Text, nil
}

// IsSentence reports whether text should be translated in sentence mode.
func IsSentence(text string) bool {
	return len(strings.Fields(text)) > 3
}

func tokenize(sentence string) []string {
	fields := strings.FieldsFunc(sentence, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func mergeUnique(limit int, values ...string) []string {
	return appendUnique(make([]string, 0, limit), limit, values...)
}

func appendUnique(dst []string, limit int, values ...string) []string {
	seen := make(map[string]bool, len(dst))
	for _, v := range dst {
		seen[strings.ToLower(v)] = true
	}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[strings.ToLower(v)] || len(dst) >= limit {
			continue
		}
		seen[strings.ToLower(v)] = true
		dst = append(dst, v)
	}
	return dst
}
