package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"
)

type PythonAnyWhereAPI struct{}

func NewPythonAnyWhereAPI() *PythonAnyWhereAPI {
	return &PythonAnyWhereAPI{}
}

// DictionaryData fetches dictionary data (candidate translations, meanings,
// examples, synonyms) for one word and language pair.
func (p *PythonAnyWhereAPI) DictionaryData(ctx context.Context, word, src, tgt string) (models.DictionaryResponse, error) {
	reqURL := fmt.Sprintf(
		"https://ftapi.pythonanywhere.com/translate?sl=%s&dl=%s&text=%s",
		url.QueryEscape(src), url.QueryEscape(tgt), url.QueryEscape(word),
	)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return models.DictionaryResponse{}, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return models.DictionaryResponse{}, err
	}
	defer resp.Body.Close()

	var result models.DictionaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.DictionaryResponse{}, fmt.Errorf("failed to get dictionary data for word: %v", word)
	}

	return result, nil
}
