package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"
)

type MyMemoryAPI struct{}

func NewMyMemoryAPI() *MyMemoryAPI {
	return &MyMemoryAPI{}
}

// Translate asks MyMemory for a machine translation of text for the given
// language pair, e.g. de→fr. Provider-side failures come back inside the
// result's Error field, not as an error.
func (m *MyMemoryAPI) Translate(ctx context.Context, text, src, tgt string) (models.MachineTranslation, error) {
	reqURL := fmt.Sprintf(
		"https://api.mymemory.translated.net/get?q=%s&langpair=%s",
		url.QueryEscape(text),
		url.QueryEscape(src+"|"+tgt),
	)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return models.MachineTranslation{}, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return models.MachineTranslation{}, err
	}
	defer resp.Body.Close()

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.MachineTranslation{}, err
	}

	if data.ResponseBody.ResponseStatus != 200 {
		return models.MachineTranslation{
			Error: data.ResponseBody.ResponseDetails,
		}, nil
	}

	var alternatives []string
	for _, match := range data.Matches {
		if match.Translation != data.ResponseBody.TranslatedText {
			alternatives = append(alternatives, match.Translation)
		}
	}

	return models.MachineTranslation{
		Text:         data.ResponseBody.TranslatedText,
		Match:        data.ResponseBody.Match,
		Source:       src,
		Target:       tgt,
		Reliable:     data.ResponseBody.Match >= 0.8,
		Alternatives: alternatives,
	}, nil
}
