package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"
	mock_service "github.com/Korichi-ishak/traducteur-pro/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTranslateServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockAPII)) *TranslateS {
	api := mock_service.NewMockAPII(ctrl)
	if setupMock != nil {
		setupMock(api)
	}

	return &TranslateS{
		myMemory: api,
		dict:     api,
		cfg:      testLookupCfg,
		log:      zap.NewNop(),
	}
}

func TestTranslateS_TranslateWord(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTranslateServiceMock(t, ctrl, func(mapi *mock_service.MockAPII) {
		mapi.EXPECT().Translate(gomock.Any(), "Haus", models.LangGerman, models.LangFrench).
			Return(models.MachineTranslation{Text: "maison", Alternatives: []string{"demeure"}}, nil)
		mapi.EXPECT().DictionaryData(gomock.Any(), "Haus", models.LangGerman, models.LangFrench).
			Return(models.DictionaryResponse{
				SourceText:      "Haus",
				DestinationText: "maison",
				Translations: models.DictionaryTranslations{
					PossibleTranslations: []string{"maison", "domicile"},
				},
				Definitions: []models.DictionaryDefinition{
					{
						PartOfSpeech: "noun",
						Definition:   "a building for living in",
						Example:      "Das Haus ist groß",
						Synonyms:     map[string][]string{"noun": {"Gebäude"}},
					},
				},
			}, nil)
		// example sentence translation
		mapi.EXPECT().Translate(gomock.Any(), "Das Haus ist groß", models.LangGerman, models.LangFrench).
			Return(models.MachineTranslation{Text: "La maison est grande"}, nil)
		// round trips for synonym discovery
		mapi.EXPECT().Translate(gomock.Any(), "maison", models.LangFrench, models.LangGerman).
			Return(models.MachineTranslation{Text: "Haus"}, nil)
		mapi.EXPECT().Translate(gomock.Any(), "domicile", models.LangFrench, models.LangGerman).
			Return(models.MachineTranslation{Text: "Wohnsitz"}, nil)
	})

	got, err := service.TranslateWord(context.Background(), "Haus", models.LangGerman, models.LangFrench)
	require.NoError(t, err)

	assert.Equal(t, "Haus", got.Word)
	assert.Equal(t, "maison", got.MainTranslation)
	assert.Equal(t, []string{"maison", "domicile", "demeure"}, got.Translations)
	require.Len(t, got.Senses, 1)
	assert.Equal(t, "noun: a building for living in", got.Senses[0].Meaning)
	assert.Equal(t, "maison", got.Senses[0].Translation)
	require.Len(t, got.Examples, 1)
	assert.Equal(t, "Das Haus ist groß", got.Examples[0].Original)
	assert.Equal(t, "La maison est grande", got.Examples[0].Translation)
	assert.Equal(t, []string{"Gebäude", "Wohnsitz"}, got.Synonyms)
	assert.Empty(t, got.Phrases)
}

func TestTranslateS_TranslateWord_DictionaryOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTranslateServiceMock(t, ctrl, func(mapi *mock_service.MockAPII) {
		mapi.EXPECT().Translate(gomock.Any(), "Haus", models.LangGerman, models.LangFrench).
			Return(models.MachineTranslation{}, errors.New("provider down"))
		mapi.EXPECT().DictionaryData(gomock.Any(), "Haus", models.LangGerman, models.LangFrench).
			Return(models.DictionaryResponse{DestinationText: "maison"}, nil)
		mapi.EXPECT().Translate(gomock.Any(), "maison", models.LangFrench, models.LangGerman).
			Return(models.MachineTranslation{}, errors.New("provider down"))
	})

	got, err := service.TranslateWord(context.Background(), "Haus", models.LangGerman, models.LangFrench)
	require.NoError(t, err)

	assert.Equal(t, "maison", got.MainTranslation)
	assert.Equal(t, []string{"maison"}, got.Translations)
	assert.Empty(t, got.Senses)
	assert.Empty(t, got.Synonyms)
}

func TestTranslateS_TranslateWord_AllProvidersFail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTranslateServiceMock(t, ctrl, func(mapi *mock_service.MockAPII) {
		mapi.EXPECT().Translate(gomock.Any(), "Haus", models.LangGerman, models.LangFrench).
			Return(models.MachineTranslation{}, errors.New("provider down"))
		mapi.EXPECT().DictionaryData(gomock.Any(), "Haus", models.LangGerman, models.LangFrench).
			Return(models.DictionaryResponse{}, errors.New("provider down"))
	})

	_, err := service.TranslateWord(context.Background(), "Haus", models.LangGerman, models.LangFrench)
	require.Error(t, err)
}

func TestTranslateS_TranslateWord_InvalidInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTranslateServiceMock(t, ctrl, nil)

	_, err := service.TranslateWord(context.Background(), "   ", models.LangGerman, models.LangFrench)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = service.TranslateWord(context.Background(), "Haus", models.LangGerman, models.LangGerman)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestTranslateS_TranslateSentence(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTranslateServiceMock(t, ctrl, func(mapi *mock_service.MockAPII) {
		mapi.EXPECT().Translate(gomock.Any(), "Das Haus ist groß", models.LangGerman, models.LangFrench).
			Return(models.MachineTranslation{Text: "La maison est grande"}, nil)
		mapi.EXPECT().Translate(gomock.Any(), "Das", models.LangGerman, models.LangFrench).
			Return(models.MachineTranslation{Text: "Le"}, nil)
		mapi.EXPECT().Translate(gomock.Any(), "Haus", models.LangGerman, models.LangFrench).
			Return(models.MachineTranslation{Text: "maison"}, nil)
		mapi.EXPECT().Translate(gomock.Any(), "ist", models.LangGerman, models.LangFrench).
			Return(models.MachineTranslation{}, errors.New("provider down"))
		mapi.EXPECT().Translate(gomock.Any(), "groß", models.LangGerman, models.LangFrench).
			Return(models.MachineTranslation{Text: "grande"}, nil)
	})

	got, err := service.TranslateSentence(context.Background(), "Das Haus ist groß", models.LangGerman, models.LangFrench)
	require.NoError(t, err)

	assert.Equal(t, "Das Haus ist groß", got.Original)
	assert.Equal(t, "La maison est grande", got.Translation)
	assert.Equal(t, map[string]string{"Das": "Le", "Haus": "maison", "groß": "grande"}, got.WordByWord)
}

func TestTranslateS_QuickTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		f       func(*mock_service.MockAPII)
		want    string
		wantErr bool
	}{
		{
			name: "success",
			text: "Guten Morgen",
			f: func(mapi *mock_service.MockAPII) {
				mapi.EXPECT().Translate(gomock.Any(), "Guten Morgen", models.LangGerman, models.LangFrench).
					Return(models.MachineTranslation{Text: "Bonjour"}, nil)
			},
			want: "Bonjour",
		},
		{
			name: "provider error",
			text: "Guten Morgen",
			f: func(mapi *mock_service.MockAPII) {
				mapi.EXPECT().Translate(gomock.Any(), "Guten Morgen", models.LangGerman, models.LangFrench).
					Return(models.MachineTranslation{}, errors.New("provider down"))
			},
			wantErr: true,
		},
		{
			name: "provider rejection",
			text: "Guten Morgen",
			f: func(mapi *mock_service.MockAPII) {
				mapi.EXPECT().Translate(gomock.Any(), "Guten Morgen", models.LangGerman, models.LangFrench).
					Return(models.MachineTranslation{Error: "quota exceeded"}, nil)
			},
			wantErr: true,
		},
		{
			name:    "empty text",
			text:    "  ",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := newTranslateServiceMock(t, ctrl, tt.f)

			got, err := service.QuickTranslate(context.Background(), tt.text, models.LangGerman, models.LangFrench)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSentence(t *testing.T) {
	t.Parallel()

	assert.False(t, IsSentence("Haus"))
	assert.False(t, IsSentence("guten Morgen zusammen"))
	assert.True(t, IsSentence("Das Haus ist groß"))
}
