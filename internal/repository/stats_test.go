package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"
	mock_repository "github.com/Korichi-ishak/traducteur-pro/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *StatsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &StatsR{db: db}
}

func TestStatsR_Get(t *testing.T) {
	t.Parallel()

	lastSession := time.Now().Add(-time.Hour)
	existing := models.SessionStats{
		UserID:             "user-1",
		TotalSessions:      5,
		TotalWordsReviewed: 42,
		TotalCorrect:       30,
		TotalIncorrect:     12,
		StreakDays:         3,
		LastSession:        &lastSession,
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.SessionStats
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&existing), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.SessionStats) = existing
						return nil
					})
			},
			want: existing,
		},
		{
			name: "no row yet",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			want: models.SessionStats{UserID: "user-1"},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newStatsMock(t, ctrl, tt.f)

			got, err := repo.Get(context.Background(), "user-1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.UserID, got.UserID)
			assert.Equal(t, tt.want.TotalSessions, got.TotalSessions)
			assert.Equal(t, tt.want.StreakDays, got.StreakDays)
		})
	}
}

func TestStatsR_RecordActivity(t *testing.T) {
	t.Parallel()

	now := time.Now()
	updated := models.SessionStats{
		UserID:             "user-1",
		TotalSessions:      2,
		TotalWordsReviewed: 10,
		TotalCorrect:       7,
		TotalIncorrect:     3,
		StreakDays:         2,
		LastSession:        &now,
	}

	tests := []struct {
		name    string
		correct bool
		f       func(*mock_repository.MockQueryI)
		want    models.SessionStats
		wantErr bool
	}{
		{
			name:    "success",
			correct: true,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&updated), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.SessionStats) = updated
						return nil
					})
			},
			want: updated,
		},
		{
			name:    "db error",
			correct: false,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newStatsMock(t, ctrl, tt.f)

			got, err := repo.RecordActivity(context.Background(), "user-1", tt.correct, now, 30*time.Minute)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.TotalSessions, got.TotalSessions)
			assert.Equal(t, tt.want.TotalCorrect, got.TotalCorrect)
			assert.Equal(t, tt.want.StreakDays, got.StreakDays)
		})
	}
}

func TestStatsR_RecordBatch(t *testing.T) {
	t.Parallel()

	now := time.Now()
	updated := models.SessionStats{
		UserID:             "user-1",
		TotalSessions:      1,
		TotalWordsReviewed: 8,
		TotalCorrect:       6,
		TotalIncorrect:     2,
		StreakDays:         1,
		LastSession:        &now,
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.SessionStats
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&updated), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.SessionStats) = updated
						return nil
					})
			},
			want: updated,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newStatsMock(t, ctrl, tt.f)

			got, err := repo.RecordBatch(context.Background(), "user-1", 8, 6, now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.TotalWordsReviewed, got.TotalWordsReviewed)
			assert.Equal(t, tt.want.TotalCorrect, got.TotalCorrect)
			assert.Equal(t, tt.want.TotalIncorrect, got.TotalIncorrect)
		})
	}
}
