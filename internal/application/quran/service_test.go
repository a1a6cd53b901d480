package quran

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muslimtime-api/internal/domain"
)

type mockContentAPI struct{ mock.Mock }

func (m *mockContentAPI) ListSurahs(ctx context.Context) ([]domain.Surah, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Surah), args.Error(1)
}
func (m *mockContentAPI) GetSurah(ctx context.Context, number int) (*domain.SurahDetail, error) {
	args := m.Called(ctx, number)
	if d, _ := args.Get(0).(*domain.SurahDetail); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockContentAPI) GetJuz(ctx context.Context, number int) (*domain.JuzDetail, error) {
	args := m.Called(ctx, number)
	if d, _ := args.Get(0).(*domain.JuzDetail); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListSurahsIsCached(t *testing.T) {
	api := &mockContentAPI{}
	svc := NewService(api)

	api.On("ListSurahs", mock.Anything).
		Return([]domain.Surah{{Number: 1, EnglishName: "Al-Fatihah"}}, nil).Once()

	for i := 0; i < 3; i++ {
		surahs, err := svc.ListSurahs(context.Background())
		require.NoError(t, err)
		require.Len(t, surahs, 1)
	}
	api.AssertNumberOfCalls(t, "ListSurahs", 1)
}

func TestGetSurahIsCachedPerNumber(t *testing.T) {
	api := &mockContentAPI{}
	svc := NewService(api)

	api.On("GetSurah", mock.Anything, 1).
		Return(&domain.SurahDetail{Number: 1}, nil).Once()
	api.On("GetSurah", mock.Anything, 2).
		Return(&domain.SurahDetail{Number: 2}, nil).Once()

	for i := 0; i < 2; i++ {
		d1, err := svc.GetSurah(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, d1.Number)

		d2, err := svc.GetSurah(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, 2, d2.Number)
	}
	api.AssertExpectations(t)
}

func TestGetSurahRejectsOutOfRange(t *testing.T) {
	api := &mockContentAPI{}
	svc := NewService(api)

	for _, n := range []int{0, -1, 115} {
		_, err := svc.GetSurah(context.Background(), n)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	}
	api.AssertNotCalled(t, "GetSurah")
}

func TestGetJuzRejectsOutOfRange(t *testing.T) {
	api := &mockContentAPI{}
	svc := NewService(api)

	for _, n := range []int{0, 31} {
		_, err := svc.GetJuz(context.Background(), n)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	}
	api.AssertNotCalled(t, "GetJuz")
}

func TestGetJuzDelegates(t *testing.T) {
	api := &mockContentAPI{}
	svc := NewService(api)

	api.On("GetJuz", mock.Anything, 30).Return(&domain.JuzDetail{Number: 30}, nil)

	juz, err := svc.GetJuz(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 30, juz.Number)
}
