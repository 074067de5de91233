package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pokedex/internal/model"
	"pokedex/internal/pokedex"
	repoMocks "pokedex/internal/repository/mocks"
)

type mockCatalogCache struct {
	mock.Mock
}

func (m *mockCatalogCache) GetSpecies(ctx context.Context) ([]model.Species, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Species), args.Error(1)
}

func (m *mockCatalogCache) SetSpecies(ctx context.Context, species []model.Species) error {
	return m.Called(ctx, species).Error(0)
}

func (m *mockCatalogCache) InvalidateSpecies(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestCatalogService_LoadsOnce(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockSpeciesRepository)
	mDex := new(repoMocks.MockDexRepository)
	mRepo.On("All", ctx).Return(sampleSpecies(), nil).Once()

	svc := NewCatalogService(mRepo, mDex, nil, 0)

	page, err := svc.List(ctx, "", pokedex.Query{Type: "grass"})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.False(t, page.Items[0].Owned)

	sp, err := svc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Charmander", sp.Name)

	mRepo.AssertExpectations(t)
	mDex.AssertNotCalled(t, "Owned", mock.Anything, mock.Anything)
}

func TestCatalogService_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("hit skips the repository", func(t *testing.T) {
		mRepo := new(repoMocks.MockSpeciesRepository)
		mCache := new(mockCatalogCache)
		mCache.On("GetSpecies", ctx).Return(sampleSpecies(), nil).Once()

		svc := NewCatalogService(mRepo, new(repoMocks.MockDexRepository), mCache, time.Hour)
		all, err := svc.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)
		mRepo.AssertNotCalled(t, "All", mock.Anything)
	})

	t.Run("miss loads and fills the cache", func(t *testing.T) {
		mRepo := new(repoMocks.MockSpeciesRepository)
		mCache := new(mockCatalogCache)
		mCache.On("GetSpecies", ctx).Return(nil, errors.New("cache miss")).Once()
		mRepo.On("All", ctx).Return(sampleSpecies(), nil).Once()
		mCache.On("SetSpecies", ctx, mock.MatchedBy(func(s []model.Species) bool { return len(s) == 4 })).Return(nil).Once()

		svc := NewCatalogService(mRepo, new(repoMocks.MockDexRepository), mCache, time.Hour)
		_, err := svc.All(ctx)
		require.NoError(t, err)
		mRepo.AssertExpectations(t)
		mCache.AssertExpectations(t)
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		mRepo := new(repoMocks.MockSpeciesRepository)
		mCache := new(mockCatalogCache)
		mCache.On("GetSpecies", ctx).Return(nil, errors.New("down"))
		mRepo.On("All", ctx).Return(sampleSpecies(), nil)
		mCache.On("SetSpecies", ctx, mock.Anything).Return(errors.New("down"))

		svc := NewCatalogService(mRepo, new(repoMocks.MockDexRepository), mCache, time.Hour)
		all, err := svc.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})
}

func TestCatalogService_RefreshAfterTTL(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockSpeciesRepository)
	mRepo.On("All", ctx).Return(sampleSpecies(), nil).Twice()

	svc := NewCatalogService(mRepo, new(repoMocks.MockDexRepository), nil, time.Minute).(*catalogService)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.All(ctx)
	require.NoError(t, err)
	now = now.Add(30 * time.Second)
	_, err = svc.All(ctx)
	require.NoError(t, err)
	now = now.Add(time.Minute)
	_, err = svc.All(ctx)
	require.NoError(t, err)

	mRepo.AssertNumberOfCalls(t, "All", 2)
}

func TestCatalogService_EmptyCatalogIsRetried(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockSpeciesRepository)
	mRepo.On("All", ctx).Return([]model.Species{}, nil).Once()
	mRepo.On("All", ctx).Return(sampleSpecies(), nil).Once()

	svc := NewCatalogService(mRepo, new(repoMocks.MockDexRepository), nil, 0)
	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrSpeciesNotFound)

	sp, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", sp.Name)
}

func TestCatalogService_List(t *testing.T) {
	ctx := context.Background()
	owned := true

	tests := []struct {
		name      string
		userID    string
		query     pokedex.Query
		setup     func(mDex *repoMocks.MockDexRepository)
		wantTotal int
		wantOwned []bool
		wantErr   error
	}{
		{
			name:      "anonymous",
			query:     pokedex.Query{Sort: "-number"},
			wantTotal: 4,
			wantOwned: []bool{false, false, false, false},
		},
		{
			name:   "annotated with ownership",
			userID: userID,
			query:  pokedex.Query{},
			setup: func(mDex *repoMocks.MockDexRepository) {
				mDex.On("Owned", ctx, userID).Return([]int{1, 4}, nil)
			},
			wantTotal: 4,
			wantOwned: []bool{true, false, false, true},
		},
		{
			name:   "owned filter",
			userID: userID,
			query:  pokedex.Query{Owned: &owned},
			setup: func(mDex *repoMocks.MockDexRepository) {
				mDex.On("Owned", ctx, userID).Return([]int{3}, nil)
			},
			wantTotal: 1,
			wantOwned: []bool{true},
		},
		{
			name:    "invalid sort",
			query:   pokedex.Query{Sort: "weight"},
			wantErr: ErrInvalidSort,
		},
		{
			name:    "invalid user",
			userID:  "ash",
			wantErr: ErrInvalidUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockSpeciesRepository)
			mDex := new(repoMocks.MockDexRepository)
			mRepo.On("All", ctx).Return(sampleSpecies(), nil)
			if tt.setup != nil {
				tt.setup(mDex)
			}

			svc := NewCatalogService(mRepo, mDex, nil, 0)
			page, err := svc.List(ctx, tt.userID, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, page.Total)
			got := make([]bool, 0, len(page.Items))
			for _, e := range page.Items {
				got = append(got, e.Owned)
			}
			assert.Equal(t, tt.wantOwned, got)
			mDex.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockSpeciesRepository)
	mRepo.On("All", ctx).Return(sampleSpecies(), nil)
	svc := NewCatalogService(mRepo, new(repoMocks.MockDexRepository), nil, 0)

	_, err := svc.Get(ctx, 0)
	assert.ErrorIs(t, err, ErrSpeciesNotFound)
	_, err = svc.Get(ctx, 25)
	assert.ErrorIs(t, err, ErrSpeciesNotFound)

	sp, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Ivysaur", sp.Name)
}

func TestCatalogService_Evolution(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockSpeciesRepository)
	mRepo.On("All", ctx).Return(sampleSpecies(), nil)
	svc := NewCatalogService(mRepo, new(repoMocks.MockDexRepository), nil, 0)

	res, err := svc.Evolution(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Chain.Species.Number)
	require.Len(t, res.Stages, 3)
	assert.Equal(t, 2, res.Stages[2].Depth)

	_, err = svc.Evolution(ctx, 999)
	assert.ErrorIs(t, err, ErrSpeciesNotFound)
}

func TestCatalogService_Invalidate(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockSpeciesRepository)
	mCache := new(mockCatalogCache)
	mCache.On("GetSpecies", ctx).Return(nil, errors.New("miss"))
	mCache.On("SetSpecies", ctx, mock.Anything).Return(nil)
	mCache.On("InvalidateSpecies", ctx).Return(nil).Once()
	mRepo.On("All", ctx).Return(sampleSpecies(), nil)

	svc := NewCatalogService(mRepo, new(repoMocks.MockDexRepository), mCache, 0)
	_, err := svc.All(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate(ctx))
	_, err = svc.All(ctx)
	require.NoError(t, err)

	mRepo.AssertNumberOfCalls(t, "All", 2)
	mCache.AssertExpectations(t)
}
