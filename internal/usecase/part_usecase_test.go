package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_plataformas/internal/domain/entities"
	mock_interfaces "gestao_plataformas/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPartUseCase_AddPart(t *testing.T) {
	t.Run("generates id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mock_interfaces.NewMockIStorageBackend(ctrl)
		state := newTestState(entities.Database{})
		uc := NewPartUseCase(state, backend, &seqIDs{}, nopLogger)

		backend.EXPECT().Add(gomock.Any(), entities.CollectionParts, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Collection, r entities.Record) (entities.Record, error) {
				return r, nil
			},
		)

		got, err := uc.AddPart(context.Background(), entities.Part{Name: "Cabo de aço", Stock: 5, MinStock: 2})
		require.NoError(t, err)
		assert.Equal(t, "PT-1", got.ID)
		assert.Equal(t, []entities.Part{got}, state.Snapshot().Parts)
	})

	t.Run("keeps a caller supplied id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mock_interfaces.NewMockIStorageBackend(ctrl)
		uc := NewPartUseCase(newTestState(entities.Database{}), backend, &seqIDs{}, nopLogger)

		backend.EXPECT().Add(gomock.Any(), entities.CollectionParts, entities.Part{ID: "PT9", Name: "Sensor"}).
			Return(entities.Part{ID: "PT9", Name: "Sensor"}, nil)

		got, err := uc.AddPart(context.Background(), entities.Part{ID: "PT9", Name: "Sensor"})
		require.NoError(t, err)
		assert.Equal(t, "PT9", got.ID)
	})

	t.Run("rolls back on backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mock_interfaces.NewMockIStorageBackend(ctrl)
		state := newTestState(entities.Database{Parts: inventory()})
		uc := NewPartUseCase(state, backend, &seqIDs{}, nopLogger)

		backend.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled"))

		_, err := uc.AddPart(context.Background(), entities.Part{Name: "Sensor"})
		require.Error(t, err)
		assert.Equal(t, inventory(), state.Snapshot().Parts)
	})
}

func TestPartUseCase_UpdatePart(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewPartUseCase(newTestState(entities.Database{}), nil, nil, nopLogger)
		_, err := uc.UpdatePart(context.Background(), entities.Part{})
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("manual stock correction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mock_interfaces.NewMockIStorageBackend(ctrl)
		state := newTestState(entities.Database{Parts: inventory()})
		uc := NewPartUseCase(state, backend, &seqIDs{}, nopLogger)

		corrected := inventory()[1]
		corrected.Stock = 12
		backend.EXPECT().Update(gomock.Any(), entities.CollectionParts, "PT2", corrected).Return(nil)

		_, err := uc.UpdatePart(context.Background(), corrected)
		require.NoError(t, err)
		assert.Equal(t, 12, state.Snapshot().Parts[1].Stock)
	})

	t.Run("rolls back on backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mock_interfaces.NewMockIStorageBackend(ctrl)
		state := newTestState(entities.Database{Parts: inventory()})
		uc := NewPartUseCase(state, backend, &seqIDs{}, nopLogger)

		corrected := inventory()[0]
		corrected.Stock = 0
		backend.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("offline"))

		_, err := uc.UpdatePart(context.Background(), corrected)
		require.Error(t, err)
		assert.Equal(t, inventory(), state.Snapshot().Parts)
	})
}

func TestPartUseCase_ListParts(t *testing.T) {
	uc := NewPartUseCase(newTestState(entities.Database{Parts: inventory()}), nil, nil, nopLogger)

	assert.Len(t, uc.ListParts(context.Background(), false), 3)

	low := uc.ListParts(context.Background(), true)
	require.Len(t, low, 1)
	assert.Equal(t, "PT2", low[0].ID)
}
