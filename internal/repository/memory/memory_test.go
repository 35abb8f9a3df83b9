package memory

import (
	"context"
	"testing"
	"time"

	"github.com/AkshayV29/rssi-heatmap-tracker/internal/survey"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	repo := New(10)
	ctx := context.Background()

	session := survey.NewSession("warehouse A")
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.Equal(t, "warehouse A", got.Name)
}

func TestGetUnknownID(t *testing.T) {
	repo := New(10)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := New(10)
	ctx := context.Background()

	session := survey.NewSession("")
	require.NoError(t, repo.Create(ctx, session))
	require.NoError(t, repo.Delete(ctx, session.ID))

	_, err := repo.GetByID(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, session.ID), ErrNotFound)
}

func TestSurveyLimit(t *testing.T) {
	repo := New(2)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, survey.NewSession("a")))
	require.NoError(t, repo.Create(ctx, survey.NewSession("b")))

	err := repo.Create(ctx, survey.NewSession("c"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestListOrderedByCreation(t *testing.T) {
	repo := New(0)
	ctx := context.Background()

	first := survey.NewSession("first")
	second := survey.NewSession("second")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	sessions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "first", sessions[0].Name)
	assert.Equal(t, "second", sessions[1].Name)
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := New(0)
	ctx := context.Background()

	a := survey.NewSession("a")
	b := survey.NewSession("b")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	_, err := a.Store.Add(0, 0, -55)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Store.Count())
	assert.Equal(t, 0, b.Store.Count())
}
