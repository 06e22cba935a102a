package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerManagerSaveWithoutSecondaryWritesOnlyPrimary(t *testing.T) {
	js, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	m := &CareerManager{Store: js}

	w := sampleState(t)
	require.NoError(t, m.Save(context.Background(), "career-1", w))

	_, err = js.Load(context.Background(), "career-1")
	require.NoError(t, err)
}

func TestCareerManagerSaveWithSecondaryWritesBoth(t *testing.T) {
	primary, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	secondary, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	m := &CareerManager{Store: primary, Secondary: secondary}

	w := sampleState(t)
	require.NoError(t, m.Save(context.Background(), "career-1", w))

	_, err = primary.Load(context.Background(), "career-1")
	require.NoError(t, err)
	_, err = secondary.Load(context.Background(), "career-1")
	require.NoError(t, err)
}

func TestCareerManagerCareersDelegatesToStoreList(t *testing.T) {
	js, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	m := &CareerManager{Store: js}
	ctx := context.Background()

	require.NoError(t, js.Save(ctx, "one", sampleState(t)))
	require.NoError(t, js.Save(ctx, "two", sampleState(t)))

	ids, err := m.Careers(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, ids)
}
