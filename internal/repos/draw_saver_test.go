package repos

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/spinwheel/internal/models"
)

type memStore struct {
	saved []models.Draw
}

func (m *memStore) Save(draw *models.Draw) error {
	m.saved = append(m.saved, *draw)
	return nil
}

type memCounter struct {
	val uint
	err error
}

func (c *memCounter) Next() (uint, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.val++
	return c.val, nil
}

func TestDrawSaver_NumbersDraws(t *testing.T) {
	store := &memStore{}
	saver := newDrawSaver(store, &memCounter{}, "lounge")

	require.NoError(t, saver.Save(&models.Draw{Table: "3", Prize: "tea"}))
	require.NoError(t, saver.Save(&models.Draw{Table: "1", Prize: "coffee"}))

	require.Len(t, store.saved, 2)
	assert.Equal(t, "lounge", store.saved[0].Name)
	assert.Equal(t, uint(1), store.saved[0].Number)
	assert.Equal(t, uint(2), store.saved[1].Number)
	assert.Equal(t, "coffee", store.saved[1].Prize)
}

func TestDrawSaver_CounterError(t *testing.T) {
	store := &memStore{}
	boom := errors.New("boom")
	saver := newDrawSaver(store, &memCounter{err: boom}, "lounge")

	err := saver.Save(&models.Draw{})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, store.saved)
}

func TestNopSaver(t *testing.T) {
	assert.NoError(t, NopSaver{}.Save(&models.Draw{}))
}
