package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileJournal_AppendAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	writerJournal := NewFileJournal(path)
	require.NoError(t, writerJournal.Append("lelelele", "https://ya.ru"))
	require.NoError(t, writerJournal.Append("lolololo", "https://vk.com"))
	require.NoError(t, writerJournal.Close())

	readerJournal := NewFileJournal(path)
	first, err := readerJournal.ReadNextLine()
	require.NoError(t, err)
	assert.Equal(t, int32(1), first.UUID)
	assert.Equal(t, "lelelele", first.Key)
	assert.Equal(t, "https://ya.ru", first.Value)

	second, err := readerJournal.ReadNextLine()
	require.NoError(t, err)
	assert.Equal(t, int32(2), second.UUID)
	assert.Equal(t, "lolololo", second.Key)

	_, err = readerJournal.ReadNextLine()
	assert.ErrorIs(t, err, ErrFileReadCompletely)
}

func TestFileJournal_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	journal := NewFileJournal(path)
	_, err := journal.ReadNextLine()
	assert.ErrorIs(t, err, ErrFileReadCompletely)
	// A file must exist afterwards, the replay creates it.
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestMemoryKV_JournalReplay(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	first, err := NewMemoryKV(NewFileJournal(path))
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "lelelele", "https://ya.ru"))
	created, err := first.PutIfAbsent(ctx, "lolololo", "https://vk.com")
	require.NoError(t, err)
	require.True(t, created)
	require.NoError(t, first.Close())

	second, err := NewMemoryKV(NewFileJournal(path))
	require.NoError(t, err)
	got, err := second.Get(ctx, "lelelele")
	require.NoError(t, err)
	assert.Equal(t, "https://ya.ru", got)
	got, err = second.Get(ctx, "lolololo")
	require.NoError(t, err)
	assert.Equal(t, "https://vk.com", got)
	require.NoError(t, second.Close())
}
