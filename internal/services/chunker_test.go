package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextKeepsShortTextWhole(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("First paragraph.\n\nSecond paragraph.", 1000, 200)

	require.Len(t, chunks, 1)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", chunks[0])
}

func TestChunkTextSplitsLongText(t *testing.T) {
	chunker := NewTextChunker()

	var paragraphs []string
	for i := 0; i < 20; i++ {
		paragraphs = append(paragraphs, strings.Repeat("word ", 30))
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := chunker.ChunkText(text, 300, 50)

	assert.Greater(t, len(chunks), 1)
}

func TestChunkTextEmptyInput(t *testing.T) {
	chunker := NewTextChunker()

	assert.Empty(t, chunker.ChunkText("", 1000, 200))
	assert.Empty(t, chunker.ChunkText("\n\n\n\n", 1000, 200))
}
