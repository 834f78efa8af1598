//go:build unit

package parser_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
	"github.com/rios0rios0/gitinsight/internal/parser"
)

const (
	shaOne = "1111111111111111111111111111111111111111"
	shaTwo = "2222222222222222222222222222222222222222"
)

func blameBlock(sha string, finalLine int, author, authorTime, content string) string {
	block := sha + " 1 " + strconv.Itoa(finalLine) + " 1\n"
	if author != "" {
		block += "author " + author + "\n" + "author-mail <" + author + "@example.com>\n"
	}
	if authorTime != "" {
		block += "author-time " + authorTime + "\n" + "author-tz +0000\n"
	}
	block += "summary some change\nfilename main.go\n\t" + content + "\n"
	return block
}

func TestParseBlame(t *testing.T) {
	t.Parallel()

	t.Run("should emit one line per complete block in emission order", func(t *testing.T) {
		t.Parallel()

		// given
		raw := blameBlock(shaOne, 1, "Jane", "1700000000", "package main") +
			blameBlock(shaTwo, 2, "John", "1700000100", "")

		// when
		lines := parser.ParseBlame(raw)

		// then
		require.Len(t, lines, 2)
		assert.Equal(t, entities.BlameLine{
			Hash:    shaOne,
			Author:  "Jane",
			Date:    time.Unix(1700000000, 0).UTC(),
			Number:  1,
			Content: "package main",
		}, lines[0])
		assert.Equal(t, shaTwo, lines[1].Hash)
		assert.Equal(t, 2, lines[1].Number)
		assert.Empty(t, lines[1].Content)
	})

	t.Run("should accept abbreviated hashes with or without line numbers", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "abc1234 1 1 1\nauthor Ada\nauthor-time 1700000000\n\tfirst\n" +
			"def5678\nauthor Linus\nauthor-time 1700000100\n\tsecond\n"

		// when
		lines := parser.ParseBlame(raw)

		// then
		require.Len(t, lines, 2)
		assert.Equal(t, "abc1234", lines[0].Hash)
		assert.Equal(t, "first", lines[0].Content)
		assert.Equal(t, "def5678", lines[1].Hash)
		assert.Equal(t, "Linus", lines[1].Author)
		assert.Equal(t, 2, lines[1].Number)
	})

	t.Run("should drop a block missing its author", func(t *testing.T) {
		t.Parallel()

		// given
		raw := blameBlock(shaOne, 1, "", "1700000000", "dropped") +
			blameBlock(shaTwo, 2, "John", "1700000100", "kept")

		// when
		lines := parser.ParseBlame(raw)

		// then
		require.Len(t, lines, 1)
		assert.Equal(t, "kept", lines[0].Content)
		assert.Equal(t, 1, lines[0].Number)
	})

	t.Run("should drop a block missing its author time", func(t *testing.T) {
		t.Parallel()

		// given
		raw := blameBlock(shaOne, 1, "Jane", "", "dropped")

		// when
		lines := parser.ParseBlame(raw)

		// then
		assert.Empty(t, lines)
	})

	t.Run("should not carry metadata from a dropped block into the next one", func(t *testing.T) {
		t.Parallel()

		// given
		raw := blameBlock(shaOne, 1, "Jane", "1700000000", "first") +
			shaTwo + " 2 2\n\trepeated commit without metadata\n"

		// when
		lines := parser.ParseBlame(raw)

		// then
		require.Len(t, lines, 1)
		assert.Equal(t, "first", lines[0].Content)
	})

	t.Run("should keep tabs inside the content", func(t *testing.T) {
		t.Parallel()

		// given
		raw := blameBlock(shaOne, 1, "Jane", "1700000000", "\tindented")

		// when
		lines := parser.ParseBlame(raw)

		// then
		require.Len(t, lines, 1)
		assert.Equal(t, "\tindented", lines[0].Content)
	})

	t.Run("should return nothing for empty input", func(t *testing.T) {
		t.Parallel()

		// when
		lines := parser.ParseBlame("")

		// then
		assert.Empty(t, lines)
	})
}
