package fs_test

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/avoronin/trendscout"
	"github.com/avoronin/trendscout/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_Append(t *testing.T) {
	t.Parallel()

	t.Run("writes one JSON line per document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "corpus.jsonl")
		log := fs.NewAuditLog(path)
		ctx := context.Background()

		for _, title := range []string{"First", "Second"} {
			doc := &trendscout.Document{
				URL:         "https://a.example/p",
				Title:       title,
				PublishedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			}
			require.NoError(t, log.Append(ctx, doc))
		}

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		var lines int
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			var doc trendscout.Document
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &doc))
			lines++
		}
		require.NoError(t, scanner.Err())
		assert.Equal(t, 2, lines)
	})

	t.Run("creates the file on first append", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "corpus.jsonl")
		log := fs.NewAuditLog(path)

		doc := &trendscout.Document{
			URL:         "https://a.example/p",
			Title:       "First",
			PublishedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, log.Append(context.Background(), doc))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})
}
