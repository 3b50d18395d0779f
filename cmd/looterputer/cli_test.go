package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domje/Arc-Looterputer/internal/config"
	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/handler"
	"github.com/Domje/Arc-Looterputer/internal/search"
)

// execute runs the CLI against the embedded sample catalog and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvItemsPath, "")
	t.Setenv(config.EnvHideoutPath, "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSearchCmd(t *testing.T) {
	t.Run("name match", func(t *testing.T) {
		out, err := execute(t, "search", "gear")
		require.NoError(t, err)
		assert.Contains(t, out, "rusted_gear")
		assert.Contains(t, out, "Rusted Gear")
	})

	t.Run("follows recycle chains", func(t *testing.T) {
		out, err := execute(t, "search", "battery")
		require.NoError(t, err)
		assert.Contains(t, out, "broken_flashlight")
		assert.Contains(t, out, "arc_powercell")
		assert.Contains(t, out, "queen_reactor")
	})

	t.Run("display language", func(t *testing.T) {
		out, err := execute(t, "search", "metal parts", "--lang", "de")
		require.NoError(t, err)
		assert.Contains(t, out, "Metallteile")
	})

	t.Run("no results", func(t *testing.T) {
		out, err := execute(t, "search", "zzqqxx")
		assert.ErrorIs(t, err, errNoResults)
		assert.Contains(t, out, "zzqqxx")
	})

	t.Run("json no results", func(t *testing.T) {
		out, err := execute(t, "search", "zzqqxx", "--json")
		assert.ErrorIs(t, err, errNoResults)

		var resp handler.ItemSearchResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Zero(t, resp.Count)
		assert.Empty(t, resp.Items)
		assert.Equal(t, `No items match "zzqqxx".`, resp.Summary)
	})

	t.Run("rarity match", func(t *testing.T) {
		out, err := execute(t, "search", "legendary", "--json")
		require.NoError(t, err)

		var resp handler.ItemSearchResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, string(search.ModeText), resp.Mode)
		assert.NotZero(t, resp.Count)
	})

	t.Run("json keyword", func(t *testing.T) {
		out, err := execute(t, "search", "craftable", "--json")
		require.NoError(t, err)

		var resp handler.ItemSearchResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, string(search.ModeKeyword), resp.Mode)
		assert.Equal(t, resp.Count, len(resp.Items))
		for _, item := range resp.Items {
			assert.True(t, item.Craftable, item.ID)
		}
	})

	t.Run("limit", func(t *testing.T) {
		out, err := execute(t, "search", "--json", "-n", "2")
		require.NoError(t, err)

		var resp handler.ItemSearchResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Len(t, resp.Items, 2)
		assert.Greater(t, resp.Count, 2)
	})
}

func TestKeywordsCmd(t *testing.T) {
	out, err := execute(t, "keywords")
	require.NoError(t, err)
	for _, k := range search.Keywords() {
		assert.Contains(t, out, k)
	}
}

func TestItemCmd(t *testing.T) {
	out, err := execute(t, "item", "rusted_gear")
	require.NoError(t, err)
	assert.Contains(t, out, "Rusted Gear (rusted_gear)")
	assert.Contains(t, out, "Recycles into:")
	assert.Contains(t, out, "4x Metal Parts (metal_parts)")

	_, err = execute(t, "item", "nope")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = execute(t, "item")
	assert.Error(t, err)
}

func TestHideoutCmd(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		out, err := execute(t, "hideout")
		require.NoError(t, err)
		assert.Contains(t, out, "gunsmith")
		assert.Contains(t, out, "Always available")
	})

	t.Run("always available station", func(t *testing.T) {
		out, err := execute(t, "hideout", "workbench", "--lang", "de")
		require.NoError(t, err)
		assert.Contains(t, out, "Immer verfügbar")
	})

	t.Run("level", func(t *testing.T) {
		out, err := execute(t, "hideout", "gunsmith", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Level 1")
		assert.Contains(t, out, "20x Metal Parts (metal_parts)")
		assert.Contains(t, out, "1000 coins")
		assert.NotContains(t, out, "Level 2")
	})

	t.Run("free text requirement", func(t *testing.T) {
		out, err := execute(t, "hideout", "gunsmith")
		require.NoError(t, err)
		assert.Contains(t, out, "Level 3")
		assert.Contains(t, out, "Trigger Discipline")
	})

	t.Run("json level", func(t *testing.T) {
		out, err := execute(t, "hideout", "gunsmith", "1", "--json")
		require.NoError(t, err)

		var level handler.LevelView
		require.NoError(t, json.Unmarshal([]byte(out), &level))
		assert.Equal(t, 1, level.Level)
		assert.Equal(t, 1000, level.Coins)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := execute(t, "hideout", "gunsmith", "9")
		assert.ErrorIs(t, err, domain.ErrLevelNotFound)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := execute(t, "hideout", "gunsmith", "two")
		assert.ErrorContains(t, err, "invalid level")
	})
}

func TestValidateCmd(t *testing.T) {
	t.Run("sample data", func(t *testing.T) {
		out, err := execute(t, "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "unknown id: queen_reactor.recyclesInto -> missing_item")
		assert.Contains(t, out, "OK")
	})

	t.Run("strict fails on dangling references", func(t *testing.T) {
		_, err := execute(t, "validate", "--strict")
		assert.ErrorIs(t, err, errCatalogInvalid)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		items := writeFile(t, "items.json", `[{"id":"a","name":"A"},{"id":"a","name":"B"}]`)
		out, err := execute(t, "validate", "--items", items)
		assert.ErrorIs(t, err, errCatalogInvalid)
		assert.Contains(t, out, "duplicate id: a")
	})

	t.Run("schema violation", func(t *testing.T) {
		items := writeFile(t, "items.json", `[{"id":"a"}]`)
		out, err := execute(t, "validate", "--items", items, "--json")
		assert.ErrorIs(t, err, errCatalogInvalid)

		var report validateOutput
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.False(t, report.Valid)
		assert.Len(t, report.SchemaErrors, 1)
	})
}
