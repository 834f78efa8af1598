//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".gitinsight.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should overlay the file on the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "style:\n  type: gitmoji\n  max_length: 50\nanalysis:\n  workers: 2\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.StyleGitmoji, settings.Style.Type)
		assert.Equal(t, 50, settings.Style.MaxLength)
		assert.Equal(t, 2, settings.Analysis.Workers)
		assert.Equal(t, "git", settings.Git.Binary)
		assert.Equal(t, "2.20.0", settings.Git.MinVersion)
	})

	t.Run("should expand environment variables in the git binary", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_GITINSIGHT_GIT", "/opt/git/bin/git")
		path := writeConfig(t, "git:\n  binary: ${TEST_GITINSIGHT_GIT}\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/opt/git/bin/git", settings.Git.Binary)
	})

	t.Run("should fall back to the default binary when the variable is unset", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "git:\n  binary: ${DEFINITELY_NOT_SET_VAR_12345}\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "git", settings.Git.Binary)
	})

	t.Run("should reject an unknown style", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "style:\n  type: haiku\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "style.type")
	})

	t.Run("should reject an invalid minimum git version", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "git:\n  min_version: two\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "git.min_version")
	})

	t.Run("should return an error for malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "style: [unclosed\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})

	t.Run("should return an error when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})
}

func TestSettingsReload(t *testing.T) {
	t.Parallel()

	t.Run("should replace the values behind the shared pointer", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		shared := settings
		path := writeConfig(t, "style:\n  type: simple\n")

		// when
		err := settings.Reload(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.StyleSimple, shared.Style.Type)
	})

	t.Run("should leave the settings untouched on error", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		path := writeConfig(t, "analysis:\n  workers: -1\n")

		// when
		err := settings.Reload(path)

		// then
		require.Error(t, err)
		assert.Equal(t, entities.DefaultSettings(), settings)
	})
}

func TestCanonicalVersion(t *testing.T) {
	t.Parallel()

	t.Run("should prefix bare versions with v", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.CanonicalVersion("2.39.2")

		// then
		assert.Equal(t, "v2.39.2", result)
	})

	t.Run("should keep already canonical versions", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.CanonicalVersion("v2.20.0")

		// then
		assert.Equal(t, "v2.20.0", result)
	})
}

func TestParseStyleType(t *testing.T) {
	t.Parallel()

	t.Run("should accept every known style", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"conventional", "gitmoji", "detailed", "simple"} {
			// when
			style, err := entities.ParseStyleType(raw)

			// then
			require.NoError(t, err)
			assert.Equal(t, entities.StyleType(raw), style)
		}
	})

	t.Run("should reject an unknown style", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseStyleType("haiku")

		// then
		require.Error(t, err)
	})
}
