package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnvFromFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "# comment line\n" +
		"\n" +
		"VIDEOTUBE_TEST_PLAIN=plain-value\n" +
		"VIDEOTUBE_TEST_QUOTED=\"quoted value\"\n" +
		"VIDEOTUBE_TEST_PRESET=from-file\n" +
		"not a pair\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("VIDEOTUBE_TEST_PRESET", "from-env")
	t.Cleanup(func() {
		os.Unsetenv("VIDEOTUBE_TEST_PLAIN")
		os.Unsetenv("VIDEOTUBE_TEST_QUOTED")
	})

	LoadEnvFromFile(filepath.Join(dir, "does-not-exist.env"), envFile)

	require.Equal(t, "plain-value", os.Getenv("VIDEOTUBE_TEST_PLAIN"))
	require.Equal(t, "quoted value", os.Getenv("VIDEOTUBE_TEST_QUOTED"))
	require.Equal(t, "from-env", os.Getenv("VIDEOTUBE_TEST_PRESET"), "existing env vars win over file values")
}
