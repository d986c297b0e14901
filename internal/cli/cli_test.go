// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynmat/internal/cli"
	"github.com/katalvlaran/dynmat/vector"
)

// run executes the root command with the given stdin and args.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestVectorCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"add", "1 2 3 4 5 6", []string{"vector", "add", "--size", "3"}, "5 7 9\n"},
		{"sub", "4 5 6\n1 2 3\n", []string{"vector", "sub", "-n", "3"}, "3 3 3\n"},
		{"dot int64", "1 2 3 4 5 6", []string{"--type", "int64", "vec", "dot", "-n", "3"}, "32\n"},
		{"add scalar", "1 2", []string{"vector", "add-scalar", "-n", "2", "--scalar", "0.5"}, "1.5 2.5\n"},
		{"sub scalar", "10 20", []string{"--type", "int64", "vector", "sub-scalar", "-n", "2", "--scalar", "3"}, "7 17\n"},
		{"mul scalar verb", "1 2", []string{"--verb", "%.2f", "vector", "mul-scalar", "-n", "2", "--scalar", "1.5"}, "1.50 3.00\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMatrixCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"add", "1 2\n3 4\n10 20\n30 40\n", []string{"matrix", "add", "--dim", "2"}, "11 22\n33 44\n"},
		{"sub", "10 20 30 40 1 2 3 4", []string{"mat", "sub", "-n", "2"}, "9 18\n27 36\n"},
		{"mul", "1 2 3 4 5 6 7 8", []string{"--type", "int64", "matrix", "mul", "-n", "2"}, "19 22\n43 50\n"},
		{"mul vec", "1 2 3 4 1 1", []string{"matrix", "mul-vec", "-n", "2"}, "3 7\n"},
		{"mul scalar", "1 2 3 4", []string{"matrix", "mul-scalar", "-n", "2", "--scalar", "2"}, "2 4\n6 8\n"},
		{"identity", "", []string{"--type", "int64", "matrix", "identity", "-n", "3"}, "1 0 0\n0 1 0\n0 0 1\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestInputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "operands.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n3 4\n"), 0o600))

	got, err := run(t, "ignored", "--input", path, "vector", "add", "-n", "2")
	require.NoError(t, err)
	require.Equal(t, "4 6\n", got)

	_, err = run(t, "", "-i", filepath.Join(t.TempDir(), "missing"), "vector", "add", "-n", "2")
	require.Error(t, err)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("short input", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "1 2 3 4", "vector", "add", "-n", "3")
		require.ErrorIs(t, err, vector.ErrMalformedInput)
	})
	t.Run("bad token", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "1 x", "--type", "int64", "vector", "dot", "-n", "1")
		require.ErrorIs(t, err, vector.ErrMalformedInput)
	})
	t.Run("invalid size", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "", "vector", "add", "-n", "0")
		require.ErrorIs(t, err, vector.ErrInvalidSize)
	})
	t.Run("invalid dim", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "", "matrix", "identity", "--dim=-1")
		require.ErrorIs(t, err, vector.ErrInvalidSize)
	})
	t.Run("missing size", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "1 2", "vector", "add")
		require.Error(t, err)
	})
	t.Run("missing scalar", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "1 2", "vector", "mul-scalar", "-n", "2")
		require.Error(t, err)
	})
	t.Run("bad scalar", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "1 2", "--type", "int64", "vector", "mul-scalar", "-n", "2", "--scalar", "two")
		require.ErrorContains(t, err, "parse --scalar")
	})
	t.Run("bad type", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "1", "--type", "int8", "vector", "add", "-n", "1")
		require.ErrorContains(t, err, "invalid --type")
	})
	t.Run("bad verb", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "1", "--verb", "d", "vector", "add", "-n", "1")
		require.ErrorContains(t, err, "invalid --verb")
	})
	t.Run("bad log level", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "1", "--log-level", "loud", "vector", "add", "-n", "1")
		require.ErrorContains(t, err, "invalid --log-level")
	})
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(strings.NewReader("1 2"), &out, &errOut)
	cmd.SetArgs([]string{"--log-level", "debug", "vector", "add-scalar", "-n", "2", "--scalar", "1"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "2 3\n", out.String())
	require.Contains(t, errOut.String(), "op=add-scalar")
	require.Contains(t, errOut.String(), "size=2")
}

func TestPartialTokenRejected(t *testing.T) {
	t.Parallel()

	out, err := run(t, "1 2.5 3 4", "--type", "int64", "vector", "add", "-n", "2")
	require.ErrorIs(t, err, vector.ErrMalformedInput)
	require.Empty(t, out)
}
