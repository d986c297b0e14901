package matrix_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

func TestWrite_LinePerRow(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}})
	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))
	require.Equal(t, "1 2\n3 4\n", buf.String())
	require.Equal(t, "1 2\n3 4\n", m.String())
}

func TestWrite_ForwardsOptions(t *testing.T) {
	m := mustRows(t, [][]float64{{0.5, 1}, {2, 3.75}})
	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, vector.WithVerb("%.1f"), vector.WithSeparator(",")))
	require.Equal(t, "0.5,1.0\n2.0,3.8\n", buf.String())
}

func TestRead_RowsSequentially(t *testing.T) {
	m := mustNew[int](t, 3)
	require.NoError(t, m.Read(strings.NewReader("1 2 3\n4 5 6\n7 8 9\n")))
	if diff := cmp.Diff([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, m.Values()); diff != "" {
		t.Fatalf("Read mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_IgnoresLineLayout(t *testing.T) {
	m := mustNew[int](t, 2)
	require.NoError(t, m.Read(strings.NewReader("1 2 3\n4")))
	require.Empty(t, cmp.Diff([][]int{{1, 2}, {3, 4}}, m.Values()))
}

// plainReader hides the RuneScanner implementation of its source.
type plainReader struct{ r *strings.Reader }

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

func TestRead_NonScannerReader(t *testing.T) {
	m := mustNew[float64](t, 2)
	require.NoError(t, m.Read(plainReader{strings.NewReader("1.5 2.5\n3.5 4.5\n")}))
	require.Empty(t, cmp.Diff([][]float64{{1.5, 2.5}, {3.5, 4.5}}, m.Values()))
}

func TestRead_FailureLeavesMatrixUnchanged(t *testing.T) {
	m := mustRows(t, [][]int{{9, 9}, {9, 9}})
	err := m.Read(strings.NewReader("1 2\n3"))
	require.ErrorIs(t, err, matrix.ErrMalformedInput)
	require.Equal(t, [][]int{{9, 9}, {9, 9}}, m.Values())
}

func TestRoundTrip(t *testing.T) {
	m := mustNew[float64](t, 4)
	fillRand(t, m, 5)
	back := mustNew[float64](t, 4)
	require.NoError(t, back.Read(strings.NewReader(m.String())))
	require.True(t, m.Equal(back))
}

func TestRead_RowHandleSeesNewValues(t *testing.T) {
	m := mustNew[int](t, 2)
	row, err := m.Row(0)
	require.NoError(t, err)
	p, err := row.Ref(0)
	require.NoError(t, err)

	require.NoError(t, m.Read(strings.NewReader("1 2 3 4")))
	require.Equal(t, []int{1, 2}, row.Values())
	require.Equal(t, 1, *p)

	require.NoError(t, row.Set(1, 99))
	got, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 99, got)
}

func TestRead_RejectsPartialTokens(t *testing.T) {
	m := mustRows(t, [][]int{{9, 9}, {9, 9}})
	err := m.Read(strings.NewReader("1 2\n3 4.5"))
	require.ErrorIs(t, err, matrix.ErrMalformedInput)
	require.Equal(t, [][]int{{9, 9}, {9, 9}}, m.Values())
}
