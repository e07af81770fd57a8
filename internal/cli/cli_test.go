package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrc/primeshamir"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestSplitCombine(t *testing.T) {
	out, _, err := run(t, "", "split", "--secret", "1234", "-n", "5", "-k", "3")
	require.NoError(t, err)

	shares := lines(out)
	require.Len(t, shares, 5)

	out, _, err = run(t, "", "combine", shares[0], shares[2], shares[4])
	require.NoError(t, err)
	assert.Equal(t, "1234\n", out)

	out, _, err = run(t, strings.Join(shares[1:4], "\n"), "combine")
	require.NoError(t, err)
	assert.Equal(t, "1234\n", out)
}

func TestCombine_stdin(t *testing.T) {
	out, _, err := run(t, "1:1494\n\n3:2578\n  2:1942  \n", "combine")
	require.NoError(t, err)
	assert.Equal(t, "1234\n", out)
}

func TestSplit_json(t *testing.T) {
	out, _, err := run(t, "", "--modulus", "65537", "-o", "json",
		"split", "--secret", "1234", "-n", "5", "-k", "3")
	require.NoError(t, err)

	var doc struct {
		Modulus   uint64              `json:"modulus"`
		Threshold int                 `json:"threshold"`
		Shares    []primeshamir.Share `json:"shares"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, uint64(65537), doc.Modulus)
	assert.Equal(t, 3, doc.Threshold)
	require.Len(t, doc.Shares, 5)

	f, err := primeshamir.NewField(65537)
	require.NoError(t, err)
	secret, err := (&primeshamir.Dealer{F: f}).Combine(doc.Shares[2:])
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), secret)
}

func TestCombine_json(t *testing.T) {
	out, _, err := run(t, "", "-o", "json", "combine", "1:1494", "2:1942", "3:2578")
	require.NoError(t, err)
	assert.JSONEq(t, `{"secret": 1234}`, out)
}

func TestSplit_seed(t *testing.T) {
	args := []string{"split", "--secret", "42", "-n", "4", "-k", "2", "--seed", "demo"}

	first, stderr, err := run(t, "", args...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "seeded randomness")

	second, _, err := run(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSplit_verbose(t *testing.T) {
	_, stderr, err := run(t, "", "-v", "split", "--secret", "42", "-n", "4", "-k", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "splitting secret")
	assert.NotContains(t, stderr, "42\n")
}

func TestSplit_errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "threshold above n",
			args: []string{"split", "--secret", "1", "-n", "3", "-k", "5"},
			want: primeshamir.ErrInvalidThreshold,
		},
		{
			name: "zero threshold",
			args: []string{"split", "--secret", "1", "-n", "3", "-k", "0"},
			want: primeshamir.ErrInvalidThreshold,
		},
		{
			name: "secret out of range",
			args: []string{"--modulus", "65537", "split", "--secret", "65537", "-n", "5", "-k", "3"},
			want: primeshamir.ErrSecretOutOfRange,
		},
		{
			name: "composite modulus",
			args: []string{"--modulus", "65535", "split", "--secret", "1", "-n", "5", "-k", "3"},
			want: primeshamir.ErrInvalidModulus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSplit_missingFlag(t *testing.T) {
	_, _, err := run(t, "", "split", "--secret", "1", "-n", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threshold")
}

func TestCombine_errors(t *testing.T) {
	_, _, err := run(t, "", "combine", "2:10", "2:11", "3:12")
	require.ErrorIs(t, err, primeshamir.ErrNotInvertible)

	_, _, err = run(t, "", "combine", "2:10", "nonsense")
	require.ErrorIs(t, err, primeshamir.ErrMalformedShare)

	_, _, err = run(t, "", "combine")
	require.ErrorIs(t, err, primeshamir.ErrNoShares)
}

func TestOutputFormat_unknown(t *testing.T) {
	_, _, err := run(t, "", "-o", "xml", "combine", "1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestConfig_env(t *testing.T) {
	t.Setenv("PRIMESHAMIR_MODULUS", "7")

	_, _, err := run(t, "", "split", "--secret", "1", "-n", "7", "-k", "2")
	require.ErrorIs(t, err, primeshamir.ErrInvalidShareCount)

	// flags take precedence over the environment
	_, _, err = run(t, "", "--modulus", "65537", "split", "--secret", "1", "-n", "7", "-k", "2")
	require.NoError(t, err)
}

func TestConfig_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primeshamir.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modulus: 65537\noutput: json\n"), 0o600))

	out, _, err := run(t, "", "--config", path, "combine", "1:65536")
	require.NoError(t, err)
	assert.JSONEq(t, `{"secret": 65536}`, out)

	_, _, err = run(t, "", "--config", path, "split", "--secret", "65537", "-n", "2", "-k", "2")
	require.ErrorIs(t, err, primeshamir.ErrSecretOutOfRange)

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "combine", "1:1")
	require.Error(t, err)
}
