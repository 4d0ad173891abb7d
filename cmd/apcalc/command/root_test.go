package command_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ignisf/bigdecimal/cmd/apcalc/command"
)

func run(args ...string) (stdout, stderr string, err error) {
	cmd := command.New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"eval", "1 2 + 3 *", "2 sqrt"}, "9\n1.4142135623730951\n"},
		{[]string{"eval", "--prec", "200", "--format", "f", "--digits", "50", "2 sqrt"},
			"1.41421356237309504880168872420969807856967187537695\n"},
		{[]string{"eval", "--prec", "8", "1 3 /"}, "0.334\n"},
		{[]string{"eval", "--base", "16", "ff 1 +"}, "256\n"},
		{[]string{"fmt", "--prec", "24", "0.1"}, "0.1\n"},
		{[]string{"fmt", "--prec", "24", "--format", "e", "--digits", "10", "0.1"}, "1.0000000149e-01\n"},
		{[]string{"fmt", "--base", "16", "ff.8", "0x1p-1"}, "255.5\n0.5\n"},
		{[]string{"fmt", "--format", "f", "--digits", "3", "--", "nan", "-inf", "-2"}, "NaN\n-Inf\n-2.000\n"},
	} {
		out, _, err := run(tc.args...)
		require.NoError(t, err, "%q", tc.args)
		require.Equal(t, tc.want, out, "%q", tc.args)
	}
}

func TestCommandErrors(t *testing.T) {
	for _, tc := range []struct {
		args []string
		err  string
	}{
		{[]string{"eval", "1 +"}, "stack underflow"},
		{[]string{"eval", "1 0 /"}, "division by zero"},
		{[]string{"eval"}, "requires at least 1 arg"},
		{[]string{"eval", "--prec", "0", "1"}, "invalid precision 0"},
		{[]string{"eval", "--format", "x", "1"}, `invalid format "x"`},
		{[]string{"fmt", "1.2.3"}, `failed to parse "1.2.3"`},
		{[]string{"fmt", "--base", "99", "1"}, "invalid radix 99"},
		{[]string{"fmt", "--config", "/nonexistent/apcalc.yaml", "1"}, "failed to read config"},
	} {
		_, _, err := run(tc.args...)
		require.Error(t, err, "%q", tc.args)
		require.ErrorContains(t, err, tc.err, "%q", tc.args)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("APCALC_PREC", "8")
	t.Setenv("APCALC_NO_COLOR", "true")
	out, _, err := run("eval", "1 3 /")
	require.NoError(t, err)
	require.Equal(t, "0.334\n", out)

	// flags win over the environment
	out, _, err = run("eval", "--prec", "53", "1 3 /")
	require.NoError(t, err)
	require.Equal(t, "0.3333333333333333\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: e\ndigits: 3\n"), 0o600))

	out, _, err := run("eval", "--config", path, "1 3 /")
	require.NoError(t, err)
	require.Equal(t, "3.333e-01\n", out)

	out, _, err = run("eval", "--config", path, "--digits", "1", "1 3 /")
	require.NoError(t, err)
	require.Equal(t, "3.3e-01\n", out)
}

func TestVerbose(t *testing.T) {
	out, errOut, err := run("eval", "-v", "--no-color", "1 2 +")
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
	require.Contains(t, errOut, "configuration loaded")
	require.Contains(t, errOut, "apply")
	require.Contains(t, errOut, "evaluated")

	_, errOut, err = run("eval", "--no-color", "1 2 +")
	require.NoError(t, err)
	require.NotContains(t, errOut, "evaluated")
}
