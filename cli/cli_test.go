package cli

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/mkohlhaas/b58key/keyerror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI() (*CommandLine, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &CommandLine{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRunNoArgs(t *testing.T) {
	cli, stdout, _ := newTestCLI()
	require.NoError(t, cli.Run(nil))
	assert.Regexp(t, regexp.MustCompile(`^Base58 Encoded Key: [1-9A-HJ-NP-Za-km-z]+\n$`), stdout.String())
	assert.Equal(t, "Base58 Encoded Key: 4K4ph5wQZQBptmHcfcix6ohyxAdnGAzpHbMbm8wz94h8awXhZihc7dZS4bGJeMuSKRBFUCYWHBZuUTCgQKRkCJkW\n", stdout.String())
}

func TestRunEncode(t *testing.T) {
	cli, stdout, _ := newTestCLI()
	require.NoError(t, cli.Run([]string{"encode", "-bytes", "0, 0,0 0"}))
	assert.Equal(t, "Base58 Encoded Key: 1111\n", stdout.String())

	cli, stdout, _ = newTestCLI()
	require.NoError(t, cli.Run([]string{"-v", "encode"}))
	assert.Contains(t, stdout.String(), "4K4ph5wQ")
}

func TestRunEncodeInvalidInput(t *testing.T) {
	cli, stdout, _ := newTestCLI()
	err := cli.Run([]string{"encode", "-bytes", "1,2,256"})
	assert.True(t, errors.Is(err, keyerror.ErrInvalidInput))
	assert.Empty(t, stdout.String())

	_, err = parseByteList("1,x")
	assert.Error(t, err)
}

func TestRunDecode(t *testing.T) {
	cli, stdout, _ := newTestCLI()
	require.NoError(t, cli.Run([]string{"decode", "-key", "112"}))
	assert.Equal(t, "Key Bytes: [0 0 1]\n", stdout.String())

	cli, _, _ = newTestCLI()
	assert.Error(t, cli.Run([]string{"decode", "-key", "0OIl"}))
	assert.True(t, errors.Is(cli.Run([]string{"decode"}), errUsage))
}

func TestRunPubkey(t *testing.T) {
	cli, stdout, _ := newTestCLI()
	require.NoError(t, cli.Run([]string{"pubkey"}))
	assert.Equal(t, "Public Key: GvZ4adx6CNuLFuhLeSAvohcejrcLpX88mbXA12ShLFQa\n", stdout.String())

	cli, _, _ = newTestCLI()
	err := cli.Run([]string{"pubkey", "-key", "112"})
	assert.True(t, errors.Is(err, keyerror.ErrInvalidKeyLength))
}

func TestRunUsage(t *testing.T) {
	cli, stdout, stderr := newTestCLI()
	err := cli.Run([]string{"frobnicate"})
	assert.True(t, errors.Is(err, errUsage))
	assert.Contains(t, stderr.String(), "Usage:")
	assert.Empty(t, stdout.String())

	cli, stdout, _ = newTestCLI()
	assert.NoError(t, cli.Run([]string{"-h"}))
	assert.Empty(t, stdout.String())
}
