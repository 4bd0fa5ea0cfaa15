package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mkohlhaas/b58key/logging"
	"github.com/mkohlhaas/b58key/wallet"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

type CommandLine struct {
	Stdout io.Writer
	Stderr io.Writer
	log    *zap.Logger
}

func New() *CommandLine {
	return &CommandLine{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (cli *CommandLine) printUsage() {
	fmt.Fprintln(cli.Stderr, "Usage:")
	fmt.Fprintln(cli.Stderr, " (no command) - print the built-in key in Base58")
	fmt.Fprintln(cli.Stderr, " encode -bytes BYTES - print BYTES (comma or space separated 0-255) in Base58, built-in key if empty")
	fmt.Fprintln(cli.Stderr, " decode -key KEY - print the bytes of a Base58 string")
	fmt.Fprintln(cli.Stderr, " pubkey -key KEY - print the public key of a Base58 secret key, built-in key if empty")
	fmt.Fprintln(cli.Stderr, " -v before the command enables debug logging on stderr")
}

// Reporter: one line, label and encoded key.
func (cli *CommandLine) encode(array []int) error {
	encoded, err := wallet.EncodeKey(array)
	if err != nil {
		return err
	}
	cli.log.Debug("encoded key", zap.Int("bytes", len(array)), zap.Int("chars", len(encoded)))
	_, err = fmt.Fprintln(cli.Stdout, "Base58 Encoded Key:", encoded)
	return err
}

func (cli *CommandLine) decode(key string) error {
	decoded, err := wallet.Base58Decode([]byte(key))
	if err != nil {
		return err
	}
	cli.log.Debug("decoded key", zap.Int("bytes", len(decoded)))
	_, err = fmt.Fprintf(cli.Stdout, "Key Bytes: %v\n", decoded)
	return err
}

func (cli *CommandLine) publicKey(key string) error {
	var (
		kp  *wallet.Keypair
		err error
	)
	if key == "" {
		var secret []byte
		secret, err = wallet.KeyBytes(wallet.PrivateKeyArray())
		if err != nil {
			return err
		}
		kp, err = wallet.KeypairFromSecretKey(secret)
	} else {
		kp, err = wallet.KeypairFromBase58(key)
	}
	if err != nil {
		return err
	}
	cli.log.Debug("keypair verified", logging.Base58("public", []byte(kp.PrivateKey[32:])))
	_, err = fmt.Fprintln(cli.Stdout, "Public Key:", kp.PublicKey())
	return err
}

// Parses "1, 2 3" into integers. Range checks happen in wallet.KeyBytes.
func parseByteList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '[' || r == ']'
	})
	array := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "byte list element %q", f)
		}
		array = append(array, v)
	}
	return array, nil
}

func (cli *CommandLine) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.Stderr)
	return fs
}

// Run executes the command in args (os.Args[1:]).
// -h prints usage and is not an error.
func (cli *CommandLine) Run(args []string) error {
	err := cli.run(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (cli *CommandLine) run(args []string) error {
	globalCmd := cli.flagSet("b58key")
	verbose := globalCmd.Bool("v", false, "debug logging on stderr")
	globalCmd.Usage = cli.printUsage
	if err := globalCmd.Parse(args); err != nil {
		return err
	}
	cli.log = logging.New(*verbose)
	defer cli.log.Sync()
	args = globalCmd.Args()

	if len(args) == 0 {
		return cli.encode(wallet.PrivateKeyArray())
	}

	encodeCmd := cli.flagSet("encode")
	decodeCmd := cli.flagSet("decode")
	pubkeyCmd := cli.flagSet("pubkey")
	encodeBytes := encodeCmd.String("bytes", "", "Bytes to encode, e.g. \"0,1,255\"")
	decodeKey := decodeCmd.String("key", "", "Base58 string to decode")
	pubkeyKey := pubkeyCmd.String("key", "", "Base58 encoded 64 byte secret key")
	cli.log.Debug("command", zap.String("name", args[0]))
	switch args[0] {
	case "encode":
		if err := encodeCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *encodeBytes == "" {
			return cli.encode(wallet.PrivateKeyArray())
		}
		array, err := parseByteList(*encodeBytes)
		if err != nil {
			return err
		}
		return cli.encode(array)
	case "decode":
		if err := decodeCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *decodeKey == "" {
			decodeCmd.Usage()
			return errUsage
		}
		return cli.decode(*decodeKey)
	case "pubkey":
		if err := pubkeyCmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.publicKey(*pubkeyKey)
	default:
		cli.printUsage()
		return errors.Wrapf(errUsage, "unknown command %q", args[0])
	}
}
