package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/marieof9/libvirt/qemu"
	"github.com/marieof9/libvirt/value"
)

// NewApp creates the qemuargs CLI app.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "qemuargs"
	app.Usage = "Build QEMU command-line arguments from JSON property sets"
	app.EnableBashCompletion = true

	app.Commands = []*cli.Command{
		NewObjectCommand(),
		NewLuksCommand(),
	}

	return app
}

// NewObjectCommand returns a cli.Command that builds a -object argument
// string from a JSON object read from a file or standard input.
func NewObjectCommand() *cli.Command {
	return &cli.Command{
		Name:      "object",
		Usage:     "Build a -object argument string from JSON properties",
		UsageText: "qemuargs object --type TYPE --id ID [file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "type",
				Usage:    "object type",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "id",
				Usage:    "object id (alias)",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			var data []byte
			var err error

			if path := c.Args().First(); path != "" {
				data, err = os.ReadFile(path)
			} else {
				data, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return err
			}

			props, err := value.ParseObject(data)
			if err != nil {
				return err
			}

			arg, err := qemu.BuildObjectArg(c.String("type"), c.String("id"), props)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.App.Writer, arg)
			return err
		},
	}
}

// NewLuksCommand returns a cli.Command that builds the LUKS encryption
// option fragment for a secret alias.
func NewLuksCommand() *cli.Command {
	return &cli.Command{
		Name:      "luks",
		Usage:     "Build LUKS encryption options for a secret alias",
		UsageText: "qemuargs luks --secret ALIAS [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "secret",
				Usage:    "secret alias",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "cipher",
				Usage: "cipher algorithm name",
			},
			&cli.UintFlag{
				Name:  "cipher-size",
				Usage: "cipher key size in bits",
			},
			&cli.StringFlag{
				Name:  "cipher-mode",
				Usage: "cipher mode",
			},
			&cli.StringFlag{
				Name:  "hash",
				Usage: "hash algorithm",
			},
			&cli.StringFlag{
				Name:  "ivgen",
				Usage: "initialization vector generator algorithm",
			},
			&cli.StringFlag{
				Name:  "ivgen-hash",
				Usage: "initialization vector generator hash algorithm",
			},
		},
		Action: func(c *cli.Context) error {
			enc := qemu.EncryptionOptions{
				CipherName: c.String("cipher"),
				CipherSize: c.Uint("cipher-size"),
				CipherMode: c.String("cipher-mode"),
				CipherHash: c.String("hash"),
				IvgenName:  c.String("ivgen"),
				IvgenHash:  c.String("ivgen-hash"),
			}

			var b strings.Builder
			qemu.BuildLuksOpts(&b, &enc, c.String("secret"))

			_, err := fmt.Fprintln(c.App.Writer, b.String())
			return err
		},
	}
}
