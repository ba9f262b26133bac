package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/bitmask/internal/conv"
)

var shiftFlag = cli.IntFlag{
	Name:     "n",
	Usage:    "number of bit positions to shift",
	Required: true,
}

var RenderCmd = cli.Command{
	Name:      "render",
	Usage:     "prints the bits of a record, bit 0 first",
	ArgsUsage: "<record|->",
	Action: func(c *cli.Context) error {
		rec, err := recordArg(c, 0)
		if err != nil {
			return err
		}
		s, err := opsFrom(c).render(c.Context, rec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.App.Writer, s)
		return err
	},
}

var ParseCmd = cli.Command{
	Name:      "parse",
	Usage:     "encodes a bit string such as 0110 as a record",
	ArgsUsage: "<bits>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("expected exactly one bit string")
		}
		data, err := opsFrom(c).parse(c.Context, c.Args().First())
		return printRecord(c, data, err)
	},
}

var CountCmd = cli.Command{
	Name:      "count",
	Usage:     "prints length, set bits and trailing zeros of a record",
	ArgsUsage: "<record|->",
	Action: func(c *cli.Context) error {
		rec, err := recordArg(c, 0)
		if err != nil {
			return err
		}
		st, err := opsFrom(c).count(c.Context, rec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.App.Writer, "length=%d ones=%d trailing_zeros=%d\n", st.Length, st.Ones, st.TrailingZeros)
		return err
	},
}

var GetCmd = cli.Command{
	Name:      "get",
	Usage:     "prints whether a bit of a record is set",
	ArgsUsage: "<record|-> <index>",
	Action: func(c *cli.Context) error {
		rec, err := recordArg(c, 0)
		if err != nil {
			return err
		}
		i, err := uintArg(c, 1)
		if err != nil {
			return err
		}
		v, err := opsFrom(c).get(c.Context, rec, i)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.App.Writer, v)
		return err
	},
}

var SetCmd = cli.Command{
	Name:      "set",
	Usage:     "sets or clears a bit of a record",
	ArgsUsage: "<record|-> <index> <true|false>",
	Action: func(c *cli.Context) error {
		rec, err := recordArg(c, 0)
		if err != nil {
			return err
		}
		i, err := uintArg(c, 1)
		if err != nil {
			return err
		}
		v, err := strconv.ParseBool(c.Args().Get(2))
		if err != nil {
			return fmt.Errorf("invalid bit value %q: %w", c.Args().Get(2), err)
		}
		data, err := opsFrom(c).set(c.Context, rec, i, v)
		return printRecord(c, data, err)
	},
}

var (
	AndCmd = binaryCmd("and", "intersects two records")
	OrCmd  = binaryCmd("or", "unites two records")
	XorCmd = binaryCmd("xor", "computes the symmetric difference of two records")
)

func binaryCmd(op, usage string) cli.Command {
	return cli.Command{
		Name:      op,
		Usage:     usage,
		ArgsUsage: "<record|-> <record>",
		Action: func(c *cli.Context) error {
			a, err := recordArg(c, 0)
			if err != nil {
				return err
			}
			b, err := recordArg(c, 1)
			if err != nil {
				return err
			}
			data, err := opsFrom(c).combine(c.Context, op, a, b)
			return printRecord(c, data, err)
		},
	}
}

var NotCmd = cli.Command{
	Name:      "not",
	Usage:     "complements a record",
	ArgsUsage: "<record|->",
	Action: func(c *cli.Context) error {
		rec, err := recordArg(c, 0)
		if err != nil {
			return err
		}
		data, err := opsFrom(c).not(c.Context, rec)
		return printRecord(c, data, err)
	},
}

var (
	ShlCmd = shiftCmd("shl", "shifts a record towards higher bit indices")
	ShrCmd = shiftCmd("shr", "shifts a record towards bit 0")
)

func shiftCmd(op, usage string) cli.Command {
	return cli.Command{
		Name:      op,
		Usage:     usage,
		ArgsUsage: "<record|->",
		Flags:     []cli.Flag{&shiftFlag},
		Action: func(c *cli.Context) error {
			n, err := conv.IntToUint(c.Int(shiftFlag.Name))
			if err != nil {
				return fmt.Errorf("invalid shift: %w", err)
			}
			rec, err := recordArg(c, 0)
			if err != nil {
				return err
			}
			data, err := opsFrom(c).shift(c.Context, op, n, rec)
			return printRecord(c, data, err)
		},
	}
}

func opsFrom(c *cli.Context) maskOps {
	return c.App.Metadata[opsKey].(maskOps)
}

// recordArg returns positional argument i; "-" reads the record from stdin.
func recordArg(c *cli.Context, i int) ([]byte, error) {
	if c.NArg() <= i {
		return nil, fmt.Errorf("missing record argument %d", i+1)
	}
	arg := c.Args().Get(i)
	if arg != "-" {
		return []byte(arg), nil
	}
	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return nil, fmt.Errorf("reading record from stdin: %w", err)
	}
	return []byte(strings.TrimSpace(string(data))), nil
}

func uintArg(c *cli.Context, i int) (uint, error) {
	v, err := strconv.ParseUint(c.Args().Get(i), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", c.Args().Get(i), err)
	}
	return uint(v), nil
}

func printRecord(c *cli.Context, data []byte, err error) error {
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}
