// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynmat/vector"
)

const (
	opAdd       = "add"
	opSub       = "sub"
	opDot       = "dot"
	opAddScalar = "add-scalar"
	opSubScalar = "sub-scalar"
	opMulScalar = "mul-scalar"
	opMul       = "mul"
	opMulVec    = "mul-vec"
	opIdentity  = "identity"
)

// commandSpec describes one leaf command.
type commandSpec struct {
	name   string
	short  string
	scalar bool // requires --scalar
}

var vectorCommands = []commandSpec{
	{name: opAdd, short: "Element-wise sum of two vectors"},
	{name: opSub, short: "Element-wise difference of two vectors"},
	{name: opDot, short: "Dot product of two vectors"},
	{name: opAddScalar, short: "Add --scalar to every element", scalar: true},
	{name: opSubScalar, short: "Subtract --scalar from every element", scalar: true},
	{name: opMulScalar, short: "Multiply every element by --scalar", scalar: true},
}

func newVectorCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vector",
		Aliases: []string{"vec"},
		Short:   "Vector arithmetic; operands are --size whitespace-separated numbers each",
	}
	for _, leaf := range vectorCommands {
		cmd.AddCommand(newVectorLeaf(o, leaf))
	}

	return cmd
}

func newVectorLeaf(o *Options, leaf commandSpec) *cobra.Command {
	var (
		size   int
		scalar string
	)
	cmd := &cobra.Command{
		Use:   leaf.name,
		Short: leaf.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.Type == typeInt64 {
				return runVector[int64](o, leaf.name, size, scalar)
			}
			return runVector[float64](o, leaf.name, size, scalar)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "Vector length")
	_ = cmd.MarkFlagRequired("size")
	if leaf.scalar {
		cmd.Flags().StringVar(&scalar, "scalar", "", "Scalar operand")
		_ = cmd.MarkFlagRequired("scalar")
	}

	return cmd
}

// runVector reads the operands for op, evaluates it and prints the result.
// Nothing is printed unless the whole evaluation succeeds.
func runVector[T vector.Number](o *Options, op string, size int, scalarText string) error {
	log := o.Logger().WithFields(logrus.Fields{"op": op, "type": o.Type, "size": size})
	log.Debug("running vector operation")

	in, closeIn, err := o.openInput()
	if err != nil {
		return err
	}
	defer func() { _ = closeIn() }()

	a, err := readVector[T](in, size, "first operand")
	if err != nil {
		return err
	}

	var res *vector.Vector[T]
	switch op {
	case opAdd, opSub, opDot:
		b, err := readVector[T](in, size, "second operand")
		if err != nil {
			return err
		}
		switch op {
		case opAdd:
			res, err = a.Add(b)
		case opSub:
			res, err = a.Sub(b)
		default:
			dot, err := a.Dot(b)
			if err != nil {
				return errors.Wrap(err, op)
			}
			log.WithField("result", dot).Info("dot product computed")
			_, err = fmt.Fprintf(o.Out, o.Verb+"\n", dot)
			return errors.Wrap(err, "write result")
		}
		if err != nil {
			return errors.Wrap(err, op)
		}
	default:
		x, err := parseScalar[T](scalarText)
		if err != nil {
			return err
		}
		switch op {
		case opAddScalar:
			res, err = a.AddScalar(x)
		case opSubScalar:
			res, err = a.SubScalar(x)
		case opMulScalar:
			res, err = a.MulScalar(x)
		default:
			return errors.Errorf("unknown vector operation %q", op)
		}
		if err != nil {
			return errors.Wrap(err, op)
		}
	}

	if err = res.Write(o.Out, o.writeOptions()...); err != nil {
		return errors.Wrap(err, "write result")
	}
	if _, err = fmt.Fprintln(o.Out); err != nil {
		return errors.Wrap(err, "write result")
	}
	log.Info("vector operation done")

	return nil
}
