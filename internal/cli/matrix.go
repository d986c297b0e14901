// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

var matrixCommands = []commandSpec{
	{name: opAdd, short: "Element-wise sum of two matrices"},
	{name: opSub, short: "Element-wise difference of two matrices"},
	{name: opMul, short: "Matrix product of two matrices"},
	{name: opMulVec, short: "Product of a matrix and a vector of length --dim"},
	{name: opMulScalar, short: "Multiply every element by --scalar", scalar: true},
	{name: opIdentity, short: "Print the identity matrix of dimension --dim (reads no input)"},
}

func newMatrixCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "matrix",
		Aliases: []string{"mat"},
		Short:   "Square matrix arithmetic; operands are --dim rows of --dim numbers each",
	}
	for _, leaf := range matrixCommands {
		cmd.AddCommand(newMatrixLeaf(o, leaf))
	}

	return cmd
}

func newMatrixLeaf(o *Options, leaf commandSpec) *cobra.Command {
	var (
		dim    int
		scalar string
	)
	cmd := &cobra.Command{
		Use:   leaf.name,
		Short: leaf.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.Type == typeInt64 {
				return runMatrix[int64](o, leaf.name, dim, scalar)
			}
			return runMatrix[float64](o, leaf.name, dim, scalar)
		},
	}
	cmd.Flags().IntVarP(&dim, "dim", "n", 0, "Matrix dimension")
	_ = cmd.MarkFlagRequired("dim")
	if leaf.scalar {
		cmd.Flags().StringVar(&scalar, "scalar", "", "Scalar operand")
		_ = cmd.MarkFlagRequired("scalar")
	}

	return cmd
}

// runMatrix reads the operands for op, evaluates it and prints the result.
func runMatrix[T vector.Number](o *Options, op string, dim int, scalarText string) error {
	log := o.Logger().WithFields(logrus.Fields{"op": op, "type": o.Type, "dim": dim})
	log.Debug("running matrix operation")

	if op == opIdentity {
		id, err := matrix.Identity[T](dim)
		if err != nil {
			return errors.Wrap(err, op)
		}
		return writeMatrix(o, log, id)
	}

	in, closeIn, err := o.openInput()
	if err != nil {
		return err
	}
	defer func() { _ = closeIn() }()

	a, err := readMatrix[T](in, dim, "first operand")
	if err != nil {
		return err
	}

	var res *matrix.Matrix[T]
	switch op {
	case opAdd, opSub, opMul:
		b, err := readMatrix[T](in, dim, "second operand")
		if err != nil {
			return err
		}
		switch op {
		case opAdd:
			res, err = a.Add(b)
		case opSub:
			res, err = a.Sub(b)
		default:
			res, err = a.Mul(b)
		}
		if err != nil {
			return errors.Wrap(err, op)
		}
	case opMulVec:
		x, err := readVector[T](in, dim, "vector operand")
		if err != nil {
			return err
		}
		y, err := a.MulVec(x)
		if err != nil {
			return errors.Wrap(err, op)
		}
		if err = y.Write(o.Out, o.writeOptions()...); err != nil {
			return errors.Wrap(err, "write result")
		}
		_, err = fmt.Fprintln(o.Out)
		log.Info("matrix operation done")
		return errors.Wrap(err, "write result")
	case opMulScalar:
		x, err := parseScalar[T](scalarText)
		if err != nil {
			return err
		}
		if res, err = a.MulScalar(x); err != nil {
			return errors.Wrap(err, op)
		}
	default:
		return errors.Errorf("unknown matrix operation %q", op)
	}

	return writeMatrix(o, log, res)
}

func writeMatrix[T vector.Number](o *Options, log *logrus.Entry, m *matrix.Matrix[T]) error {
	if err := m.Write(o.Out, o.writeOptions()...); err != nil {
		return errors.Wrap(err, "write result")
	}
	log.Info("matrix operation done")

	return nil
}
