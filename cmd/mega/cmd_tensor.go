package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/mega/tensor"
)

// tensorFlags holds options shared by the tensor subcommands.
type tensorFlags struct {
	dtype string
}

func newTensorCmd(a *app) *cobra.Command {
	f := &tensorFlags{}
	cmd := &cobra.Command{
		Use:   "tensor",
		Short: "Build and combine typed tensors",
		Long: `Build and combine typed tensors.

Nested lists use flow syntax, for example '[[1, 2], [3, 4]]'.
Output lists at most MEGA_PRINT_LIMIT elements.`,
	}
	cmd.PersistentFlags().StringVarP(&f.dtype, "dtype", "d", "float64",
		"element type: int32, int64, float32, float64 (aliases int, long, float, double)")

	cmd.AddCommand(
		newTensorShowCmd(a, f),
		newTensorZerosCmd(a, f),
		newTensorArangeCmd(a, f),
		newTensorGetCmd(a, f),
		newTensorBinaryCmd(a, f, "add", "Elementwise sum", (*tensor.Tensor).Add),
		newTensorBinaryCmd(a, f, "sub", "Elementwise difference", (*tensor.Tensor).Sub),
		newTensorBinaryCmd(a, f, "mul", "Elementwise product", (*tensor.Tensor).Multiply),
		newTensorSaveCmd(a, f),
		newTensorLoadCmd(a),
	)
	return cmd
}

func (f *tensorFlags) parse(literal string) (*tensor.Tensor, error) {
	dtype, err := tensor.ParseDataType(f.dtype)
	if err != nil {
		return nil, err
	}
	var nested any
	if err := yaml.Unmarshal([]byte(literal), &nested); err != nil {
		return nil, fmt.Errorf("invalid tensor literal %q: %w", literal, err)
	}
	return tensor.FromList(nested, dtype)
}

func (a *app) emitTensor(cmd *cobra.Command, op string, t *tensor.Tensor) {
	a.log.Evaluation("tensor."+op,
		zap.Stringer("shape", t.Shape()),
		zap.Stringer("dtype", t.DType()),
	)
	emit(cmd, t.Format(a.cfg.Tensor.PrintLimit))
}

func newTensorShowCmd(a *app, f *tensorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <list>",
		Short: "Parse a nested list and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := f.parse(args[0])
			if err != nil {
				return err
			}
			a.emitTensor(cmd, "show", t)
			return nil
		},
	}
}

func newTensorZerosCmd(a *app, f *tensorFlags) *cobra.Command {
	var shape []int
	cmd := &cobra.Command{
		Use:   "zeros",
		Short: "Create a zero-filled tensor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dtype, err := tensor.ParseDataType(f.dtype)
			if err != nil {
				return err
			}
			t, err := tensor.New(tensor.Shape(shape), dtype)
			if err != nil {
				return err
			}
			a.emitTensor(cmd, "zeros", t)
			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&shape, "shape", "s", []int{1}, "dimensions, comma separated")
	return cmd
}

func newTensorArangeCmd(a *app, f *tensorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "arange <start> <end>",
		Short: "Create the 1D tensor start, start+1, ..., end-1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseInt("start", args[0])
			if err != nil {
				return err
			}
			end, err := parseInt("end", args[1])
			if err != nil {
				return err
			}
			dtype, err := tensor.ParseDataType(f.dtype)
			if err != nil {
				return err
			}
			t, err := tensor.Arange(start, end, dtype)
			if err != nil {
				return err
			}
			a.emitTensor(cmd, "arange", t)
			return nil
		},
	}
}

func newTensorGetCmd(a *app, f *tensorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <list> <index>...",
		Short: "Print one element of a nested list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := f.parse(args[0])
			if err != nil {
				return err
			}
			indices := make([]int, len(args)-1)
			for i, s := range args[1:] {
				if indices[i], err = strconv.Atoi(s); err != nil {
					return fmt.Errorf("invalid index %q: %w", s, err)
				}
			}
			v, err := t.Get(indices...)
			if err != nil {
				return err
			}
			a.log.Evaluation("tensor.get", zap.Ints("indices", indices))
			emit(cmd, v)
			return nil
		},
	}
}

func newTensorBinaryCmd(a *app, f *tensorFlags, name, short string,
	op func(*tensor.Tensor, *tensor.Tensor) (*tensor.Tensor, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <list> <list>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, err := f.parse(args[0])
			if err != nil {
				return err
			}
			rhs, err := f.parse(args[1])
			if err != nil {
				return err
			}
			result, err := op(lhs, rhs)
			if err != nil {
				return err
			}
			a.emitTensor(cmd, name, result)
			return nil
		},
	}
}

func newTensorSaveCmd(a *app, f *tensorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "save <file> <name>=<list>...",
		Short: "Write named tensors to a .mega archive",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tensors := make(map[string]*tensor.Tensor, len(args)-1)
			for _, arg := range args[1:] {
				name, literal, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected <name>=<list>, got %q", arg)
				}
				t, err := f.parse(literal)
				if err != nil {
					return fmt.Errorf("tensor %q: %w", name, err)
				}
				tensors[name] = t
			}
			if err := tensor.Save(args[0], tensors, map[string]string{"writer": "mega " + version}); err != nil {
				return err
			}
			a.log.Info("archive written", zap.String("path", args[0]), zap.Int("tensors", len(tensors)))
			return nil
		},
	}
}

func newTensorLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Print every tensor in a .mega archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := tensor.Load(args[0])
			if err != nil {
				return err
			}
			for _, name := range archive.Names() {
				t := archive.Tensors[name]
				emit(cmd, name+": "+t.Format(a.cfg.Tensor.PrintLimit))
			}
			a.log.Debug("archive read", zap.String("path", args[0]), zap.Int("tensors", len(archive.Tensors)))
			return nil
		},
	}
}
