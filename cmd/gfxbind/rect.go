package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/milk9111/gfxbind/geom"
	"github.com/spf13/cobra"
)

var flagFloat bool

var rectCmd = &cobra.Command{
	Use:   "rect",
	Short: "Rectangle geometry queries",
	Long: `Rectangles are given as four numbers: left top width height.
Width and height may be negative. Pass --float for floating-point
coordinates; integers are used otherwise. Flags go before the numbers;
use -- when the first number is negative.`,
}

var rectContainsCmd = &cobra.Command{
	Use:   "contains <left> <top> <width> <height> <x> <y>",
	Short: "Report whether a point lies in a rect",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagFloat {
			return runContains[float32](cmd.OutOrStdout(), args)
		}
		return runContains[int](cmd.OutOrStdout(), args)
	},
}

var rectIntersectCmd = &cobra.Command{
	Use:   "intersect <l> <t> <w> <h> <l> <t> <w> <h>",
	Short: "Print the overlap of two rects",
	Args:  cobra.ExactArgs(8),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagFloat {
			return runIntersect[float32](cmd.OutOrStdout(), args)
		}
		return runIntersect[int](cmd.OutOrStdout(), args)
	},
}

var rectConvertCmd = &cobra.Command{
	Use:   "convert <left> <top> <width> <height>",
	Short: "Convert between int and float rects",
	Long:  "Without --float the rect is widened to float; with --float it is truncated to int.",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if flagFloat {
			r, err := parseRect[float32](args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, geom.ToInt(r))
			return err
		}
		r, err := parseRect[int](args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, geom.ToFloat(r))
		return err
	},
}

var rectEncodeCmd = &cobra.Command{
	Use:   "encode <left> <top> <width> <height>",
	Short: "Print the binary layout of a rect as hex",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagFloat {
			return runEncode[float32](cmd.OutOrStdout(), args)
		}
		return runEncode[int](cmd.OutOrStdout(), args)
	},
}

func init() {
	rectCmd.PersistentFlags().BoolVar(&flagFloat, "float", false, "Use floating-point coordinates")
	for _, c := range []*cobra.Command{rectContainsCmd, rectIntersectCmd, rectConvertCmd, rectEncodeCmd} {
		// Everything after the first number is positional, so "-5" is a value.
		c.Flags().SetInterspersed(false)
		rectCmd.AddCommand(c)
	}
}

func runContains[T geom.Scalar](out io.Writer, args []string) error {
	r, err := parseRect[T](args[:4])
	if err != nil {
		return err
	}
	x, err := parseScalar[T](args[4])
	if err != nil {
		return err
	}
	y, err := parseScalar[T](args[5])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, r.Contains(x, y))
	return err
}

func runIntersect[T geom.Scalar](out io.Writer, args []string) error {
	a, err := parseRect[T](args[:4])
	if err != nil {
		return err
	}
	b, err := parseRect[T](args[4:])
	if err != nil {
		return err
	}
	inter := a.Intersects(b)
	if !a.IsIntersecting(b) {
		_, err = fmt.Fprintf(out, "%v (no overlap)\n", inter)
		return err
	}
	_, err = fmt.Fprintln(out, inter)
	return err
}

func runEncode[T geom.Scalar](out io.Writer, args []string) error {
	r, err := parseRect[T](args)
	if err != nil {
		return err
	}
	b, err := r.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hex.EncodeToString(b))
	return err
}

func parseRect[T geom.Scalar](args []string) (geom.Rect[T], error) {
	if len(args) != 4 {
		return geom.Rect[T]{}, fmt.Errorf("rect needs 4 values, got %d", len(args))
	}
	var v [4]T
	for i, a := range args {
		n, err := parseScalar[T](a)
		if err != nil {
			return geom.Rect[T]{}, err
		}
		v[i] = n
	}
	return geom.NewRect(v[0], v[1], v[2], v[3]), nil
}

func parseScalar[T geom.Scalar](s string) (T, error) {
	var one T = 1
	if one/2 != 0 {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q: %w", s, err)
		}
		return T(f), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return T(n), nil
}
