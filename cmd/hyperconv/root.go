// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperlath/codec"
	"github.com/katalvlaran/hyperlath/convert"
	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/internal/ctxlog"
	"github.com/katalvlaran/hyperlath/matrix"
	"github.com/katalvlaran/hyperlath/table"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "hyperconv",
		Short:        "Normalize hypergraph descriptions",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			format, _ := cmd.Flags().GetString("log-format")
			level, _ := cmd.Flags().GetString("log-level")
			logger := ctxlog.New(format, level)
			cmd.SetContext(ctxlog.WithLogger(contextOf(cmd), logger))
		},
	}
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hyperconv v%s (%s)\n", version, commit)
		},
	})

	convertCmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a file and print the hypergraph as YAML",
		Long:  "Convert reads YAML, HCL or CSV (from file, or stdin when omitted or \"-\") and prints the normalized hypergraph.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConvert,
	}
	addInputFlags(convertCmd)
	convertCmd.Flags().String("output", "yaml", "Output: yaml or matrix")
	rootCmd.AddCommand(convertCmd)

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Convert a file, check the dual index and print counts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}
	addInputFlags(validateCmd)
	rootCmd.AddCommand(validateCmd)

	return rootCmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", string(codec.FormatAuto), "Input format: auto, yaml, hcl, csv")
	cmd.Flags().String("node-col", "0", "CSV node column (label or position)")
	cmd.Flags().String("edge-col", "1", "CSV edge column (label or position)")
	cmd.Flags().Bool("no-header", false, "CSV has no header row")
}

func runConvert(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "yaml" && output != "matrix" {
		return fmt.Errorf("convert: --output %q: want yaml or matrix", output)
	}
	h, err := load(cmd, args)
	if err != nil {
		return err
	}
	if output == "yaml" {
		return codec.EncodeYAML(cmd.OutOrStdout(), h)
	}

	inc, err := convert.ToIncidence(h)
	if err != nil {
		return err
	}
	d, err := matrix.DenseOf(inc.Mat)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "rows: %v\ncols: %v\n%s", inc.Rows, inc.Cols, d)

	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	h, err := load(cmd, args)
	if err != nil {
		return err
	}
	if err = h.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nodes, %d edges\n", h.NumNodes(), h.NumEdges())

	return nil
}

// load reads the input named by args (stdin when absent or "-") and converts it.
func load(cmd *cobra.Command, args []string) (*hypergraph.Hypergraph[string, string], error) {
	logger := ctxlog.FromContext(contextOf(cmd))

	formatName, _ := cmd.Flags().GetString("format")
	nodeCol, _ := cmd.Flags().GetString("node-col")
	edgeCol, _ := cmd.Flags().GetString("edge-col")
	noHeader, _ := cmd.Flags().GetBool("no-header")

	format, err := codec.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else if format == codec.FormatAuto {
		// stdin has no extension to sniff
		format = codec.FormatYAML
	}

	opts := []codec.Option{codec.WithColumns(table.Parse(nodeCol), table.Parse(edgeCol))}
	if noHeader {
		opts = append(opts, codec.WithoutHeader())
	}

	logger.Debug("decoding input", "file", name, "format", string(format))
	doc, err := codec.Decode(r, format, name, opts...)
	if err != nil {
		return nil, err
	}
	h, err := doc.Convert()
	if err != nil {
		return nil, err
	}
	logger.Info("converted", "file", name, "nodes", h.NumNodes(), "edges", h.NumEdges())

	return h, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
