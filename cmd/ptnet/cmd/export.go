/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jt05610/ptnet"
	"github.com/jt05610/ptnet/graphviz"
	"github.com/jt05610/ptnet/lola"
	"github.com/jt05610/ptnet/pnml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportFormat string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a net as DOT, LoLA or PNML",
	Long: `Export a net as DOT, LoLA or PNML. The output is written to stdout, or to
<output>/<net name>.<format> when an output directory is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := exportFormat
		if !cmd.Flags().Changed("format") {
			f = environment.Format
		}
		format, err := ptnet.ParseFormat(f)
		if err != nil {
			return err
		}
		net, err := readNet(cmd)
		if err != nil {
			return err
		}
		return writeOutput(cmd, net, format.Extension(), flusherFor(format))
	},
}

func flusherFor(format ptnet.Format) ptnet.Flusher {
	switch format {
	case ptnet.LoLA:
		return lola.New()
	case ptnet.PNML:
		return pnml.New()
	default:
		return graphviz.New(nil)
	}
}

// writeOutput flushes net to stdout, or to a file named after the net in the
// output directory.
func writeOutput(cmd *cobra.Command, net *ptnet.Net, ext string, f ptnet.Flusher) error {
	dir := outputDir
	if !cmd.Flags().Changed("output") {
		dir = environment.OutputDir
	}
	if dir == "" {
		return f.Flush(cmd.OutOrStdout(), net)
	}
	name := net.Name
	if name == "" {
		name = "net"
	}
	outPath := filepath.Join(dir, name+"."+ext)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	df, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = df.Close()
	}()
	logger.Info("writing net", zap.String("name", net.Name), zap.String("path", outPath))
	if err := f.Flush(df, net); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return df.Close()
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "dot", "output format: dot, lola or pnml")
}
