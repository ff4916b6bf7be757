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
	"github.com/jt05610/ptnet/builder"
	"github.com/jt05610/ptnet/env"
	"github.com/jt05610/ptnet/petrifile/v1/yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputFile string
	outputDir string
	verbose   bool
	envFiles  []string

	logger      = zap.NewNop()
	environment = defaultEnvironment()
)

func defaultEnvironment() *env.Environment {
	e := env.Defaults
	return &e
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ptnet",
	Short: "Export Place/Transition nets to DOT, LoLA and PNML",
	Long: `ptnet reads a net definition file and writes it in one of the supported
formats: DOT for Graphviz, the LoLA model checker input language, or PNML.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		e, err := env.LoadEnv(logger, envFiles...)
		if err != nil {
			return fmt.Errorf("load environment: %w", err)
		}
		environment = e
		if e.Debug && !verbose {
			if l, err := newLogger(true); err == nil {
				logger = l
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "net definition file, - for stdin")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory, stdout when empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env", nil, "dotenv files to load")
}

func logNet(net *ptnet.Net) {
	logger.Debug("net loaded",
		zap.String("name", net.Name),
		zap.String("id", net.ID),
		zap.Int("places", net.CardinalityPlaces()),
		zap.Int("transitions", net.CardinalityTransitions()),
	)
}

// readNet loads the input net from stdin, or through a builder searching the
// directory of the input file.
func readNet(cmd *cobra.Command) (*ptnet.Net, error) {
	var (
		net *ptnet.Net
		err error
	)
	if inputFile == "" || inputFile == "-" {
		net, err = (&yaml.Service{}).Load(cmd.Context(), cmd.InOrStdin())
	} else {
		b := builder.NewBuilder(filepath.Dir(inputFile)).WithService(&yaml.Service{}, "yaml", "yml")
		net, err = b.Build(cmd.Context(), filepath.Base(inputFile))
	}
	if err != nil {
		return nil, err
	}
	logNet(net)
	return net, nil
}
