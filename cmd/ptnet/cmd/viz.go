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
	"github.com/jt05610/ptnet/graphviz"
	"github.com/spf13/cobra"
)

var (
	format  string
	rankDir string
)

// vizCmd represents the viz command
var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Create a graphviz figure from a petri net",
	Long:  `Create a graphviz figure from a petri net. The input file must be a petri file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := graphviz.ParseFormat(format)
		if err != nil {
			return err
		}
		dir := rankDir
		if !cmd.Flags().Changed("rankdir") {
			dir = environment.RankDir
		}
		net, err := readNet(cmd)
		if err != nil {
			return err
		}
		r := graphviz.NewRenderer(f, graphviz.RankDir(dir))
		return writeOutput(cmd, net, string(f), r)
	},
}

func init() {
	rootCmd.AddCommand(vizCmd)
	vizCmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, jpg or xdot")
	vizCmd.Flags().StringVar(&rankDir, "rankdir", "LR", "graph direction: LR, RL, TB or BT")
}
