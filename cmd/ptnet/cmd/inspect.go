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

	"github.com/jt05610/ptnet/analysis"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a summary and the incidence matrix of a net",
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := readNet(cmd)
		if err != nil {
			return err
		}
		if err := net.Validate(); err != nil {
			logger.Error("net failed validation", zap.Error(err))
			return err
		}
		an := &analysis.Net{Net: net}
		s, err := an.Summarize()
		if err != nil {
			return err
		}
		logger.Info("net summary",
			zap.String("name", s.Name),
			zap.Int("places", s.Places),
			zap.Int("transitions", s.Transitions),
			zap.Int("arcsPlaceTransition", s.ArcsPlaceTransition),
			zap.Int("arcsTransitionPlace", s.ArcsTransitionPlace),
			zap.Strings("unconnected", s.UnconnectedPlaces),
			zap.Uint("tokens", s.Tokens),
		)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d places, %d transitions, %d arcs, %d tokens\n",
			s.Name, s.Places, s.Transitions, s.ArcsPlaceTransition+s.ArcsTransitionPlace, s.Tokens)
		return an.WriteIncidence(out)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
