// Command screw evaluates and plots screw motions.
//
// Parameters come from flags, SCREW_* environment variables or a config file
// (see --config). The eval subcommand prints the screw-displaced vector, repl
// starts an interactive session and plot renders the motion to a PNG file.
package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	cmd := newRootCommand(os.Stdout)
	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
