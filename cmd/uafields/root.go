package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "uafields",
		Short: "Derive browser, version, OS and device fields from User-Agent strings",
		Long: `uafields maps raw User-Agent strings onto the analytics properties
$browser, $browser_version, $os and $device.

Run it as an HTTP service that enriches tracked events, or classify
user agents directly from the command line.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetVersionTemplate("uafields {{.Version}}\n")

	root.AddCommand(
		newServeCmd(),
		newClassifyCmd(),
		newVersionCmd(),
	)
	return root
}
