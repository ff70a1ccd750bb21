package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	rootCmd = &cobra.Command{
		Use:   "loyto",
		Short: "EC2 Instance Finder",
		Long: `Loyto - EC2 Instance Finder

Loyto resolves whatever identifier you have on hand - an IP address,
a DNS name, a tag or a Name - into the ID of the running EC2 instance
behind it. One lookup, one answer.`,
		Version: version,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the root command
func init() {
	rootCmd.SetVersionTemplate(`Loyto {{.Version}} - EC2 Instance Finder
`)
}
