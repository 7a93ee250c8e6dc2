package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func check(e error) {
	if e != nil {
		fmt.Printf("%v\n", e.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "parser",
	Short:   "Offline tooling for the mail discovery parser service",
	Long:    `Offline tooling for the mail discovery parser service. Runs the same header aggregation the HTTP API exposes, over local JSON exports.`,
	Version: "1.0.0",
	Run: func(cmd *cobra.Command, args []string) {
		// empty
	},
}

func main() {
	Execute()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
