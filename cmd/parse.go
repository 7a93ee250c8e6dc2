package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maildiscovery/go-parser-server/services"
	"github.com/maildiscovery/go-parser-server/types"
	"github.com/spf13/cobra"
)

// parseCmd extracts unique addresses from a headers JSON file, the same
// shape the parse endpoint accepts: {"headers": [...]}
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract unique email addresses from a JSON file of email headers",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		check(err)

		var input types.InputParse
		check(json.Unmarshal(data, &input))

		result := services.NewParseService().Aggregate(input.Headers)

		out, mErr := json.MarshalIndent(types.OutputParse{
			UniqueEmails:   result.UniqueAddresses,
			TotalProcessed: result.TotalProcessed,
		}, "", "  ")
		check(mErr)
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
