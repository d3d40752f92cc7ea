package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tt "github.com/pystyle/pystyle/internal/types"
)

// rulesCmd: pystyle rules
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, code := range tt.AllRuleCodes {
			fmt.Printf("%s %s\n", code, code.Description())
		}
	},
}
