package cmd

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

// creditsCmd represents the credits command
var creditsCmd = &cobra.Command{
	Use:   "credits [asset id]",
	Short: "list the held credits, or show one credit",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return call(cmd, http.MethodGet, "/api/credits/"+args[0], nil)
		}

		page, _ := cmd.Flags().GetInt("page")
		q := url.Values{"page": {itoa(page)}}
		if sort, _ := cmd.Flags().GetString("sort"); sort != "" {
			q.Set("sort", sort)
		}

		if cmd.Flags().Changed("verified") {
			verified, _ := cmd.Flags().GetBool("verified")
			q.Set("verified", strconv.FormatBool(verified))
		}

		return call(cmd, http.MethodGet, "/api/credits?"+q.Encode(), nil)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <asset id>",
	Short: "verify a credit on the ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodPost, "/api/verify", map[string]string{"asset_id": args[0]})
	},
}

func init() {
	rootCmd.AddCommand(creditsCmd, verifyCmd)

	creditsCmd.Flags().Int("page", 1, "page")
	creditsCmd.Flags().String("sort", "", "sort by date, amount or organization")
	creditsCmd.Flags().Bool("verified", false, "only verified (or, with =false, unverified) credits")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
