package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var tradeOpt struct {
	AssetID          int64  `json:"asset_id"`
	RecipientAddress string `json:"recipient_address"`
	Amount           int64  `json:"amount"`
	Message          string `json:"message,omitempty"`
}

// tradeCmd represents the trade command
var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "prepare a credit transfer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodPost, "/api/trade", &tradeOpt)
	},
}

func init() {
	rootCmd.AddCommand(tradeCmd)

	tradeCmd.Flags().Int64Var(&tradeOpt.AssetID, "asset", 0, "asset id")
	tradeCmd.Flags().StringVar(&tradeOpt.RecipientAddress, "to", "", "recipient address")
	tradeCmd.Flags().Int64Var(&tradeOpt.Amount, "amount", 0, "amount")
	tradeCmd.Flags().StringVar(&tradeOpt.Message, "message", "", "message (optional)")
}
