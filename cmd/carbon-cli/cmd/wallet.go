package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "connect or disconnect the wallet",
}

var walletConnectCmd = &cobra.Command{
	Use:   "connect",
	Short: "connect the wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodPost, "/api/wallet/connect", nil)
	},
}

var walletDisconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "disconnect the wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodPost, "/api/wallet/disconnect", nil)
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "show the connected account and its history",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		return call(cmd, http.MethodGet, "/api/profile?page="+itoa(page), nil)
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "show the credit overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodGet, "/api/dashboard", nil)
	},
}

func init() {
	walletCmd.AddCommand(walletConnectCmd, walletDisconnectCmd)
	rootCmd.AddCommand(walletCmd, profileCmd, dashboardCmd)

	profileCmd.Flags().Int("page", 1, "history page")
}
