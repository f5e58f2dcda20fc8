package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "show the settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodGet, "/api/settings", nil)
	},
}

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "set the theme, or toggle it",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"dark", "light"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return call(cmd, http.MethodPost, "/api/settings/theme", nil)
		}

		return call(cmd, http.MethodPost, "/api/settings/theme", map[string]bool{"dark": args[0] == "dark"})
	},
}

var networkCmd = &cobra.Command{
	Use:       "network <testnet|mainnet>",
	Short:     "select the ledger network",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"testnet", "mainnet"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodPut, "/api/settings/network", map[string]string{"network": args[0]})
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "list the active notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodGet, "/api/notifications", nil)
	},
}

var dismissCmd = &cobra.Command{
	Use:   "dismiss <id>",
	Short: "dismiss a notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodDelete, "/api/notifications/"+args[0], nil)
	},
}

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "show what this is",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodGet, "/api/about", nil)
	},
}

func init() {
	settingsCmd.AddCommand(themeCmd, networkCmd)
	notificationsCmd.AddCommand(dismissCmd)
	rootCmd.AddCommand(settingsCmd, notificationsCmd, aboutCmd)
}
