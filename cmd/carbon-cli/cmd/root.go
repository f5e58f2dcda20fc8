package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "carbon-cli",
	Short: "command line client of the carbon wallet server",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("endpoint", "l", "http://localhost:8080", "server endpoint")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout")
	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func getClient() *resty.Client {
	return resty.New().
		SetBaseURL(viper.GetString("endpoint")).
		SetTimeout(viper.GetDuration("timeout")).
		SetHeader("Content-Type", "application/json")
}

// call sends the request and prints the response body. Error responses are
// printed too but fail the command.
func call(cmd *cobra.Command, method, path string, body any) error {
	req := getClient().R().SetContext(cmd.Context())
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	if err := jsonPrint(cmd, json.RawMessage(resp.Body())); err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("%s %s: %s", method, path, resp.Status())
	}

	return nil
}

func jsonPrint(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
