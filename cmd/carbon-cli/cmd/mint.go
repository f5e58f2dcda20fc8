package cmd

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var mintOpt struct {
	OrganizationName string `json:"organization_name"`
	CreditAmount     int64  `json:"credit_amount"`
	Description      string `json:"description"`
	CertificateType  string `json:"certificate_type"`
	IssueDate        string `json:"issue_date,omitempty"`
	Location         string `json:"location"`
	Certificate      *struct {
		Name    string `json:"name"`
		Content []byte `json:"content"`
	} `json:"certificate,omitempty"`
}

var mintCertificate string

// mintCmd represents the mint command
var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "prepare a new carbon credit certificate",
	RunE: func(cmd *cobra.Command, args []string) error {
		if mintCertificate != "" {
			content, err := os.ReadFile(mintCertificate)
			if err != nil {
				return err
			}

			mintOpt.Certificate = &struct {
				Name    string `json:"name"`
				Content []byte `json:"content"`
			}{Name: filepath.Base(mintCertificate), Content: content}
		}

		path := "/api/mint"
		if preview, _ := cmd.Flags().GetBool("preview"); preview {
			path = "/api/mint/preview"
		}

		return call(cmd, http.MethodPost, path, &mintOpt)
	},
}

func init() {
	rootCmd.AddCommand(mintCmd)

	mintCmd.Flags().StringVar(&mintOpt.OrganizationName, "org", "", "organization name")
	mintCmd.Flags().Int64Var(&mintOpt.CreditAmount, "amount", 0, "credit amount (metric tons CO2)")
	mintCmd.Flags().StringVar(&mintOpt.Description, "desc", "", "description")
	mintCmd.Flags().StringVar(&mintOpt.CertificateType, "type", "Gold Standard", "certificate type")
	mintCmd.Flags().StringVar(&mintOpt.IssueDate, "date", "", "issue date (2006-01-02)")
	mintCmd.Flags().StringVar(&mintOpt.Location, "location", "", "project location")
	mintCmd.Flags().StringVar(&mintCertificate, "certificate", "", "certificate file to upload (optional)")
	mintCmd.Flags().Bool("preview", false, "only validate and preview")
}
