package cli

import (
	"fmt"
	"strings"

	"github.com/jawwad-masteee/handlix/config"
	"github.com/jawwad-masteee/handlix/services/inquiry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	linkService string
	linkNumber  string
)

var linkCmd = &cobra.Command{
	Use:   "link [topic...]",
	Short: "Print a WhatsApp inquiry link",
	Long: `Prints the wa.me link a booking button would open.

Examples:
  handlix link "Kitchen Cleaning"
  handlix link --service pet-grooming`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.New())
		if err != nil {
			return err
		}
		number := cfg.WhatsAppNumber
		if linkNumber != "" {
			number = linkNumber
		}

		topic := strings.Join(args, " ")
		if strings.TrimSpace(topic) == "" && linkService != "" {
			topic = inquiry.ServiceName(linkService)
		}

		fmt.Fprintln(cmd.OutOrStdout(), inquiry.NewBuilder(cfg.WhatsAppBaseURL, number).InquiryLink(topic))
		return nil
	},
}

func init() {
	linkCmd.Flags().StringVar(&linkService, "service", "", "services route slug used when no topic is given")
	linkCmd.Flags().StringVar(&linkNumber, "number", "", "recipient phone number (defaults to WHATSAPP_NUMBER)")
	rootCmd.AddCommand(linkCmd)
}
