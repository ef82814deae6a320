package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/aqarhub/aqarfinder/internal/api/client"
)

func contactCmd() *cobra.Command {
	var req apiclient.ContactLinkRequest

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Compose a WhatsApp contact link",
		Long: "Normalizes the given phone number and composes a wa.me deep link\n" +
			"with a pre-filled inquiry message.",
		Example: `  aqar contact --phone "05x xxx xxxx" --title "3BR in Al Malqa" --price 7500 --period monthly`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ContactLink(cmd.Context(), &req)
			if err != nil {
				return fmt.Errorf("composing contact link: %w", err)
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			fmt.Println("Phone:", resp.Phone)
			fmt.Println("Link: ", resp.Link)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number (server default when empty)")
	cmd.Flags().StringVar(&req.Template, "template", "", "message template override")
	cmd.Flags().StringVar(&req.Title, "title", "", "listing title")
	cmd.Flags().StringVar(&req.District, "district", "", "listing district")
	cmd.Flags().StringVar(&req.Price, "price", "", "listing price")
	cmd.Flags().StringVar(&req.Period, "period", "", "price period")
	cmd.Flags().StringVar(&req.URL, "url", "", "listing URL")

	return cmd
}
