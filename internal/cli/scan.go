package cli

import (
	"errors"
	"net/url"

	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Record and remove scanned codes",
	}

	cmd.AddCommand(newScanAddCmd())
	cmd.AddCommand(newScanRemoveCmd())

	return cmd
}

func newScanAddCmd() *cobra.Command {
	var content, hash, name string
	var score int

	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Record a scan from raw content or an already-derived code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req map[string]any
			switch {
			case content != "" && hash != "":
				return errors.New("use either --content or --hash, not both")
			case content != "":
				req = map[string]any{"content": content}
			case hash != "":
				if name == "" {
					return errors.New("--name is required with --hash")
				}
				req = map[string]any{"hash": hash, "name": name, "score": score}
			default:
				return errors.New("--content or --hash is required")
			}

			var result Player
			if err := client.Post(playerPath(args[0])+"/scans", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Raw scanned content")
	cmd.Flags().StringVar(&hash, "hash", "", "Code hash")
	cmd.Flags().StringVar(&name, "name", "", "Code name (with --hash)")
	cmd.Flags().IntVar(&score, "score", 0, "Code score (with --hash)")

	return cmd
}

func newScanRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <username> <hash>",
		Short: "Remove a scanned code from a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Delete(playerPath(args[0])+"/scans/"+url.PathEscape(args[1]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newQRCodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qrcode",
		Short: "Look up codes in the catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every code seen so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result QRCodeList

			if err := client.Get("/api/v1/qrcodes", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <hash>",
		Short: "Show a catalog code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result QRCode

			if err := client.Get("/api/v1/qrcodes/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	return cmd
}
