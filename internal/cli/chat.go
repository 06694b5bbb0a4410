package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganilson/synctechSite/internal/version"
	"github.com/ganilson/synctechSite/pkg/sdk/chat"
)

func newChatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the Synctech assistant",
		Long: `Send a message to the site's AI assistant and print the reply.

Without arguments, chat reads one message per line from stdin until EOF.
Every message is an independent request; the assistant keeps no history.`,
		Example: `  synctech chat "Quanto custa um app mobile?"
  synctech chat --lang en --server https://synctech.ao "What do you build?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := chat.NewClient(opts.server(), chat.WithUserAgent(version.UserAgent("synctech-cli")))

			if len(args) > 0 {
				reply, err := client.Send(cmd.Context(), strings.Join(args, " "), opts.lang())
				if err != nil {
					return describeChatError(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), reply)
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				msg := strings.TrimSpace(scanner.Text())
				if msg == "" {
					continue
				}
				reply, err := client.Send(cmd.Context(), msg, opts.lang())
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), describeChatError(err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "> %s\n%s\n\n", msg, reply)
			}
			return scanner.Err()
		},
	}
}

func describeChatError(err error) error {
	var apiErr *chat.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("server answered %d: %s", apiErr.StatusCode, apiErr.Message)
	}
	return err
}
