package main

import (
	"fmt"
	"time"

	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/fystack/nodit-kaia/pkg/common/ptr"
	"github.com/fystack/nodit-kaia/pkg/webhook"
	"github.com/spf13/cobra"
)

func newWebhooksCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage webhook subscriptions",
	}
	cmd.AddCommand(
		newWebhooksListCmd(flags),
		newWebhooksCreateCmd(flags),
		newWebhooksWatchCmd(flags),
		newWebhooksDeleteCmd(flags),
		newWebhooksHistoryCmd(flags),
	)
	return cmd
}

func newWebhooksListCmd(flags *rootFlags) *cobra.Command {
	var page, rpp int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			opts := &webhook.ListOptions{}
			if cmd.Flags().Changed("page") {
				opts.Page = ptr.New(page)
			}
			if cmd.Flags().Changed("rpp") {
				opts.RPP = ptr.New(rpp)
			}
			raw, err := client.Webhook.GetWebhooks(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&rpp, "rpp", 20, "results per page")
	return cmd
}

func newWebhooksCreateCmd(flags *rootFlags) *cobra.Command {
	var (
		eventType   string
		description string
		addresses   []string
		contract    string
	)
	cmd := &cobra.Command{
		Use:   "create <webhook-url>",
		Short: "Create a subscription for any event type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event := enum.WebhookEventType(eventType)
			if !event.IsValid() {
				return fmt.Errorf("unknown event type %q", eventType)
			}
			if err := requireAddress(addresses); err != nil {
				return err
			}
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			raw, err := client.Webhook.CreateWebhook(cmd.Context(), event, args[0], description, webhook.Condition{
				Addresses:       addresses,
				ContractAddress: contract,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().StringVar(&eventType, "event-type", string(enum.EventAddressActivity), "event type, e.g. TOKEN_TRANSFER")
	cmd.Flags().StringVar(&description, "description", "created by kaiactl", "subscription description")
	cmd.Flags().StringSliceVar(&addresses, "address", nil, "address to watch (repeatable)")
	cmd.Flags().StringVar(&contract, "contract", "", "contract address condition")
	return cmd
}

func newWebhooksWatchCmd(flags *rootFlags) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "watch <webhook-url> <address>...",
		Short: "Create an ADDRESS_ACTIVITY subscription",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAddress(args[1:]); err != nil {
				return err
			}
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			raw, err := client.Webhook.CreateAddressActivityWebhook(cmd.Context(), args[0], args[1:], description)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().StringVar(&description, "description", "created by kaiactl", "subscription description")
	return cmd
}

func newWebhooksDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <webhook-id>",
		Short: "Delete a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			raw, err := client.Webhook.DeleteWebhook(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(raw) == 0 {
				return nil
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
}

func newWebhooksHistoryCmd(flags *rootFlags) *cobra.Command {
	var (
		status string
		since  time.Duration
		rpp    int
	)
	cmd := &cobra.Command{
		Use:   "history <subscription-id>",
		Short: "Delivery history of a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			p := webhook.HistoryParams{
				SubscriptionID: args[0],
				Status:         enum.WebhookHistoryStatus(status),
			}
			if cmd.Flags().Changed("rpp") {
				p.RPP = ptr.New(rpp)
			}
			if since > 0 {
				now := time.Now()
				p.StartAt = webhook.At(now.Add(-since))
				p.EndAt = webhook.At(now)
			}
			raw, err := client.Webhook.GetWebhookHistory(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "SUCCESS or FAILED")
	cmd.Flags().DurationVar(&since, "since", 0, "only deliveries newer than this, e.g. 24h")
	cmd.Flags().IntVar(&rpp, "rpp", 20, "results per page")
	return cmd
}
