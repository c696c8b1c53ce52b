package cmd

import (
	"github.com/OliveiraNt/maned-courier/internal/application"
	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/spf13/cobra"
)

func newConsumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consume",
		Short: "Consume messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			groupID, _ := cmd.Flags().GetString("group-id")
			timeout, _ := cmd.Flags().GetFloat64("timeout")
			maxMessages, _ := cmd.Flags().GetInt("max-messages")
			fromBeginning, _ := cmd.Flags().GetBool("from-beginning")

			factory, err := resolveFactory(cmd)
			if err != nil {
				return err
			}
			consumer, err := factory.Consumer(domain.ConsumerOptions{
				GroupID:       groupID,
				Topic:         topic,
				FromBeginning: fromBeginning,
			})
			if err != nil {
				return err
			}

			svc := application.NewConsumerService(consumer, cmd.OutOrStdout(), cmd.ErrOrStderr())
			// a timeout with zero messages is reported, not a failure
			svc.Run(cmd.Context(), domain.ConsumeSession{
				Topic:          topic,
				GroupID:        groupID,
				TimeoutSeconds: timeout,
				MaxMessages:    maxMessages,
				FromBeginning:  fromBeginning,
			})
			return nil
		},
	}

	cmd.Flags().String("topic", "test-topic", "Topic name")
	cmd.Flags().String("group-id", "demo-group", "Consumer group id")
	cmd.Flags().Float64("timeout", 30.0, "Total seconds to wait (-1 = no timeout)")
	cmd.Flags().Int("max-messages", 0, "Stop after N messages (0 = unlimited)")
	cmd.Flags().Bool("from-beginning", false, "Read from earliest offset (default reads latest)")
	return cmd
}
