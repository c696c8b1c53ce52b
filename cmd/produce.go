package cmd

import (
	"github.com/OliveiraNt/maned-courier/internal/application"
	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/spf13/cobra"
)

func newProduceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "produce",
		Short: "Produce one or more messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			message, _ := cmd.Flags().GetString("message")
			count, _ := cmd.Flags().GetInt("count")
			key, _ := cmd.Flags().GetString("key")
			partitioner, _ := cmd.Flags().GetString("partitioner")

			opts := domain.ProducerOptions{Partitioner: partitioner}
			if cmd.Flags().Changed("sticky-linger-ms") {
				linger, _ := cmd.Flags().GetInt("sticky-linger-ms")
				opts.StickyLingerMS = &linger
			}

			factory, err := resolveFactory(cmd)
			if err != nil {
				return err
			}
			producer, err := factory.Producer(opts)
			if err != nil {
				return err
			}
			defer producer.Close()

			svc := application.NewProducerService(producer, cmd.OutOrStdout(), cmd.ErrOrStderr())
			// individual delivery failures are reported, not fatal
			svc.Produce(cmd.Context(), domain.ProduceRequest{
				Topic:      topic,
				Message:    message,
				HasMessage: cmd.Flags().Changed("message"),
				Count:      count,
				Key:        key,
				HasKey:     cmd.Flags().Changed("key"),
			})
			return nil
		},
	}

	cmd.Flags().String("topic", "test-topic", "Topic name")
	cmd.Flags().String("message", "", "Single message to send")
	cmd.Flags().Int("count", 1, "Number of generated messages")
	cmd.Flags().String("key", "", "Optional message key")
	cmd.Flags().String("partitioner", "",
		"Partitioner (consistent, consistent_random, murmur2, murmur2_random, fnv1a, fnv1a_random, random)")
	cmd.Flags().Int("sticky-linger-ms", 0, "Sticky partitioner linger in ms (keyless messages)")
	return cmd
}
