package cmd

import (
	"fmt"

	"github.com/OliveiraNt/maned-courier/internal/application"
	"github.com/OliveiraNt/maned-courier/internal/domain"
	"github.com/spf13/cobra"
)

func newCreateTopicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-topic",
		Short: "Create a topic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			partitions, _ := cmd.Flags().GetInt32("partitions")
			replicationFactor, _ := cmd.Flags().GetInt16("replication-factor")

			factory, err := resolveFactory(cmd)
			if err != nil {
				return err
			}
			admin, err := factory.Admin()
			if err != nil {
				return err
			}
			defer admin.Close()

			svc := application.NewTopicService(admin)
			outcome, err := svc.CreateTopic(cmd.Context(), domain.TopicSpec{
				Name:              topic,
				Partitions:        partitions,
				ReplicationFactor: replicationFactor,
			})
			if err != nil {
				return fmt.Errorf("failed to create topic '%s': %w", topic, err)
			}

			if outcome == application.TopicAlreadyExists {
				fmt.Fprintf(cmd.OutOrStdout(), "Topic '%s' already exists\n", topic)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Created topic '%s'\n", topic)
			}
			return nil
		},
	}

	cmd.Flags().String("topic", "test-topic", "Topic name")
	cmd.Flags().Int32("partitions", 1, "Partition count")
	cmd.Flags().Int16("replication-factor", 1, "Replication factor")
	return cmd
}
