package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shenikar/dispatch_system/internal/detection"
	"github.com/spf13/cobra"
)

// classifyCmd прогоняет текст через классификатор без запуска сервера
var classifyCmd = &cobra.Command{
	Use:   "classify <description>",
	Short: "Classify an emergency description and suggest a severity",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		res := detection.Classify(description)

		out, err := json.MarshalIndent(struct {
			detection.Result
			SuggestedSeverity string `json:"suggested_severity"`
		}{
			Result:            res,
			SuggestedSeverity: string(detection.EstimateSeverity(description, res.Type)),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode classification: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
