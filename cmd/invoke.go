package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/lex-job-assistant/internal/lex"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run a single Lex event through the handler and print the response",
	Run: func(cmd *cobra.Command, _ []string) {
		invoke(cmd)
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)

	invokeCmd.Flags().StringP("event", "e", "", "a file with the Lex event JSON. Default is stdin.")
}

func invoke(cmd *cobra.Command) {
	logger, config := setup()

	router, err := newRouter(config, logger)
	if err != nil {
		logger.Fatal("building the router", zap.Error(err))
	}

	path, _ := cmd.Flags().GetString("event")
	raw, err := readEvent(cmd.InOrStdin(), path)
	if err != nil {
		logger.Fatal("reading the event", zap.Error(err))
	}

	// Handle never fails, the outcome is in the response.
	resp, _ := router.Handle(context.Background(), raw)

	if err := writeResponse(cmd.OutOrStdout(), resp); err != nil {
		logger.Fatal("writing the response", zap.Error(err))
	}
}

// readEvent reads the event from path, or from stdin when path is empty.
func readEvent(stdin io.Reader, path string) (map[string]any, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing event json: %w", err)
	}

	return raw, nil
}

func writeResponse(w io.Writer, resp *lex.Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
