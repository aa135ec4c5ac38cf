package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fyrsmithlabs/embedkit/internal/config"
	"github.com/fyrsmithlabs/embedkit/internal/logging"
	"github.com/fyrsmithlabs/embedkit/pkg/embeddings"
	"github.com/fyrsmithlabs/embedkit/pkg/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var embedModel string

func init() {
	embedCmd.Flags().StringVarP(&embedModel, "model", "m", "", "catalog model to embed with (default from config)")
}

// embedCmd embeds documents from arguments or stdin
var embedCmd = &cobra.Command{
	Use:   "embed [text...]",
	Short: "Embed documents and print JSON vectors",
	Long: `Embed documents with a local model and print a JSON array of
{document, vec} pairs, in input order, to stdout. Logs go to stderr.

Documents come from arguments, or from stdin one per line when no
arguments are given.

Examples:
  # Embed two documents
  embedkit embed "Hello, world!" "Goodbye, world!"

  # Embed a file of documents, one per line
  embedkit embed < documents.txt

  # Pick the model explicitly
  embedkit embed --model BAAI/bge-base-en-v1.5 "some text"`,
	RunE: runEmbed,
}

func runEmbed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if embedModel != "" {
		cfg.Model = embedModel
	}
	model, err := models.Parse(cfg.Model)
	if err != nil {
		return err
	}

	texts, err := readDocuments(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		return fmt.Errorf("no documents to embed")
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	client, err := embeddings.NewClient(cfg.ClientConfig(logger))
	if err != nil {
		return err
	}

	em, err := client.EmbeddingModel(model)
	if err != nil {
		return err
	}
	defer func() {
		if err := em.Close(); err != nil {
			logger.Warn("closing embedding model", zap.Error(err))
		}
	}()

	results, err := em.EmbedTexts(cmd.Context(), texts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// readDocuments gathers documents from args, or from stdin one per line
// when no args are given. Blank lines are skipped.
func readDocuments(stdin io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	scanner := bufio.NewScanner(stdin)
	// Documents can be much longer than the default 64KB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var texts []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		texts = append(texts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return texts, nil
}
