package main

import (
	"fmt"
	"os"

	"github.com/mathdrill/backend/internal/domain/corpus"
	"github.com/mathdrill/backend/internal/infrastructure/config"
	"github.com/mathdrill/backend/internal/infrastructure/logging"
	"github.com/mathdrill/backend/internal/verify"
)

// verify checks that every answer in the corpus is accepted when typed the
// way a learner would type it. It exits 1 on any failure.
func main() {
	cfg := config.LoadVerify()
	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	c, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		logger.Error("failed to load corpus", "path", cfg.CorpusPath, "error", err)
		closer.Close()
		os.Exit(1)
	}

	issues := verify.Run(c, cfg.Workers)
	for _, is := range issues {
		fmt.Println("FAIL", is)
	}

	logger.Info("corpus verified",
		"path", cfg.CorpusPath,
		"problems", c.Len(),
		"failures", len(issues),
	)
	if len(issues) > 0 {
		closer.Close()
		os.Exit(1)
	}
	fmt.Printf("ok: %d problems\n", c.Len())
}
