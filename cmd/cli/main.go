package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/crucial707/folio-api/cmd/cli/auth"
	"github.com/crucial707/folio-api/cmd/cli/projects"
	"github.com/crucial707/folio-api/cmd/cli/root"
)

func main() {
	rootCmd := root.GetRoot()
	auth.InitAuth(rootCmd)
	projects.InitProjects(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
