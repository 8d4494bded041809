package main

import (
	"context"
	"fmt"
	"os"

	"orderflow/internal/app/cli"
	"orderflow/internal/app/config"
)

func main() {
	root := cli.NewRootCommand(config.New())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "orderflow:", err)
		os.Exit(1)
	}
}
