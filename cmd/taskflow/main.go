package main

import (
	"context"
	"os"

	"taskflow/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background(), nil); err != nil {
		os.Exit(1)
	}
}
