package main

import (
	"context"

	"github.com/catsplus/radiograb-sub001/cmd/showscan/commands"
	"github.com/catsplus/radiograb-sub001/lib/telemetry"
)

func main() {
	ctx := context.Background()
	tel, _ := telemetry.SetupFromEnv(ctx, "showscan")
	defer tel.Shutdown(ctx)

	commands.Execute()
}
