package main

import (
	"fmt"

	"github.com/netvista/telemetry-pipeline/processor/bootstrap"
)

func main() {
	bootstrap, err := bootstrap.NewBootstrap()
	if err != nil {
		panic(fmt.Sprintf("Failed to create processor bootstrap: %v", err))
	}

	if err := bootstrap.Start(); err != nil {
		panic(fmt.Sprintf("Failed to start processor: %v", err))
	}
}
