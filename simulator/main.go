package main

import (
	"fmt"

	"github.com/netvista/telemetry-pipeline/simulator/bootstrap"
)

func main() {
	bootstrap, err := bootstrap.NewBootstrap()
	if err != nil {
		panic(fmt.Sprintf("Failed to create simulator bootstrap: %v", err))
	}

	if err := bootstrap.Start(); err != nil {
		panic(fmt.Sprintf("Failed to start simulator: %v", err))
	}
}
