package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/leterax/capsule3d/pkg/config"
	"github.com/leterax/capsule3d/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Starting capsule3d...")

	cfg, err := config.Default()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Run()
}
