/*
Command pigment generates mip chains from source images and exports
them as PPM files, driven by a TOML configuration file.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/pigment/pipeline"
)

func main() {
	configPath := flag.String("config", "pigment.toml", "path to the pipeline configuration file")
	flag.Parse()

	config, err := pipeline.LoadConfig(*configPath)
	if err != nil {
		panic(err)
	}

	p, err := pipeline.New(config)
	if err != nil {
		panic(err)
	}

	if err := p.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		_ = p.Shutdown()
	}()

	if err := p.Run(); err != nil {
		panic(err)
	}
}
