package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/heapkit/fibheap/util"
)

// config mirrors server/config.go's per-subsystem config map, shrunk to
// the two subsystems this demo actually has: which way the heap orders
// keys, and how chatty the logger is.
type config struct {
	Heap struct {
		Direction string `toml:"direction"`
	} `toml:"heap"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

func defaultConfig() config {
	var c config
	c.Heap.Direction = "asc"
	c.Log.Level = "info"
	return c
}

// loadConfig reads path if it exists, falling back to defaults
// otherwise — the same "config directory is optional" posture
// cmd/daemon.go takes toward its own config directory.
func loadConfig(path string) config {
	cfg := defaultConfig()

	exists, err := util.FileExists(path)
	if err != nil || !exists {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fibheapdemo: invalid config %s: %v\n", path, err)
	}
	return cfg
}
