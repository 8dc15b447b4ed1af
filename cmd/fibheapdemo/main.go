// Command fibheapdemo drives a fibheap.Heap through a short operation
// sequence and logs each step, reading its heap direction and log level
// from an optional TOML config file. It is not part of the library's
// public contract (spec.md scopes I/O and a CLI out) — it plays the
// same "one small binary per subsystem" role cmd/daemon.go and
// cmd/repl.go play for the teacher this repo is grounded on.
package main

import (
	"os"

	"github.com/heapkit/fibheap"
	"github.com/heapkit/fibheap/util"
)

func main() {
	path := "fibheapdemo.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg := loadConfig(path)

	log := util.NewLogger(cfg.Log.Level)
	log.Infof("starting fibheapdemo, direction=%s", cfg.Heap.Direction)

	ascending := fibheap.Natural[int]()
	comparator := ascending
	if cfg.Heap.Direction == "desc" {
		comparator = func(a, b int) int { return ascending(b, a) }
	}

	h := fibheap.New[int, string](comparator)

	sample := []fibheap.Pair[int, string]{
		{Key: 30, Value: "thirty"},
		{Key: 10, Value: "ten"},
		{Key: 40, Value: "forty"},
		{Key: 20, Value: "twenty"},
	}
	handles := make(map[int]fibheap.Handle[int, string], len(sample))
	for _, p := range sample {
		hnd := h.Insert(p.Key, p.Value)
		handles[p.Key] = hnd
		log.Infof("inserted key=%d value=%s", p.Key, p.Value)
	}
	log.Infof("%s", h.String())

	if min, ok := h.Peek(); ok {
		log.Infof("peek: key=%d value=%s", min.Key(), min.Value())
	}

	if err := h.DecreaseKey(handles[40], 5); err != nil {
		log.WithError(err).Error("decrease-key failed")
	} else {
		log.Info("decreased key 40 -> 5")
	}

	if err := h.Delete(handles[20]); err != nil {
		log.WithError(err).Error("delete failed")
	} else {
		log.Info("deleted key 20")
	}

	for {
		k, v, ok := h.ExtractMin()
		if !ok {
			break
		}
		log.Infof("extract-min: key=%d value=%s", k, v)
	}

	if problems := h.CheckInvariants(); len(problems) > 0 {
		for _, p := range problems {
			log.Error(p)
		}
		os.Exit(1)
	}
	log.Info("done")
}
