package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/theflywheel/fixedmap"
)

// Options holds the example's command line flags.
type Options struct {
	Capacity int  `short:"c" long:"capacity" default:"10" description:"maximum number of entries"`
	Keys     int  `short:"n" long:"keys" default:"12" description:"number of keys to try to insert"`
	Verbose  bool `short:"v" long:"verbose" description:"log map events at debug level"`
}

func main() {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger := zap.NewNop()
	if opts.Verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(opts, logger); err != nil {
		logger.Error("example failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts *Options, logger *zap.Logger) error {
	m, err := fixedmap.New[int](opts.Capacity, fixedmap.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create map: %w", err)
	}
	fmt.Printf("Map created: capacity=%d slots=%d\n", m.Cap(), m.SlotCount())

	// Insert until the map refuses new keys
	for i := 0; i < opts.Keys; i++ {
		key := fmt.Sprintf("key-%d", i)
		if !m.Set(key, i*100) {
			fmt.Printf("Set %s rejected (load %.2f)\n", key, m.Load())
		}
	}
	fmt.Printf("Inserted %d keys, load %.2f\n", m.Len(), m.Load())

	for i := 0; i < opts.Keys; i += 2 {
		key := fmt.Sprintf("key-%d", i)
		if v, ok := m.Get(key); ok {
			fmt.Printf("%s => %d\n", key, v)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Overwriting works even when the map is full
	if m.Set("key-0", 999) {
		v, _ := m.Get("key-0")
		fmt.Printf("Updated key-0 => %d\n", v)
	}

	if v, ok := m.Delete("key-1"); ok {
		fmt.Printf("Deleted key-1 (was %d), load %.2f\n", v, m.Load())
	}

	fmt.Println("Example completed successfully")
	return nil
}
