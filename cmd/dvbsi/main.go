package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/k-danil/go-dvbsi"
	"github.com/pkg/profile"
	"github.com/q191201771/naza/pkg/nazalog"
	"golang.org/x/sync/errgroup"
)

var (
	standard     = flag.String("standard", "dvb", "the tag space to parse with (dvb, atsc or isdb)")
	hexInput     = flag.Bool("hex", false, "if yes, input files hold a hex string instead of raw bytes")
	cpuProfiling = flag.Bool("cp", false, "if yes, cpu profiling is enabled")
)

// stdLogger lets the registry log through nazalog
type stdLogger struct{}

func (stdLogger) Print(v ...interface{})                 { nazalog.Info(v...) }
func (stdLogger) Printf(format string, v ...interface{}) { nazalog.Infof(format, v...) }
func (stdLogger) Fatal(v ...interface{})                 { nazalog.Fatal(v...) }
func (stdLogger) Fatalf(format string, v ...interface{}) { nazalog.Fatalf(format, v...) }

func main() {
	flag.Parse()

	if *cpuProfiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	var s dvbsi.Standard
	switch strings.ToLower(*standard) {
	case "dvb":
		s = dvbsi.StandardDVB
	case "atsc":
		s = dvbsi.StandardATSC
	case "isdb":
		s = dvbsi.StandardISDB
	default:
		nazalog.Fatalf("main: unknown standard %q", *standard)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		nazalog.Fatal("main: at least one descriptor loop file is required")
	}

	r := dvbsi.NewRegistry(s, dvbsi.RegistryOptLogger(stdLogger{}))

	// Files are parsed concurrently, chains are printed in argument order once
	// everything succeeded
	chains := make([]dvbsi.Descriptors, len(paths))
	var g errgroup.Group
	for idx, path := range paths {
		idx, path := idx, path
		g.Go(func() error {
			bs, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("main: reading %s failed: %w", path, err)
			}
			if *hexInput {
				if bs, err = hex.DecodeString(strings.TrimSpace(string(bs))); err != nil {
					return fmt.Errorf("main: decoding %s failed: %w", path, err)
				}
			}
			if chains[idx], err = r.Parse(bs); err != nil {
				return fmt.Errorf("main: parsing %s failed: %w", path, err)
			}
			return nil
		})
	}
	err := g.Wait()

	for idx, ds := range chains {
		if ds == nil {
			continue
		}
		nazalog.Infof("main: %s: %d descriptors", paths[idx], len(ds))
		r.Print(ds)
		ds.Close()
	}
	if err != nil {
		nazalog.Fatalf("%s", err)
	}
}
