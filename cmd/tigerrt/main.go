// Command tigerrt runs the bundled Tiger programs on the runtime and prints
// the runtime's primitive manifest.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/tliron/commonlog"
	// import for side effects
	_ "github.com/tliron/commonlog/simple"

	"github.com/zephyrtronium/tigerrt"
	"github.com/zephyrtronium/tigerrt/programs"
)

func main() {
	var cfgPath, prog, cpu, mem string
	var manifest bool
	var n, verbosity int
	flag.StringVar(&cfgPath, "config", "", "TOML configuration file")
	flag.BoolVar(&manifest, "manifest", false, "print the primitive manifest and exit")
	flag.StringVar(&prog, "prog", "queens", "program to run: "+strings.Join(programs.Names(), ", "))
	flag.IntVar(&n, "n", 8, "board size for queens")
	flag.IntVar(&verbosity, "v", -1, "log verbosity, overriding the configuration")
	flag.StringVar(&cpu, "cpuprofile", "", "write a CPU profile to this file")
	flag.StringVar(&mem, "memprofile", "", "write a heap profile to this file")
	flag.Parse()

	if manifest {
		if err := tigerrt.WriteManifest(os.Stdout); err != nil {
			fail(err)
		}
		return
	}

	cfg := tigerrt.DefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = tigerrt.LoadConfig(cfgPath); err != nil {
			fail(err)
		}
	}
	if verbosity >= 0 {
		cfg.Log.Verbosity = verbosity
	}
	var logPath *string
	if cfg.Log.Path != "" {
		logPath = &cfg.Log.Path
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)

	p, ok := programs.Named(prog, n)
	if !ok {
		fail(fmt.Errorf("no program %q with size %d", prog, n))
	}
	os.Exit(profiled(cpu, mem, func() int {
		tigerrt.Chars()
		rt := tigerrt.New(cfg, os.Stdin, os.Stdout, os.Stderr)
		return tigerrt.Run(rt, p)
	}))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "tigerrt:", err)
	os.Exit(2)
}

// profiled calls f, writing CPU and heap profiles to the named files if they
// are not empty.
func profiled(cpu, mem string, f func() int) int {
	if cpu != "" {
		cf, err := os.Create(cpu)
		if err != nil {
			fail(err)
		}
		defer cf.Close()
		if err := pprof.StartCPUProfile(cf); err != nil {
			fail(err)
		}
		defer pprof.StopCPUProfile()
	}
	status := f()
	if mem != "" {
		mf, err := os.Create(mem)
		if err != nil {
			fail(err)
		}
		defer mf.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(mf); err != nil {
			fail(err)
		}
	}
	return status
}
