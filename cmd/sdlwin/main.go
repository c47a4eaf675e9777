// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/devblok/sdlwin/core"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

var (
	envFile    = flag.String("env", "", "Environment file with configuration overrides (default \".env\" if present)")
	cpuProfile = flag.String("cpuprof", "", "Profile CPU usage to file")
)

func main() {
	flag.Parse()
	os.Exit(run(core.NewSDL()))
}

// run returns the process exit code, 0 on a clean quit
// and -1 when configuration or initialisation fails
func run(lib core.Library) int {
	configuration, err := core.LoadConfiguration(*envFile)
	if err != nil {
		log.WithError(err).Error("configuration")
		return -1
	}
	log.SetLevel(configuration.LogLevel)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.WithError(err).Error("cpu profile")
			return -1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Error("cpu profile")
			return -1
		}
		defer pprof.StopCPUProfile()
	}

	ctx, err := core.NewContext(configuration, lib, log.StandardLogger())
	if err != nil {
		return -1
	}
	defer ctx.Destroy()

	ctx.Run()
	return 0
}
