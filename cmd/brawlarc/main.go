package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/ashenfell/brawlarc/audio"
	"github.com/ashenfell/brawlarc/data"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/systems"
)

func main() {
	var (
		seed       = flag.Uint64("seed", uint64(time.Now().UnixNano()), "simulation rng seed")
		configPath = flag.String("config", "", "optional YAML tuning file")
		charIndex  = flag.Int("char", 0, "character roster slot")
		mute       = flag.Bool("mute", false, "disable audio")
		profMode   = flag.String("profile", "", "enable profiling: cpu or mem")
	)
	flag.Parse()

	switch *profMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", *profMode)
		os.Exit(2)
	}

	if err := data.LoadConfig(*configPath); err != nil {
		log.Fatalf("config: %v", err)
	}

	world := engine.NewSimulationWorld(*seed)
	systems.Register(world)
	if systems.SpawnPlayer(world, *charIndex).IsNull() {
		log.Fatal("failed to spawn player")
	}
	scheduler := engine.NewScheduler(world)
	intents := engine.MustGetResource[*engine.IntentQueue](world.Resources)

	cues := audio.NewCues(*mute)
	if err := cues.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		log.Printf("audio unavailable: %v", err)
	}
	defer cues.Cleanup()

	client, err := NewClient(scheduler, intents, cues)
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	defer client.Close()

	client.Run()
}
