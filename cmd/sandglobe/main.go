// Package main runs the desert scene simulation headless: a fixed-step
// frame loop over the scene with an orbiting camera, logging stats instead
// of drawing.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/sandglobe/internal/config"
	"github.com/Faultbox/sandglobe/internal/engine/camera"
	"github.com/Faultbox/sandglobe/internal/engine/scene"
	"github.com/Faultbox/sandglobe/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Sandglobe Desert Scene ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("demo finished")
}

func run(cfg *config.Config) error {
	world, err := scene.New(cfg.Scene)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	cam := camera.NewOrbit()
	cam.Distance = cfg.Scene.GroundSize * 0.3

	dt := cfg.Demo.TimeScale / float32(cfg.Demo.FrameRate)
	totalFrames := int(cfg.Demo.Duration.Seconds() * float64(cfg.Demo.FrameRate))

	// Script a few events so the effect systems get exercised: ignite the
	// first cactus a second in, grow everything at the halfway mark.
	igniteFrame := cfg.Demo.FrameRate
	growFrame := totalFrames / 2

	for frame := 0; frame < totalFrames; frame++ {
		if frame == igniteFrame && world.CactusCount() > 0 {
			if err := world.Ignite(0); err != nil {
				return err
			}
		}
		if frame == growFrame {
			for i := 0; i < world.CactusCount(); i++ {
				world.GrowCactus(i, 0.25)
			}
			logger.Info("cacti grown", zap.Int("count", world.CactusCount()))
		}

		world.Update(dt)

		// Slow orbit, one radian per simulated second.
		cam.Yaw += dt
		right, up := cam.Basis()
		world.GenerateBillboards(right, up)

		if frame%cfg.Demo.FrameRate == 0 {
			logger.Debug("frame stats",
				zap.Int("frame", frame),
				zap.Float32("elapsed", world.Elapsed()),
				zap.Int("alive_particles", world.AliveParticles()),
			)
		}
	}

	var dropped uint64
	for _, sys := range world.Systems() {
		dropped += sys.DroppedEmissions()
	}
	logger.Info("simulation complete",
		zap.Float32("simulated_seconds", world.Elapsed()),
		zap.Int("alive_particles", world.AliveParticles()),
		zap.Uint64("dropped_emissions", dropped),
	)

	return nil
}
