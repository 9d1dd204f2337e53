package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/spritelist/config"
	"github.com/plus3/spritelist/script"
	"github.com/plus3/spritelist/sprite"
	"go.uber.org/zap"
)

const wispClass = `
Wisp = {}

function Wisp:init()
	self.phase = 0
end

function Wisp:update()
	self.phase = self.phase + 1
	self.sprite:move(math.cos(self.phase / 10), math.sin(self.phase / 10))
	if self.phase > 600 then self.sprite:markForDeletion() end
end
`

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	spriteCount := flag.Int("sprites", 2000, "The number of guys kept alive.")
	shotsPerFrame := flag.Int("shots", 8, "Shots fired per frame.")
	scriptedCount := flag.Int("scripted", 100, "The number of Lua scripted sprites.")
	configPath := flag.String("config", "", "Optional YAML config file.")
	seed := flag.Int64("seed", 1, "Random seed.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting sprite stress test",
		zap.Duration("duration", *duration),
		zap.Int("sprites", *spriteCount),
		zap.Int("scripted", *scriptedCount))

	// 1. Setup frame, registries and driver
	rng := rand.New(rand.NewSource(*seed))
	frame := cfg.Frame()
	driver := sprite.NewDriver(frame, sprite.WithDriverLogger(logger))

	newLayer := func(name string) *sprite.Registry {
		opts := append(cfg.RegistryOptions(frame, logger), sprite.WithName(name))
		return sprite.NewRegistry(opts...)
	}
	blocks := newLayer("blocks")
	guys := newLayer("guys")
	weapons := newLayer("weapons")
	scripted := newLayer("scripted")
	driver.Register("blocks", blocks, sprite.LayerOptions{LowFirst: true})
	driver.Register("guys", guys, sprite.LayerOptions{Shadows: true, TranslucentShadows: true})
	driver.Register("weapons", weapons, sprite.LayerOptions{LowFirst: true})
	driver.Register("scripted", scripted, sprite.LayerOptions{Cloaked: true})

	lua := script.New(frame, script.WithLogger(logger))
	defer lua.Close()
	if err := lua.DoString(wispClass); err != nil {
		logger.Fatal("loading scripts", zap.Error(err))
	}

	population := &populationSystem{rng: rng, layer: guys, target: *spriteCount}
	collisions := &collisionSystem{guys: guys, weapons: weapons}
	driver.AddSystem(population)
	driver.AddSystem(&shootingSystem{rng: rng, weapons: weapons, perTick: *shotsPerFrame})
	driver.AddSystem(collisions)
	driver.AddSystem(&script.UpdateSystem{Runtime: lua, Layer: scripted, Method: "update"})
	driver.AddSystem(&freezeSystem{period: 120})

	// 2. Populate the layers
	logger.Info("populating layers")
	for i := 0; i < *spriteCount; i++ {
		guys.Add(newWalker(rng, frame, 1+rng.Intn(64)))
	}
	for i := 0; i < 16; i++ {
		b := sprite.NewMovingBlock(frame)
		b.Combo = i
		b.Clk = 1
		b.X = sprite.FromInt(i * 16)
		blocks.Add(b)
	}
	for i := 0; i < *scriptedCount; i++ {
		w := newWalker(rng, frame, 100)
		if _, err := lua.Attach(w, "Wisp"); err != nil {
			logger.Fatal("attaching script", zap.Error(err))
		}
		scripted.Add(w)
	}

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Sprites:        *spriteCount,
		Shots:          *shotsPerFrame,
		Scripted:       *scriptedCount,
		Capacity:       cfg.Registry.Capacity,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var canvas countingCanvas
	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			driver.Once(float64(deltaTime)/float64(time.Second), &canvas)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Spawns = population.spawns
	report.Hits = collisions.hits
	report.TileDraws = canvas.tiles
	report.ComboDraws = canvas.combos
	report.Outlines = canvas.outlines
	for name, r := range driver.Layers() {
		if err := r.CheckConsistency(); err != nil {
			logger.Error("registry inconsistent", zap.String("layer", name), zap.Error(err))
		}
		report.Layers = append(report.Layers, LayerReport{Name: name, Count: r.Count()})
	}
	report.Passes = driver.Stats().Passes

	logger.Info("simulation finished", zap.Int64("updates", totalUpdates))

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}
