package sprite

import (
	"context"
	"iter"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// DriverStats provides statistics about frame execution.
type DriverStats struct {
	Frames          int64
	PassCount       int
	TotalExecutions int64
	Passes          []PassStats
}

// PassStats provides execution statistics for one pass of the frame, such as
// a layer's animate or draw step or a system.
type PassStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type passStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newPassStats(name string) *passStatsInternal {
	return &passStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (p *passStatsInternal) record(d time.Duration) {
	p.executionCount++
	p.lastDuration = d
	p.totalDuration += d
	if d < p.minDuration {
		p.minDuration = d
	}
	if d > p.maxDuration {
		p.maxDuration = d
	}
}

// LayerOptions controls how a registered registry is drawn.
type LayerOptions struct {
	// LowFirst draws the lowest index first.
	LowFirst bool
	// Shadows enables the shadow pass for the layer.
	Shadows bool
	// TranslucentShadows draws shadows with the translucent style.
	TranslucentShadows bool
	// Cloaked draws the second pass with DrawCloaked2 instead of Draw2.
	Cloaked bool
}

type layer struct {
	name     string
	registry *Registry
	opts     LayerOptions
	animate  *passStatsInternal
	draw     *passStatsInternal
}

// Driver sequences one game frame: every layer animates, systems run,
// queued commands are applied, then layers draw in registration order.
type Driver struct {
	frame       *Frame
	logger      *zap.Logger
	commands    *Commands
	layers      []*layer
	systems     []System
	systemStats []*passStatsInternal
	frames      int64
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

func WithDriverLogger(l *zap.Logger) DriverOption {
	return func(d *Driver) { d.logger = l }
}

// NewDriver creates a driver for the given frame state.
func NewDriver(frame *Frame, opts ...DriverOption) *Driver {
	if frame == nil {
		frame = NewFrame()
	}
	d := &Driver{
		frame:    frame,
		logger:   zap.NewNop(),
		commands: NewCommands(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) Frame() *Frame { return d.frame }

// Commands returns the buffer flushed at the end of every animate phase.
func (d *Driver) Commands() *Commands { return d.commands }

// Register adds a registry as a named layer.
func (d *Driver) Register(name string, r *Registry, opts LayerOptions) {
	d.layers = append(d.layers, &layer{
		name:     name,
		registry: r,
		opts:     opts,
		animate:  newPassStats(name + ".animate"),
		draw:     newPassStats(name + ".draw"),
	})
}

// Layer returns the registry registered under name.
func (d *Driver) Layer(name string) *Registry {
	for _, l := range d.layers {
		if l.name == name {
			return l.registry
		}
	}
	return nil
}

// Layers iterates the registered layers in registration order.
func (d *Driver) Layers() iter.Seq2[string, *Registry] {
	return func(yield func(string, *Registry) bool) {
		for _, l := range d.layers {
			if !yield(l.name, l.registry) {
				return
			}
		}
	}
}

// AddSystem appends a system; systems run in the order they were added.
func (d *Driver) AddSystem(system System) {
	d.systems = append(d.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	d.systemStats = append(d.systemStats, newPassStats(systemType.Name()))
}

// Once runs a single frame. The draw phase is skipped when dst is nil.
func (d *Driver) Once(dt float64, dst Canvas) {
	frame := &UpdateFrame{
		DeltaTime: dt,
		Index:     d.frames,
		Commands:  d.commands,
		Frame:     d.frame,
	}

	for _, l := range d.layers {
		start := time.Now()
		l.registry.Animate()
		l.animate.record(time.Since(start))
	}

	for i, system := range d.systems {
		start := time.Now()
		system.Execute(frame)
		d.systemStats[i].record(time.Since(start))
	}

	if n := d.commands.Len(); n > 0 {
		d.logger.Debug("flushing sprite commands", zap.Int64("frame", d.frames), zap.Int("commands", n))
	}
	d.commands.Flush()

	if dst != nil {
		d.Draw(dst)
	}
	d.frames++
}

// Draw runs the shadow, main and second draw passes over every layer.
func (d *Driver) Draw(dst Canvas) {
	for _, l := range d.layers {
		start := time.Now()
		if l.opts.Shadows {
			l.registry.DrawShadow(dst, l.opts.TranslucentShadows, l.opts.LowFirst)
		}
		l.registry.Draw(dst, l.opts.LowFirst)
		l.draw.record(time.Since(start))
	}
	for _, l := range d.layers {
		if l.opts.Cloaked {
			l.registry.DrawCloaked2(dst, l.opts.LowFirst)
		} else {
			l.registry.Draw2(dst, l.opts.LowFirst)
		}
	}
}

// Run executes frames at the given interval until the context is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration, dst Canvas) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.logger.Info("sprite driver started", zap.Duration("interval", interval), zap.Int("layers", len(d.layers)))
	defer func() {
		d.logger.Info("sprite driver stopped", zap.Int64("frames", d.frames))
	}()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			d.Once(dt, dst)
		}
	}
}

// Stats returns statistics about frame execution.
func (d *Driver) Stats() *DriverStats {
	internals := make([]*passStatsInternal, 0, len(d.layers)*2+len(d.systemStats))
	for _, l := range d.layers {
		internals = append(internals, l.animate)
	}
	internals = append(internals, d.systemStats...)
	for _, l := range d.layers {
		internals = append(internals, l.draw)
	}

	stats := &DriverStats{
		Frames:    d.frames,
		PassCount: len(internals),
		Passes:    make([]PassStats, len(internals)),
	}

	var totalExecs int64
	for i, internal := range internals {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Passes[i] = PassStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
