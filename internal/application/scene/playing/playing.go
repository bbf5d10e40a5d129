// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/swordstep/internal/application/scene"
	"github.com/younwookim/swordstep/internal/application/state"
	"github.com/younwookim/swordstep/internal/application/system"
	"github.com/younwookim/swordstep/internal/domain/entity"
	"github.com/younwookim/swordstep/internal/infrastructure/config"
	"github.com/younwookim/swordstep/internal/infrastructure/logger"
)

// Colors for rendering
var (
	colorWall    = color.RGBA{80, 80, 100, 255}
	colorFloor   = color.RGBA{40, 40, 60, 255}
	colorPit     = color.RGBA{10, 10, 16, 255}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorAttack  = color.RGBA{230, 120, 90, 255}
	colorDash    = color.RGBA{120, 180, 255, 255}
	colorShadow  = color.RGBA{0, 0, 0, 110}
	colorFacing  = color.RGBA{255, 255, 255, 220}
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// Options configures optional scene features
type Options struct {
	RecordPath string          // record input to this file when not empty
	Loader     *config.Loader  // reloads tuning on watcher events
	Watcher    *config.Watcher // nil disables hot reload
	Logger     *slog.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	arena       *Arena
	inputSystem *system.InputSystem
	state       state.GameState
	stageName   string
	screenW     int
	screenH     int
	ppu         float64

	loader  *config.Loader
	watcher *config.Watcher
	logger  *slog.Logger

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	log := logger.OrDiscard(opts.Logger)
	arena, err := NewArena(cfg, log)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		arena:          arena,
		inputSystem:    system.NewInputSystem(&cfg.Tuning.Input),
		state:          state.StatePlaying,
		stageName:      cfg.Stage.ID,
		screenW:        cfg.Tuning.Display.ScreenWidth,
		screenH:        cfg.Tuning.Display.ScreenHeight,
		ppu:            cfg.Tuning.Display.PixelsPerUnit,
		loader:         opts.Loader,
		watcher:        opts.Watcher,
		logger:         log,
		recordFilename: opts.RecordPath,
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = NewRecorder(p.stageName, cfg.Tuning.Display.TickRate)
		log.Info("recording enabled", "file", opts.RecordPath)
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.pollReload()

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	// Check for pause
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.restart()
	}

	input := p.inputSystem.GetInput()

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.arena.Step(input)
}

// restart resets the arena and, when recording, starts a new recording so
// the saved input replays from the restart.
func (p *Playing) restart() {
	p.arena.Reset()
	p.state = state.StatePlaying

	// Reset recorder if recording
	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.stageName, p.arena.Tuning().Display.TickRate)
		p.logger.Info("recording restarted", "file", p.recordFilename)
	}
}

// pollReload applies tuning changes published by the watcher
func (p *Playing) pollReload() {
	if p.watcher == nil || p.loader == nil {
		return
	}
	for {
		name, ok := p.watcher.Poll()
		if !ok {
			return
		}
		if filepath.Base(name) != config.TuningFile {
			continue
		}
		p.reloadTuning()
	}
}

func (p *Playing) reloadTuning() {
	tuning, err := p.loader.LoadTuning()
	if err != nil {
		p.logger.Warn("tuning reload rejected", "error", err)
		return
	}
	if err := p.arena.Reconfigure(tuning); err != nil {
		p.logger.Warn("tuning reload rejected", "error", err)
		return
	}
	p.inputSystem.SetConfig(tuning.Input)
	p.logger.Info("tuning reloaded", "dir", p.loader.BasePath())
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "error", err)
	} else {
		p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

// Arena exposes the simulation (for tests and the HUD)
func (p *Playing) Arena() *Arena { return p.arena }

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	p.drawTiles(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawHUD(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

// camera centers the player and clamps to the arena
func (p *Playing) camera() (float64, float64) {
	pos := p.arena.Position()
	w, d := p.arena.Stage().Size()
	camX := clamp(pos.X*p.ppu-float64(p.screenW)/2, 0, w*p.ppu-float64(p.screenW))
	camY := clamp(pos.Z*p.ppu-float64(p.screenH)/2, 0, d*p.ppu-float64(p.screenH))
	return camX, camY
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	stage := p.arena.Stage()
	size := float32(stage.TileSize * p.ppu)
	for z := 0; z < stage.Depth; z++ {
		for x := 0; x < stage.Width; x++ {
			var c color.RGBA
			switch stage.GetTile(x, z).Type {
			case entity.TileWall:
				c = colorWall
			case entity.TilePit:
				c = colorPit
			default:
				c = colorFloor
			}
			sx := float32(float64(x)*stage.TileSize*p.ppu - camX)
			sy := float32(float64(z)*stage.TileSize*p.ppu - camY)
			vector.FillRect(screen, sx, sy, size-1, size-1, c, false)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	snap := p.arena.Snapshot()
	pose := p.arena.Pose()
	r := p.arena.Radius() * p.ppu

	// Shadow stays on the floor and shrinks with height
	sx := pose.Position.X*p.ppu - camX
	sy := pose.Position.Z*p.ppu - camY
	shrink := 1 / (1 + math.Max(pose.Position.Y, 0))
	vector.FillCircle(screen, float32(sx), float32(sy), float32(r*shrink), colorShadow, true)

	// Body is lifted by its height
	by := sy - pose.Position.Y*p.ppu
	c := colorPlayer
	switch snap.State {
	case state.Attacking:
		c = colorAttack
	case state.Dashing:
		c = colorDash
	}
	vector.FillCircle(screen, float32(sx), float32(by), float32(r), c, true)

	f := pose.Forward()
	vector.StrokeLine(screen, float32(sx), float32(by),
		float32(sx+f.X*r*1.6), float32(by+f.Z*r*1.6), 2, colorFacing, true)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	snap := p.arena.Snapshot()
	board := p.arena.Board()
	stats := p.arena.Stats()
	msg := fmt.Sprintf("%s  src:%s  vy:%.2f  grounded:%v\n"+
		"Walking:%v Jumping:%v Dashing:%v IsAttacking:%v AttackCount:%d\n"+
		"dash cd:%.2f  combo max:%d  respawns:%d",
		snap.State, snap.Step.Source, snap.VelocityY, snap.Grounded,
		board.Bool(system.ParamWalking), board.Bool(system.ParamJumping),
		board.Bool(system.ParamDashing), board.Bool(system.ParamIsAttacking),
		board.Integer(system.ParamAttackCount),
		snap.DashCooldown, stats.MaxCombo, stats.Respawns)
	if p.recorder != nil {
		msg += fmt.Sprintf("\nREC %d", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED - ESC to resume", p.screenW/2-66, p.screenH/2)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("entering stage", "stage", p.stageName)
}

// OnExit saves any pending recording and stops hot reload
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.saveRecording()
	}
	if p.watcher != nil {
		_ = p.watcher.Close()
	}
}

// Layout returns the logical screen size
func (p *Playing) Layout(_, _ int) (int, int) {
	return p.screenW, p.screenH
}
