package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/terminal"
	"github.com/lixenwraith/snake/terminal/tcellterm"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write a debug log to logs/snake.log")
	rendererFlag = flag.String("renderer", "ansi", "Renderer: ansi, tcell")
	seedFlag     = flag.Uint64("seed", 0, "Food placement seed, 0 for random")
)

// display is a drawable, pollable terminal session
type display interface {
	render.Canvas
	input.Source
	Close() error
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() (code int) {
	logger, logFile := setupLogging(*debugFlag, logDir)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	if err := validateRenderer(*rendererFlag); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	disp, err := openDisplay(*rendererFlag)
	if err != nil {
		logger.Error("terminal init failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			disp.Close()
			terminal.EmergencyReset(os.Stdout)
			// \r\n in case the tty is still raw
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			code = 1
		}
	}()
	defer func() {
		if err := disp.Close(); err != nil {
			logger.Warn("terminal restore failed", zap.Error(err))
		}
	}()

	termWidth, termHeight := disp.Size()
	if err := checkSize(termWidth, termHeight); err != nil {
		// Leave the alternate screen so the message stays visible
		disp.Close()
		logger.Error("terminal too small", zap.Int("width", termWidth), zap.Int("height", termHeight))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	fieldWidth, fieldHeight := render.FieldSize(termWidth, termHeight)
	opts := []engine.Option{engine.WithLogger(logger)}
	if *seedFlag != 0 {
		opts = append(opts, engine.WithRand(rand.New(rand.NewPCG(*seedFlag, *seedFlag))))
	}
	game := engine.New(fieldWidth, fieldHeight, disp, render.NewSurface(disp), opts...)

	logger.Info("session started",
		zap.String("renderer", *rendererFlag),
		zap.Int("field_width", fieldWidth),
		zap.Int("field_height", fieldHeight),
	)

	if !game.ShowWelcome(ctx) {
		return 0
	}
	game.Run(ctx)
	if !game.Quit() {
		game.AwaitDismiss(ctx, constants.GameOverLinger)
	}
	return 0
}

func validateRenderer(name string) error {
	switch name {
	case "ansi", "tcell":
		return nil
	}
	return fmt.Errorf("unknown renderer %q (want ansi or tcell)", name)
}

func openDisplay(name string) (display, error) {
	if name == "tcell" {
		s, err := tcellterm.Open()
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	t, err := terminal.Open()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func checkSize(width, height int) error {
	if width < constants.MinTerminalWidth || height < constants.MinTerminalHeight {
		return fmt.Errorf("terminal too small: %dx%d, need at least %dx%d",
			width, height, constants.MinTerminalWidth, constants.MinTerminalHeight)
	}
	return nil
}
