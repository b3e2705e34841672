package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
	"github.com/rocketscienceinc/connectfour/internal/view"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	model, err := newModel(logger, conf)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, programOptions(ctx, conf)...)

	log.Info("Starting game")
	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			log.Info("Program killed, shutting down")
			return nil
		}

		return fmt.Errorf("terminal program failed: %w", err)
	}

	log.Info("Game closed")

	return nil
}

// newGameStarter - every chosen preset gets its own engine behind a game manager.
func newGameStarter(logger *slog.Logger) view.GameStarter {
	return func(preset entity.Preset) (view.Game, error) {
		engine, err := connectfour.NewFromPreset(preset)
		if err != nil {
			return nil, fmt.Errorf("could not create engine: %w", err)
		}

		return usecase.NewGameManager(logger, preset, engine), nil
	}
}

func newModel(logger *slog.Logger, conf *config.Config) (view.Model, error) {
	model := view.New(logger, newGameStarter(logger), view.Theme{
		PlayerOneColor: conf.UI.PlayerOneColor,
		PlayerTwoColor: conf.UI.PlayerTwoColor,
	})

	preset, ok, err := conf.Board.GetPreset()
	if err != nil {
		return model, fmt.Errorf("invalid config: %w", err)
	}

	if !ok {
		return model, nil
	}

	model, err = model.WithPreset(preset)
	if err != nil {
		return model, fmt.Errorf("could not start configured game: %w", err)
	}

	return model, nil
}

func programOptions(ctx context.Context, conf *config.Config) []tea.ProgramOption {
	options := []tea.ProgramOption{tea.WithContext(ctx)}

	if !conf.UI.Inline {
		options = append(options, tea.WithAltScreen())

		// click positions only line up with the board when it is drawn from the top of the screen
		if !conf.UI.DisableMouse {
			options = append(options, tea.WithMouseCellMotion())
		}
	}

	return options
}
