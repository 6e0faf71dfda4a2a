package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/gameshelf/pkg/app/screens"
)

type App struct {
	controller    screens.Controller
	markdownStyle string
}

func NewApp(controller screens.Controller, markdownStyle string) *App {
	return &App{controller: controller, markdownStyle: markdownStyle}
}

func (a *App) Run(ctx context.Context) error {
	model := screens.NewRootScreen(ctx, a.controller, a.markdownStyle)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
