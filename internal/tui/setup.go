package tui

import (
	"vaultview/internal/config"
	"vaultview/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"
)

var currencyOptions = []string{"EUR", "USD", "GBP", "CHF"}

type setupValues struct {
	currency string
	theme    string
}

// setupForm wraps the first-run huh wizard.
type setupForm struct {
	form *huh.Form
	vals *setupValues
}

func newSetupForm(cfg *config.Config) *setupForm {
	vals := &setupValues{
		currency: cfg.Display.Currency,
		theme:    cfg.Display.Theme,
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display currency").
				Description("Used for the balance and profit figures.").
				Options(huh.NewOptions(currencyOptions...)...).
				Value(&vals.currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)

	return &setupForm{form: form, vals: vals}
}

func (s *setupForm) Init() tea.Cmd {
	return s.form.Init()
}

func (s *setupForm) Resize(w, h int) {
	s.form = s.form.WithWidth(w).WithHeight(h)
}

func (s *setupForm) View() string {
	return s.form.View()
}

func (a App) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm.form = f
	}

	if a.setupForm.form.State == huh.StateCompleted {
		a.cfg.Display.Currency = a.setupForm.vals.currency
		a.cfg.Display.Theme = a.setupForm.vals.theme
		theme.SetActive(a.cfg.Display.Theme)
		if err := config.Save(a.cfg); err != nil {
			logrus.WithError(err).Warn("could not save config, settings apply for this session only")
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.form.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}
