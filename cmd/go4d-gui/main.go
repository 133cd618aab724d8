package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/go4d/pkg/animation"
	"github.com/philipparndt/go4d/pkg/config"
	"github.com/philipparndt/go4d/pkg/rotor"
	"github.com/philipparndt/go4d/pkg/viewer"
	"github.com/philipparndt/go4d/pkg/watcher"
	"github.com/philipparndt/go4d/version"
)

type App struct {
	window   fyne.Window
	view     *viewer.PolytopeView
	sliders  [rotor.PlaneCount]*widget.Slider
	rateText [rotor.PlaneCount]*widget.Label
	shape    *widget.Label
	freeze   *widget.Button
}

func main() {
	a := app.New()
	w := a.NewWindow("go4d - 4D Polytope Viewer " + version.GetVersion())

	cfg := config.Default()
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	pal, err := cfg.Style.Palette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid style: %v\n", err)
		os.Exit(1)
	}
	state := animation.New(cfg.Options(cfg.Rand()))

	appInstance := &App{window: w}
	appInstance.setupMainUI(state, pal)

	if configPath != "" {
		stop := appInstance.watchConfig(configPath)
		defer stop()
	}

	w.Resize(fyne.NewSize(float32(cfg.Window.Width)+280, float32(cfg.Window.Height)))
	appInstance.view.Start()
	w.ShowAndRun()
}

func (a *App) setupMainUI(state *animation.State, pal config.Palette) {
	a.view = viewer.NewPolytopeView(state, pal)
	a.view.SetOnChanged(a.syncControls)

	a.shape = widget.NewLabel("")
	a.shape.TextStyle = fyne.TextStyle{Bold: true}

	changeButton := widget.NewButton("Change Shape", func() {
		a.view.Dispatch(animation.NextShape{})
	})

	a.freeze = widget.NewButton("", func() {
		a.view.Dispatch(animation.ToggleFreeRotation{})
	})

	controls := container.NewVBox()
	for _, plane := range rotor.Planes() {
		controls.Add(a.rateControl(plane))
	}

	resetAll := widget.NewButton("Reset Rates", func() {
		a.view.Dispatch(animation.KeyPress{Key: animation.KeyBackspace})
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Right-drag (or drag) to rotate\n" +
			"• Scroll to zoom in/out\n" +
			"• Space: next shape, F: freeze\n" +
			"• Backspace: stop, Home: reset view",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		a.shape,
		changeButton,
		a.freeze,
		widget.NewSeparator(),
		widget.NewLabel("Rotation rates:"),
		controls,
		resetAll,
		widget.NewSeparator(),
		instructions,
	)

	panelScroll := container.NewVScroll(panel)
	panelScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(
		nil,         // top
		nil,         // bottom
		nil,         // left
		panelScroll, // right
		a.view,      // center
	)

	a.window.SetContent(content)
	a.window.Canvas().SetOnTypedKey(a.view.HandleKey)
	a.syncControls()
}

// rateControl builds the slider, value text and reset button for one plane
func (a *App) rateControl(plane rotor.Plane) fyne.CanvasObject {
	slider := widget.NewSlider(animation.MinRate, animation.MaxRate)
	slider.Step = animation.RateStep
	slider.OnChanged = func(value float64) {
		a.view.Dispatch(animation.SliderSet{Plane: plane, Value: value})
		a.rateText[plane].SetText(formatRate(plane, a.view.State().Rates()[plane]))
	}

	text := widget.NewLabel("")
	reset := widget.NewButton("Reset", func() {
		a.view.Dispatch(animation.Reset{Plane: plane})
		a.syncControls()
	})

	a.sliders[plane] = slider
	a.rateText[plane] = text

	return container.NewBorder(nil, nil, text, reset, slider)
}

// syncControls updates every control from the state
func (a *App) syncControls() {
	state := a.view.State()
	a.shape.SetText(state.ShapeName())

	if state.FreeRotation() {
		a.freeze.SetText("Freeze")
	} else {
		a.freeze.SetText("Rotate")
	}

	rates := state.Rates()
	for _, plane := range rotor.Planes() {
		if a.sliders[plane] == nil {
			continue
		}
		a.sliders[plane].Value = rates[plane]
		a.sliders[plane].Refresh()
		a.rateText[plane].SetText(formatRate(plane, rates[plane]))
	}
}

func formatRate(plane rotor.Plane, rate float64) string {
	return fmt.Sprintf("%s %+.3f", plane, rate)
}

// watchConfig reloads rates, style and the free rotation flag when the config
// file changes. The callback hops onto the fyne thread before touching state.
func (a *App) watchConfig(path string) func() {
	fw, err := watcher.NewFileWatcher(200 * time.Millisecond)
	if err != nil {
		fmt.Printf("Warning: Could not create file watcher: %v\n", err)
		return func() {}
	}

	if err := fw.Watch(path, func(string) {
		cfg, err := config.Load(path)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.applyConfig(cfg)
		})
	}); err != nil {
		fmt.Printf("Warning: Could not watch %s: %v\n", path, err)
		_ = fw.Close()
		return func() {}
	}

	ctx, cancel := context.WithCancel(context.Background())
	fw.Start(ctx)
	fmt.Printf("Watching %s for changes\n", path)

	return func() {
		cancel()
		_ = fw.Close()
	}
}

func (a *App) applyConfig(cfg *config.Config) {
	state := a.view.State()
	state.SetRates(cfg.ApplyRates(state.Rates()))
	state.SetFreeRotation(cfg.FreeRotation)
	if pal, err := cfg.Style.Palette(); err == nil {
		a.view.SetPalette(pal)
	}
	a.syncControls()
	fmt.Printf("Reloaded %s\n", cfg.Summary())
}
