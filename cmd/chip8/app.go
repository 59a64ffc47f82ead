package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/controller"
	"github.com/hexaflex/chip8/cpu"
	"github.com/hexaflex/chip8/devices"
	"github.com/hexaflex/chip8/devices/keypad"
	"github.com/hexaflex/chip8/devices/screen"
)

// App defines application context.
type App struct {
	config       *Config                // Application configuration.
	window       *glfw.Window           // OpenGL/GLFW context.
	cpu          *controller.Controller // VM with program to be run.
	display      *screen.Device         // Framebuffer renderer.
	keypad       *keypad.Device         // Host keyboard mapping.
	devices      devices.Map            // All connected peripherals.
	titleUpdated time.Time              // Value used to periodically update window title.
	lastRendered time.Time              // Last time a frame was rendered.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config
	a.display = screen.New()
	a.cpu = controller.New(a.printTrace, config.Frequency)

	if config.Seed != 0 {
		a.cpu.CPU().Seed(config.Seed)
	}

	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	a.keypad = keypad.New(a.window, keypad.DefaultLayout)
	a.devices.Connect(a.display)
	a.devices.Connect(a.keypad)

	if err := a.devices.Startup(); err != nil {
		return err
	}

	log.Println(Version())
	printHelp()

	if err := a.loadProgram(); err != nil {
		return err
	}

	if !a.config.Debug {
		a.cpu.Start()
	}

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// mainLoop performs all main loop operations.
func (a *App) mainLoop() {
	glfw.PollEvents()

	machine := a.cpu.CPU()

	if err := a.devices.Update(machine); err != nil {
		log.Println(err)
	}

	beep, err := a.cpu.Update(time.Now())
	if err != nil {
		log.Println(err)
	}

	if beep {
		fmt.Print("\a")
	}

	// Periodically render display contents.
	if time.Since(a.lastRendered) >= time.Second/60 {
		a.lastRendered = time.Now()
		gl.Clear(gl.COLOR_BUFFER_BIT)
		a.display.Draw()
		a.window.SwapBuffers()
	}

	// Periodically update the window title to show the current cpu clock frequency.
	if time.Since(a.titleUpdated) >= time.Second*2 {
		a.titleUpdated = time.Now()
		freq := prettyFrequency(a.cpu.Frequency())
		a.window.SetTitle(fmt.Sprintf("%s %s - %s", AppName, AppVersion, freq))
	}

	if !a.cpu.Running() {
		time.Sleep(time.Millisecond)
	}
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	a.cpu.Stop()

	if err := a.devices.Shutdown(); err != nil {
		log.Println(err)
	}

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	var err error

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	case glfw.KeyF5:
		err = a.loadProgram()
	case glfw.KeyF6:
		a.cpu.ToggleRun()
	case glfw.KeyF7:
		err = a.cpu.Step()
	case glfw.KeyF8:
		a.config.PrintTrace = !a.config.PrintTrace
	}

	if err != nil {
		log.Println(err)
	}
}

func (a *App) focusCallback(_ *glfw.Window, focused bool) {
	if !focused {
		a.keypad.Release(a.cpu.CPU())
	}
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := cpu.DisplayWidth * a.config.ScaleFactor
	height := cpu.DisplayHeight * a.config.ScaleFactor

	if a.config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Maximized, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.Maximized, glfw.False)
	}

	a.window, err = glfw.CreateWindow(width, height, AppName, monitor, nil)
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)
	a.window.SetFocusCallback(a.focusCallback)

	glfw.SwapInterval(0)

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)
	return nil
}

// loadProgram loads the current program from disk and restarts the cpu.
func (a *App) loadProgram() error {
	log.Println("loading", a.config.Program)

	fd, err := os.Open(a.config.Program)
	if err != nil {
		return err
	}

	defer fd.Close()

	program, err := ioutil.ReadAll(fd)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", a.config.Program)
	}

	running := a.cpu.Running()
	a.cpu.Stop()

	if err := a.cpu.Startup(program); err != nil {
		return errors.Wrapf(err, "failed to load %s", a.config.Program)
	}

	if running {
		a.cpu.Start()
	}

	return nil
}

// printTrace prints instruction trace data. This can be toggled
// on off through a.config.PrintTrace.
func (a *App) printTrace(i *cpu.Instruction) {
	if !a.config.PrintTrace {
		return
	}

	var sb strings.Builder
	sb.Grow(64)

	name, _ := arch.Name(i.Kind)

	switch i.Kind {
	case arch.JP, arch.CALL, arch.LDI, arch.JPV0:
		fmt.Fprintf(&sb, "%03x", i.NNN())
	case arch.SEB, arch.SNEB, arch.LDB, arch.ADDB, arch.RND:
		fmt.Fprintf(&sb, "%s %02x", arch.RegisterName(i.X()), i.NN())
	case arch.DRW:
		fmt.Fprintf(&sb, "%s, %s, %x", arch.RegisterName(i.X()), arch.RegisterName(i.Y()), i.N())
	case arch.NOP, arch.CLS, arch.RET:
	default:
		fmt.Fprintf(&sb, "%s, %s", arch.RegisterName(i.X()), arch.RegisterName(i.Y()))
	}

	fmt.Printf("%04x %04x %5s  %s\n", i.IP, i.Opcode, name, sb.String())
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit the program.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" F5       (re)load the program from disk and reset the cpu.\n")
	sb.WriteString(" F6       Start/Stop program execution.\n")
	sb.WriteString(" F7       Perform a single execution step.\n")
	sb.WriteString(" F8       Enable/Disable debug trace output.\n")
	sb.WriteString("keypad:\n")
	sb.WriteString(" 1 2 3 4\n Q W E R\n A S D F\n Z X C V")
	log.Println(sb.String())
}

// prettyFrequency returns a human-readable version of the given clock frequency in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.2f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}
