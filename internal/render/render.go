// Package render launches the external drawing-to-SVG converter and the
// OS file opener. Both are fire-and-forget: processes are started detached
// and their exit status is intentionally never inspected, so a converter
// failure is invisible to the pipeline.
package render

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/zawatton21/org-excalidraw/internal/logging"
)

// Spec describes a resolved command invocation: program plus argument list.
// All platform branching lives in the builders below, never at call sites.
type Spec struct {
	Program string
	Args    []string
}

// Command builds the converter invocation for a drawing. Windows goes
// through the command shell; everything else executes the converter
// directly.
func Command(converter, drawingPath, imageDir, goos string) Spec {
	if goos == "windows" {
		return Spec{Program: "cmd", Args: []string{"/C", converter, drawingPath, imageDir}}
	}
	return Spec{Program: converter, Args: []string{drawingPath, imageDir}}
}

// OpenCommand builds the OS "open with associated application" invocation.
func OpenCommand(path, goos string) (Spec, error) {
	switch goos {
	case "darwin":
		return Spec{Program: "open", Args: []string{path}}, nil
	case "windows":
		return Spec{Program: "rundll32", Args: []string{"url.dll,FileProtocolHandler", path}}, nil
	case "linux":
		return Spec{Program: "xdg-open", Args: []string{path}}, nil
	default:
		return Spec{}, fmt.Errorf("cannot open files on %s", goos)
	}
}

// Invoker launches converter and editor processes for the current platform.
type Invoker struct {
	converter string
	imageDir  string
	logger    *logging.Logger
}

// NewInvoker creates an invoker using the given converter command and image
// output directory.
func NewInvoker(converter, imageDir string, logger *logging.Logger) *Invoker {
	return &Invoker{converter: converter, imageDir: imageDir, logger: logger}
}

// RequestRender regenerates the companion image for drawingPath in the
// background. It returns immediately; there is no result channel.
func (inv *Invoker) RequestRender(drawingPath string) {
	spec := Command(inv.converter, drawingPath, inv.imageDir, runtime.GOOS)
	inv.start(spec, "converter", drawingPath)
}

// Open launches the file's associated application, detached. Only a launch
// failure is reported; whatever the application does afterwards is not.
func (inv *Invoker) Open(path string) error {
	spec, err := OpenCommand(path, runtime.GOOS)
	if err != nil {
		return err
	}
	cmd := exec.Command(spec.Program, spec.Args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", spec.Program, err)
	}
	go cmd.Wait() // reap only; outcome unobserved
	inv.logger.Debug("opened file", "path", path, "program", spec.Program)
	return nil
}

func (inv *Invoker) start(spec Spec, what, path string) {
	cmd := exec.Command(spec.Program, spec.Args...)
	if err := cmd.Start(); err != nil {
		inv.logger.Warn(err, "failed to launch "+what, "path", path, "program", spec.Program)
		return
	}
	go cmd.Wait() // reap only; outcome unobserved
	inv.logger.Debug(what+" launched", "path", path, "program", spec.Program)
}
