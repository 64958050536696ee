package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// MainLoop is the embedding entry point. It runs the frame loop with the
// default configuration and reports whether it ended successfully. local
// only changes the startup banner.
func MainLoop(local bool) bool {
	return RunMain(Options{Local: local}, os.Stdout, nil)
}

// RunMain creates and runs an Application, printing the banner and any
// diagnostic to out. ready, if set, is called with the application before
// the loop starts.
func RunMain(opts Options, out io.Writer, ready func(*Application)) bool {
	if opts.Local {
		fmt.Fprintln(out, "chessterm: starting local session")
	}

	application, err := New(opts)
	if err != nil {
		printError(out, diagnostic(err))
		return false
	}
	defer application.Close()

	if ready != nil {
		ready(application)
	}

	if err := application.Run(); err != nil {
		printError(out, diagnostic(err))
		return false
	}
	return true
}

// diagnostic renders err for the user. Stack traces stay in the log.
func diagnostic(err error) string {
	var ie *InitError
	if errors.As(err, &ie) {
		switch ie.Component {
		case "board":
			return "Board initialization failed"
		case "terminal":
			return fmt.Sprintf("Terminal initialization failed: %v", ie.Err)
		default:
			return fmt.Sprintf("%s initialization failed: %v", ie.Component, ie.Err)
		}
	}

	var pe *RecoveredPanicError
	if errors.As(err, &pe) {
		return pe.Summary()
	}
	return err.Error()
}

// printError writes an [ERROR] line, colored when out is a terminal.
func printError(out io.Writer, msg string) {
	tag := "[ERROR]"
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		tag = colorRed + tag + colorReset
	}
	fmt.Fprintf(out, "%s %s\n", tag, msg)
}
