package main

import (
	"fmt"
	"io"
	"os"

	logginginfra "github.com/alexisbeaulieu97/widgetlab/internal/infrastructure/logging"
)

var (
	exitFunc               = os.Exit
	stderrWriter io.Writer = os.Stderr
)

func main() {
	app := &AppContext{Bootstrap: logginginfra.NewBootstrapLogger(0)}
	defer func() {
		if err := app.Close(); err != nil {
			fmt.Fprintf(stderrWriter, "close: %v\n", err)
		}
	}()

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(stderrWriter, err)
		_ = app.Close()
		exitFunc(1)
	}
}
