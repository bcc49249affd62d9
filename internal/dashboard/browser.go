package dashboard

import (
	"log/slog"
	"os/exec"
	"runtime"
)

// OpenBrowser tries to open the URL in the default browser.
func OpenBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start() //nolint:gosec
	case "darwin":
		err = exec.Command("open", url).Start() //nolint:gosec
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start() //nolint:gosec
	}
	if err != nil {
		slog.Debug("failed to open browser", "error", err)
	}
}
