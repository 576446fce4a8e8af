package site

import (
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"time"
)

// ServeDir starts a local HTTP file server for an exported static site.
func ServeDir(dir string, port int, open bool) error {
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	if open {
		go OpenBrowser(url)
	}

	fmt.Printf("Serving static site at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	srv := &http.Server{
		Addr:              addr,
		Handler:           http.FileServer(http.Dir(dir)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
