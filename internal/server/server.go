// Package server hosts a generated app on a local-only preview listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// browserOpener is swapped in tests to avoid launching a real browser.
var browserOpener = openBrowser

// NewRouter builds the static-file router rooted at dir. The root path is
// explicit, the process working directory is never changed. No logger
// middleware: requests are served quietly.
func NewRouter(dir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(dir))))

	return router
}

// Serve binds a localhost-only listener on port, opens the system browser at
// it, and blocks until ctx is cancelled, then shuts down gracefully. A bind
// failure is returned as an error.
func Serve(ctx context.Context, dir string, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", port),
		Handler: NewRouter(dir),
		// Timeouts to prevent slow client attacks.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Printf("🚀 Server running at %s\n", url)
	fmt.Println("Press Ctrl+C to stop the server")

	// Side effect only: the server does not depend on the browser opening.
	browserOpener(url)

	select {
	case err := <-errCh:
		return fmt.Errorf("preview server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("preview server forced shutdown: %v", err)
	}

	fmt.Println("\n👋 Server stopped")
	return nil
}

// openBrowser points the system's default browser at url. Failure is not
// fatal, the server stays reachable manually.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		log.Printf("No browser launcher for %s, open %s manually", runtime.GOOS, url)
		return
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Could not open browser: %v", err)
	}
}
