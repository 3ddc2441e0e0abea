package main

import (
	"net"
	"net/http"
	"os"
	"time"
)

// Tiny probe binary for the container HEALTHCHECK: hit /healthz on the
// local server and exit non-zero when it is degraded or unreachable.
func main() {
	addr := os.Getenv("WAYFARER_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8000"
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		port = "8000"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://127.0.0.1:" + port + "/healthz")
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}
