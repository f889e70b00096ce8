package main

import "github.com/mordilloSan/openlog/internal/cli"

// Usage: openlog [flags] [message...]
// Example: openlog --file --prefix APP --level error "disk full"
func main() {
	cli.Execute()
}
