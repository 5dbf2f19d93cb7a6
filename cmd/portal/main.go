package main

import (
	"flag"
	"log"

	"request-portal/core/appbootstrap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (environment-only when empty)")
	flag.Parse()
	if err := appbootstrap.Run(*configPath); err != nil {
		log.Fatalf("portal: %v", err)
	}
}
