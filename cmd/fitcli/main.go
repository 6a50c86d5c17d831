package main

// Command line companion of the fitplan service: BMI and calories,
// goal plans with workout tracking, and the daily water tracker.

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetLevel(log.WarnLevel)

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.Errorf("fitcli: %s", err)
		os.Exit(1)
	}
}
