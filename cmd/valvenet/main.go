// Command valvenet reads a valve network description and prints the
// single-agent and two-agent reward optima.
//
//	valvenet cave.yaml
//	valvenet --single-budget 30 --pair-budget 26 --route < cave.yaml
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}
