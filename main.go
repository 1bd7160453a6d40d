package main

import (
	"log"

	"github.com/jmrivas/tablero/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
