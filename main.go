package main

import (
	"log"
	"os"

	"github.com/eariassoto/dear-nes-lib/ui"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) != 2 {
		log.Fatalln("usage: dear-nes-lib <rom.nes>")
	}
	ui.Run(os.Args[1])
}
