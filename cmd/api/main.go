package main

import (
	"log"

	"github.com/mmonclus-coder/quote-web/config"
)

func main() {

	server, err := InitializeQuoteService()
	if err != nil {
		log.Fatal(err)
		return
	}

	if err = server.Run(config.ServerStartPort); err != nil {
		log.Fatal(err.Error())
	}

}
