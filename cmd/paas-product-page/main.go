package main

import (
	"log"

	"github.com/jonathanglassman/paas-product-page/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
