package main

import (
	"log"

	"github.com/LemoonCan/milky-way-client/cmd/milky/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
