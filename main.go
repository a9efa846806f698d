package main

import (
	"github.com/zokiio/localvoice/internal/client"
)

func main() {
	client.InitLogging()

	gui := client.NewGUI(client.DefaultWindowConfig())
	gui.Run()
}
