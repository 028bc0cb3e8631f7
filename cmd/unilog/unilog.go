package main

import "github.com/Egor213/UniLog/internal/app"

func main() {
	app.Run()
}
