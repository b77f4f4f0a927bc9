package main

import "collabmate_backend/internal/app"

func main() {
	app.Run()
}
