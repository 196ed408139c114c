package main

import "estateoffice/internal/app"

// @title        Real Estate Office API
// @version      1.0
// @description  Back office for a real estate agency: clients, properties, rights and restrictions, deals.
// @BasePath     /
func main() {
	app.Run()
}
