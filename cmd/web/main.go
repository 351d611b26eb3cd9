// @title           dialogs API
// @version         1.0
// @description     Бэкенд личных сообщений: диалоги, сообщения, вложения.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"dialogs_backend/internal/app"

	_ "dialogs_backend/docs"
)

func main() {
	app.Run()
}
