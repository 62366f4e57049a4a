package main

import (
	"fmt"

	"terminal-terrace/lms-service/config"
	"terminal-terrace/lms-service/internal/database"
	"terminal-terrace/lms-service/internal/route"
)

func main() {
	config.MustLoad("config.yaml")
	database.InitDatabase()
	r := route.SetupRouter()

	r.Run(fmt.Sprintf(":%d", config.Conf.Server.Port))
}
