package main

import (
	"os"

	"backend/config"
	"backend/routes"
	"backend/utils"
)

func main() {
	utils.InitLogger()
	config.InitDB()
	utils.InitMailer()
	utils.InitS3()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		utils.Log.Fatalw("server stopped", "error", err)
	}
}
