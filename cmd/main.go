package main

import (
	"github.com/calo-work-stack/Calo-sub003/config"
	"github.com/calo-work-stack/Calo-sub003/routes"
	"github.com/calo-work-stack/Calo-sub003/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
