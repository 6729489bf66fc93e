package main

import (
	_ "time/tzdata"

	_ "controle_abastecimento/docs"
	"controle_abastecimento/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Controle de Abastecimento API
// @version         1.0
// @description     Fuel log for DIESEL and ARLA refuelings: responsibles, vehicles, records, dashboard and reports.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
