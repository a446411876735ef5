package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/movilstock/backoffice/internal/infrastructure/database"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	cfg := database.NewPostgresConfigFromEnv()
	if err := database.RunMigrations(cfg); err != nil {
		log.Fatalf("Error al aplicar migraciones: %v", err)
	}

	log.Println("Migraciones aplicadas con éxito")
}
