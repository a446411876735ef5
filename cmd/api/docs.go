package main

// @title           MovilStock Backoffice API
// @version         1.0
// @description     API del backoffice de venta y consignación de equipos

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Autenticación JWT con esquema Bearer. Ejemplo: "Bearer {token}"
