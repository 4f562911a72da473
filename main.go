/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
// @title           Hostel Admin API
// @version         1.0
// @description     Hostel administration API server: registration, document upload and multi-admin leave approval workflow
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token from /login
package main

import "github.com/Sarthak-Jamdade/CEP-Review1/cmd"

func main() {
	cmd.Execute()
}
