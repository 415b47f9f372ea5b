package main

// @title Retail POS API
// @version 1.0
// @description Single-store retail management service: product catalog, POS cart and checkout, sales ledger and reports.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
