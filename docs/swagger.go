// Package docs provides Swagger documentation for the API.
package docs

// @title Clipbox API
// @version 1.0
// @description Marketplace backend for paid clip campaigns
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
