package main

import (
	"github.com/CPU-commits/Intranet_BRegistration/server"
)

// @title          Registration API
// @version        1.0
// @description    API Server For course registration and seat availability

// @contact.name  API Support
// @contact.url   http://www.swagger.io/support
// @contact.email support@swagger.io

// lincense.name  Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @tag.name        registration
// @tag.description Service of course registration

// @host     localhost:8080
// @BasePath /api/r/registration

// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
// @description                BearerJWTToken in Authorization Header

// @accept  json
// @produce json
func main() {
	server.Init()
}
