// Package router đăng ký các route thuộc domain Directory: Client, Property, Cleaner.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dirhdl "cleanops/internal/api/directory/handler"
	apirouter "cleanops/internal/api/router"
)

// Register đăng ký tất cả route directory lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	clientHandler, err := dirhdl.NewClientHandler()
	if err != nil {
		return fmt.Errorf("create client handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/directory/client", clientHandler, apirouter.ReadWriteConfig)

	propertyHandler, err := dirhdl.NewPropertyHandler()
	if err != nil {
		return fmt.Errorf("create property handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/directory/property", propertyHandler, apirouter.ReadWriteConfig)

	cleanerHandler, err := dirhdl.NewCleanerHandler()
	if err != nil {
		return fmt.Errorf("create cleaner handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/directory/cleaner", cleanerHandler, apirouter.ReadWriteConfig)

	return nil
}
