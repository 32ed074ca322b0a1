package global

import (
	"cleanops/config"
	"cleanops/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	// Scheduling Collections (Assignment Engine)
	Tasks                   string // Tên collection cho công việc dọn dẹp
	PropertyGroups          string // Tên collection cho nhóm bất động sản
	PropertyGroupMembers    string // Tên collection cho thành viên nhóm (property -> group)
	CleanerGroupAssignments string // Tên collection cho liên kết nhân viên - nhóm
	AssignmentPatterns      string // Tên collection cho pattern phân công đã học
	AssignmentLogs          string // Tên collection cho nhật ký quyết định phân công

	// Directory Collections
	Clients    string // Tên collection cho khách hàng
	Properties string // Tên collection cho bất động sản
	Cleaners   string // Tên collection cho nhân viên dọn dẹp
}

// Các biến toàn cục
var Validate *validator.Validate                                     // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                    // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                       // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
