package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"cleanops/config"
	dirmodels "cleanops/internal/api/directory/models"
	schedmodels "cleanops/internal/api/scheduling/models"
	"cleanops/internal/database"
	"cleanops/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Scheduling Collections (prefix "sched_")
	global.MongoDB_ColNames.Tasks = "sched_tasks"
	global.MongoDB_ColNames.PropertyGroups = "sched_property_groups"
	global.MongoDB_ColNames.PropertyGroupMembers = "sched_property_group_members"
	global.MongoDB_ColNames.CleanerGroupAssignments = "sched_cleaner_group_assignments"
	global.MongoDB_ColNames.AssignmentPatterns = "sched_assignment_patterns"
	global.MongoDB_ColNames.AssignmentLogs = "sched_assignment_logs"

	// Directory Collections (prefix "dir_")
	global.MongoDB_ColNames.Clients = "dir_clients"
	global.MongoDB_ColNames.Properties = "dir_properties"
	global.MongoDB_ColNames.Cleaners = "dir_cleaners"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, day_key, wall_time, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)

	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Tasks), schedmodels.Task{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PropertyGroups), schedmodels.PropertyGroup{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PropertyGroupMembers), schedmodels.PropertyGroupMember{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CleanerGroupAssignments), schedmodels.CleanerGroupAssignment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AssignmentPatterns), schedmodels.AssignmentPattern{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AssignmentLogs), schedmodels.AssignmentLog{})

	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Clients), dirmodels.Client{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Properties), dirmodels.Property{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Cleaners), dirmodels.Cleaner{})
}
