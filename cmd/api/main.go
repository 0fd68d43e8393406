package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/caffeinepub/attendance-backend-go/internal/config"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/attendance"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/employee"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/user"
	appHTTP "github.com/caffeinepub/attendance-backend-go/internal/handler/http"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/database"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/jwt"
	"github.com/caffeinepub/attendance-backend-go/internal/repository/memory"
	"github.com/caffeinepub/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/caffeinepub/attendance-backend-go/internal/service/attendance"
	authService "github.com/caffeinepub/attendance-backend-go/internal/service/auth"
	employeeService "github.com/caffeinepub/attendance-backend-go/internal/service/employee"
	reportService "github.com/caffeinepub/attendance-backend-go/internal/service/report"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	var (
		recordStore    attendance.RecordStore
		thresholdStore attendance.ThresholdStore
		roster         employee.Roster
		userRepo       user.UserRepository
	)

	switch cfg.App.StoreType {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		recordStore = postgresql.NewRecordStore(db)
		thresholdStore = postgresql.NewThresholdStore(db, cfg.Attendance.DefaultOvertimeThreshold)
		roster = postgresql.NewRoster(db)
		userRepo = postgresql.NewUserRepository(db)
	default:
		recordStore = memory.NewRecordStore()
		thresholdStore = memory.NewThresholdStore(cfg.Attendance.DefaultOvertimeThreshold)
		roster = memory.NewRoster()
		userRepo = memory.NewUserRepository()
	}

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err := seedAdmin(userRepo, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatal("Error seeding admin user: ", err)
		}
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(recordStore, thresholdStore)
	employeeSvc := employeeService.NewEmployeeService(roster, recordStore)
	reportSvc := reportService.NewReportService(roster, recordStore, thresholdStore, cfg.Attendance.WeekendDays)
	authSvc := authService.NewAuthService(userRepo, jwtService)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.FrontendURL,
		appHTTP.NewAuthHandler(authSvc, jwtService),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func seedAdmin(users user.UserRepository, email, password string) error {
	ctx := context.Background()

	if _, err := users.GetByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = users.Create(ctx, user.User{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	return err
}
