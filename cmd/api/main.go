package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/primovet/vetpay-backend-go/internal/config"
	appHTTP "github.com/primovet/vetpay-backend-go/internal/handler/http"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
	"github.com/primovet/vetpay-backend-go/internal/pkg/storage"
	"github.com/primovet/vetpay-backend-go/internal/repository/postgresql"
	"github.com/primovet/vetpay-backend-go/internal/service/employee"
	"github.com/primovet/vetpay-backend-go/internal/service/incentive"
	"github.com/primovet/vetpay-backend-go/internal/service/master"
	"github.com/primovet/vetpay-backend-go/internal/service/payroll"
	"github.com/primovet/vetpay-backend-go/internal/service/report"
	"github.com/primovet/vetpay-backend-go/internal/service/sheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	branchRepo := postgresql.NewBranchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	configRepo := postgresql.NewIncentiveConfigRepository(db)
	exclusionRepo := postgresql.NewIncentiveExclusionRepository(db)
	sheetRepo := postgresql.NewSheetRepository(db)
	inputRepo := postgresql.NewDailyInputRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	fileStore, err := storage.NewLocalStore(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize file storage:", err)
	}

	branchSvc := master.NewBranchService(db, branchRepo, employeeRepo)
	employeeSvc := employee.NewEmployeeService(employeeRepo, branchRepo)
	incentiveSvc := incentive.NewIncentiveService(db, configRepo, exclusionRepo, payrollRepo, employeeRepo, cfg.Payroll.OvertimeMultiplier)
	sheetSvc := sheet.NewSheetService(db, sheetRepo, inputRepo, configRepo, exclusionRepo, payrollRepo, employeeRepo, branchRepo, cfg.Payroll.OvertimeMultiplier)
	payrollSvc := payroll.NewPayrollService(db, payrollRepo, employeeRepo, cfg.Payroll.OvertimeMultiplier)
	reportSvc := report.NewReportService(payrollRepo, sheetRepo, inputRepo, configRepo, reportRepo, fileStore)

	masterHandler := appHTTP.NewMasterHandler(branchSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, payrollSvc)
	incentiveHandler := appHTTP.NewIncentiveHandler(incentiveSvc)
	sheetHandler := appHTTP.NewSheetHandler(sheetSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		masterHandler,
		employeeHandler,
		incentiveHandler,
		sheetHandler,
		payrollHandler,
		reportHandler,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
