package main

import (
	"fmt"
	"net/http"

	"github.com/hrkit/biotime-bridge-go/internal/config"
	domainAttendance "github.com/hrkit/biotime-bridge-go/internal/domain/attendance"
	appHTTP "github.com/hrkit/biotime-bridge-go/internal/handler/http"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/biotime"
	attendanceService "github.com/hrkit/biotime-bridge-go/internal/service/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	client := biotime.NewClient(cfg.Upstream)
	rules := domainAttendance.DefaultRules(cfg.Rules.LateAfter, cfg.Rules.EarlyLeave)

	service := attendanceService.NewAttendanceService(client, rules)
	attendanceHandler := appHTTP.NewAttendanceHandler(service)

	router := appHTTP.NewRouter(attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Attendance bridge running at http://localhost%s (upstream %s)\n", port, cfg.Upstream.BaseURL)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
