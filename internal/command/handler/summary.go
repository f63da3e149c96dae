package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"apitracker/internal/service"

	"github.com/spf13/cobra"
)

type SummaryHandler struct {
	analyticsService *service.AnalyticsService
}

func NewSummaryHandler(analyticsService *service.AnalyticsService) *SummaryHandler {
	return &SummaryHandler{analyticsService: analyticsService}
}

// Print 輸出 24 小時摘要（維運排查用）
func (h *SummaryHandler) Print(cmd *cobra.Command, args []string) {
	result, err := h.analyticsService.Summary(context.Background(), service.DefaultWindowHours)
	if err != nil {
		fmt.Println("summary query failed:", err)
		return
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Println("marshal summary failed:", err)
		return
	}
	fmt.Println(string(out))
}
