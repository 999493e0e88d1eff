package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/pkg/utils"
)

// AlertType represents the exit branch that fired.
type AlertType string

const (
	TakeProfit AlertType = "TAKE_PROFIT"
	StopLoss   AlertType = "STOP_LOSS"
)

// FormatPlanAlertForTelegram formats a triggered branch of a monitored plan into Markdown.
func FormatPlanAlertForTelegram(alertType AlertType, result *dto.MonitorResult, at time.Time) string {
	var builder strings.Builder

	var title, emoji string
	branch := result.StopLoss
	switch alertType {
	case TakeProfit:
		title = "Take Profit Triggered!"
		emoji = "🎯"
		branch = result.TakeProfit
	case StopLoss:
		title = "Stop Loss Triggered!"
		emoji = "⚠️"
	default:
		title = "Plan Alert"
		emoji = "🔔"
	}

	name := result.StockCode
	if result.StockName != "" {
		name = fmt.Sprintf("%s %s", result.StockCode, result.StockName)
	}

	builder.WriteString(fmt.Sprintf("%s [%s] %s\n", emoji, name, title))
	builder.WriteString(fmt.Sprintf("💰 Price: %.2f (entry %.2f, P&L %+.2f%%)\n", result.CurrentPrice, result.EntryPrice, result.PnLPct))
	for _, c := range branch.Conditions {
		if c.State == dto.ConditionTriggered {
			builder.WriteString(fmt.Sprintf("• %s\n", c.Name))
		}
	}
	if !result.ConditionsAvailable {
		builder.WriteString("ℹ️ Condition evaluator unavailable, price rule only\n")
	}
	builder.WriteString(fmt.Sprintf("Plan #%d, confirm before acting\n", result.PlanID))
	builder.WriteString(fmt.Sprintf("%s\n", utils.PrettyDate(at)))
	return builder.String()
}

// FormatErrorAlertMessage formats a failure of a background run.
func FormatErrorAlertMessage(at time.Time, errType string, errMsg string, data string) string {
	return fmt.Sprintf("📛 [ERROR ALERT]\n%s\n🔧 %s\n⚠️ %s\n\n📄 Data: %s\n", utils.PrettyDate(at), errType, errMsg, data)
}
