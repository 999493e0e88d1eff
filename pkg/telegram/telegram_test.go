package telegram

import (
	"errors"
	"strings"
	"testing"
	"time"

	"golang-trade-pilot/internal/dto"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (r *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if r.err != nil {
		return tgbotapi.Message{}, r.err
	}
	r.sent = append(r.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func TestNewNotifierWithoutTokenDropsMessages(t *testing.T) {
	n, err := NewNotifier("", 0)
	require.NoError(t, err)
	assert.NoError(t, n.SendMessage("hello"))
}

func TestSendMessageSplitsLongText(t *testing.T) {
	rec := &recordingSender{}
	n := &botNotifier{bot: rec, chatID: 42}

	line := strings.Repeat("x", 99) + "\n"
	require.NoError(t, n.SendMessage(strings.Repeat(line, 50)))

	require.Len(t, rec.sent, 2)
	total := 0
	for _, msg := range rec.sent {
		assert.Equal(t, int64(42), msg.ChatID)
		assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
		assert.LessOrEqual(t, len(msg.Text), maxMessageLength)
		assert.True(t, strings.HasSuffix(msg.Text, "\n"))
		total += len(msg.Text)
	}
	assert.Equal(t, 5000, total)
}

func TestSendMessageError(t *testing.T) {
	n := &botNotifier{bot: &recordingSender{err: errors.New("boom")}, chatID: 1}
	assert.ErrorContains(t, n.SendMessage("hi"), "boom")
}

func TestSplitMessageHardCutsOversizedLine(t *testing.T) {
	parts := splitMessage(strings.Repeat("y", 25), 10)
	assert.Equal(t, []string{"yyyyyyyyyy", "yyyyyyyyyy", "yyyyy"}, parts)
}

func TestFormatPlanAlertForTelegram(t *testing.T) {
	result := &dto.MonitorResult{
		PlanID:       7,
		StockCode:    "600519",
		StockName:    "Moutai",
		CurrentPrice: 44,
		EntryPrice:   50,
		PnLPct:       -12,
		StopLoss: dto.BranchResult{
			Triggered: true,
			Conditions: []dto.ConditionResult{
				{Type: dto.ConditionTypePriceStop, Name: "price_stop", State: dto.ConditionTriggered},
				{Type: dto.ConditionTypeNamed, Name: "ma20_break", State: dto.ConditionSafe},
			},
		},
		ConditionsAvailable: true,
	}

	msg := FormatPlanAlertForTelegram(StopLoss, result, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	assert.Contains(t, msg, "600519 Moutai")
	assert.Contains(t, msg, "Stop Loss Triggered!")
	assert.Contains(t, msg, "44.00")
	assert.Contains(t, msg, "-12.00%")
	assert.Contains(t, msg, "price_stop")
	assert.NotContains(t, msg, "ma20_break")
	assert.Contains(t, msg, "Plan #7")
	assert.NotContains(t, msg, "evaluator unavailable")
}

func TestFormatPlanAlertWithoutConditions(t *testing.T) {
	result := &dto.MonitorResult{PlanID: 1, StockCode: "000001", CurrentPrice: 13, EntryPrice: 10, PnLPct: 30,
		TakeProfit: dto.BranchResult{Triggered: true}}
	msg := FormatPlanAlertForTelegram(TakeProfit, result, time.Now())
	assert.Contains(t, msg, "Take Profit Triggered!")
	assert.Contains(t, msg, "evaluator unavailable")
}
