package common

const (
	RedisKeyLastPrice      = "last_price:%s"
	RedisKeyPlanAlert      = "trade_plan_alert:%s:%d"
	RedisStreamPlanAlert   = "trade_plan.alert"
	RedisStreamAlertMaxLen = 10000
)
