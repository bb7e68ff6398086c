package consts

const (
	// FollowDecisionAccepted 关注请求通知的处理结果
	FollowDecisionAccepted = "ACCEPTED"
	FollowDecisionRejected = "REJECTED"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
