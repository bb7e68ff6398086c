package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("参数错误")
	ErrUserNotFound          = errors.New("用户不存在")
	ErrPostNotFound          = errors.New("帖子不存在")
	ErrCommentNotFound       = errors.New("评论不存在")
	ErrFollowNotFound        = errors.New("关注关系不存在")
	ErrFollowRequestNotFound = errors.New("关注请求不存在")
	ErrFollowExist           = errors.New("已关注或已发送关注请求")
	ErrFollowSelf            = errors.New("不能关注自己")
	ErrNotRequestOwner       = errors.New("只能处理发给自己的关注请求")
	ErrNotificationNotFound  = errors.New("通知不存在")
	ErrNotNotificationOwner  = errors.New("只能操作自己的通知")
	ErrNotFollowRequest      = errors.New("该通知不是关注请求")
	ErrActionDuplicate       = errors.New("重复操作")
	ErrNotPostOwner          = errors.New("只能操作自己的帖子")
	UnauthorizedError        = errors.New("权限不足")
	UnExpectedError          = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrUserNotFound:          NotFound,
	ErrPostNotFound:          NotFound,
	ErrCommentNotFound:       NotFound,
	ErrFollowNotFound:        NotFound,
	ErrFollowRequestNotFound: NotFound,
	ErrFollowExist:           BadRequest,
	ErrFollowSelf:            BadRequest,
	ErrNotRequestOwner:       Forbidden,
	ErrNotificationNotFound:  NotFound,
	ErrNotNotificationOwner:  Forbidden,
	ErrNotFollowRequest:      BadRequest,
	ErrActionDuplicate:       BadRequest,
	ErrNotPostOwner:          Forbidden,
	UnauthorizedError:        Unauthorized,
	UnExpectedError:          InternalServerError,
}
