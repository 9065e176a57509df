package model

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// Response 统一响应结构
type Response[T any] struct {
	Code    int    `json:"code"`    // 业务状态码
	Message string `json:"message"` // 提示信息
	Data    T      `json:"data"`    // 业务数据
}

// Success 成功返回
func Success[T any](c *gin.Context, data T, customMsg ...string) {
	msg := GetMsg(CodeSuccess)
	if len(customMsg) > 0 {
		msg = customMsg[0]
	}
	c.JSON(http.StatusOK, Response[T]{
		Code:    CodeSuccess,
		Message: msg,
		Data:    data,
	})
}

// SuccessEmpty 成功返回，但不带 Data
func SuccessEmpty(c *gin.Context, customMsg ...string) {
	msg := GetMsg(CodeSuccess)
	if len(customMsg) > 0 {
		msg = customMsg[0]
	}
	c.JSON(http.StatusOK, Response[any]{
		Code:    CodeSuccess,
		Message: msg,
		Data:    nil,
	})
}

// Error 错误返回
func Error(c *gin.Context, code int, customMsg ...string) {
	msg := GetMsg(code)
	if len(customMsg) > 0 {
		msg = customMsg[0] // 如果有自定义消息则覆盖
	}

	// 业务错误统一返回 200，由 code 区分
	c.JSON(http.StatusOK, Response[any]{
		Code:    code,
		Message: msg,
		Data:    nil,
	})
}

// Abort 中间件或静态文件等需要真实 HTTP 状态码的场景
func Abort(c *gin.Context, status int, code int, customMsg ...string) {
	msg := GetMsg(code)
	if len(customMsg) > 0 {
		msg = customMsg[0]
	}
	c.AbortWithStatusJSON(status, Response[any]{
		Code:    code,
		Message: msg,
		Data:    nil,
	})
}
