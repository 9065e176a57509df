package model

// 自定义业务状态码
const (
	CodeSuccess           = 200 // 成功
	CodeInvalidParam      = 400 // 参数错误
	CodeNotFound          = 404 // 资源不存在
	CodeUnrecognizedColor = 422 // 识别不了的颜色格式
	CodeServerErr         = 500 // 服务器内部错误
)

// 对应描述
var codeMsg = map[int]string{
	CodeSuccess:           "Success",
	CodeInvalidParam:      "Invalid Parameters",
	CodeNotFound:          "Resource Not Found",
	CodeUnrecognizedColor: "Unrecognized Color Format",
	CodeServerErr:         "Internal Server Error",
}

func GetMsg(code int) string {
	return codeMsg[code]
}
