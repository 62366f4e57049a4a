package response

import "net/http"

// Response 统一响应信封
// code 是业务码（见 errors.go），HTTP 状态码由 HTTPStatus 单独映射
type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data,omitempty"`
}

func SuccessResponse(data any) Response {
	return Response{
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Message: msg,
		Code:    code,
	}
}

// HTTPStatus 业务码到 HTTP 状态码的映射
// 403 与 404 必须可区分："存在但无权" 不等于 "不存在"
func (c ResponseCode) HTTPStatus() int {
	switch c {
	case Success:
		return http.StatusOK
	case ParseError, InvalidParameter:
		return http.StatusBadRequest
	case Unauthorized, InvalidCredentials:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
