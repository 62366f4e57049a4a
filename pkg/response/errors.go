package response

type ResponseCode int

// 统一业务代码
const (
	// 成功
	Success ResponseCode = 100
	// 失败（后端存储、缓存等基础设施错误）
	Fail ResponseCode = 0
	// 参数解析错误
	ParseError ResponseCode = 1
	// 参数错误
	InvalidParameter ResponseCode = 2
	// 未认证（令牌缺失、无效或过期）
	Unauthorized ResponseCode = 3
	// 已认证但无权限（角色不足或资源归属不符）
	Forbidden ResponseCode = 4
	// 资源不存在
	NotFound ResponseCode = 5
	// 凭证错误（统一返回，不区分用户名还是密码错误）
	InvalidCredentials ResponseCode = 6
)

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

// Error 实现 error 接口，便于日志输出
func (be *BusinessError) Error() string {
	if be.Err != nil {
		return be.Msg + ": " + be.Err.Error()
	}
	return be.Msg
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}
