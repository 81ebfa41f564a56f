package models

// ResponseCode is the machine-readable outcome carried by every response.
type ResponseCode string

// ResponseMessage is the fixed human-readable label paired with a [ResponseCode].
type ResponseMessage string

const (
	CodeSuccess            ResponseCode = "SUCCESS"
	CodeSignInFail         ResponseCode = "SIGN_IN_FAIL"
	CodeSignUpFail         ResponseCode = "SIGN_UP_FAIL"
	CodeChangePasswordFail ResponseCode = "CHANGE_PASSWORD_FAIL"
	CodeInvalidRequest     ResponseCode = "INVALID_REQUEST"
	CodeUnauthorized       ResponseCode = "UNAUTHORIZED"
	CodeInternalError      ResponseCode = "INTERNAL_ERROR"
)

const (
	MessageSuccess            ResponseMessage = "request succeeded"
	MessageSignInFail         ResponseMessage = "sign in failed"
	MessageSignUpFail         ResponseMessage = "sign up failed"
	MessageChangePasswordFail ResponseMessage = "password change failed"
	MessageInvalidRequest     ResponseMessage = "invalid request"
	MessageUnauthorized       ResponseMessage = "unauthorized"
	MessageInternalError      ResponseMessage = "internal server error"
)

var responseMessages = map[ResponseCode]ResponseMessage{
	CodeSuccess:            MessageSuccess,
	CodeSignInFail:         MessageSignInFail,
	CodeSignUpFail:         MessageSignUpFail,
	CodeChangePasswordFail: MessageChangePasswordFail,
	CodeInvalidRequest:     MessageInvalidRequest,
	CodeUnauthorized:       MessageUnauthorized,
	CodeInternalError:      MessageInternalError,
}

// Message returns the fixed message for the code.
func (c ResponseCode) Message() ResponseMessage {
	return responseMessages[c]
}

// Response is the envelope used for every API response, success or failure.
//
// Data is a [UserData] on success and a human-readable reason string on
// failure.
type Response struct {
	Code    ResponseCode    `json:"code"`
	Message ResponseMessage `json:"message"`
	Data    any             `json:"data"`
}

// NewResponse builds an envelope for code with its fixed message.
func NewResponse(code ResponseCode, data any) Response {
	return Response{
		Code:    code,
		Message: code.Message(),
		Data:    data,
	}
}

// SignInSuccess builds the success envelope of the sign-in operation.
func SignInSuccess(data UserData) Response {
	return NewResponse(CodeSuccess, data)
}

// SignUpSuccess builds the success envelope of the sign-up operation.
func SignUpSuccess(data UserData) Response {
	return NewResponse(CodeSuccess, data)
}

// ChangePasswordSuccess builds the success envelope of the change-password operation.
func ChangePasswordSuccess(data UserData) Response {
	return NewResponse(CodeSuccess, data)
}
