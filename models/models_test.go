package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-02", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())

	var buf bytes.Buffer
	NewAppBuildInfo("v1.0.0", "today", "abc123").Print(&buf)
	assert.Equal(t, "Build version: v1.0.0\nBuild date: today\nBuild commit: abc123\n", buf.String())
}

func TestResponseCode_Message(t *testing.T) {
	assert.Equal(t, MessageSignUpFail, CodeSignUpFail.Message())
	assert.Equal(t, MessageUnauthorized, CodeUnauthorized.Message())
	assert.Empty(t, ResponseCode("UNKNOWN").Message())
}

func TestResponse_JSONShape(t *testing.T) {
	body, err := json.Marshal(SignInSuccess(UserData{Email: "a@x.com", Name: "alice"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"SUCCESS","message":"request succeeded","data":{"email":"a@x.com","name":"alice"}}`, string(body))

	body, err = json.Marshal(NewResponse(CodeInternalError, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"internal server error","data":null}`, string(body))
}

func TestFailure(t *testing.T) {
	cause := errors.New("name already exists")
	failure := SignUpFail(cause.Error(), cause)

	var err error = failure
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "SIGN_UP_FAIL: name already exists: name already exists", failure.Error())
	assert.Equal(t, Response{Code: CodeSignUpFail, Message: MessageSignUpFail, Data: "name already exists"}, failure.Response())

	bare := &Failure{Code: CodeSignInFail, Reason: "password mismatch"}
	assert.Equal(t, "SIGN_IN_FAIL: password mismatch", bare.Error())
	assert.Nil(t, bare.Unwrap())

	assert.Equal(t, CodeChangePasswordFail, ChangePasswordFail("x", nil).Code)
	assert.Equal(t, CodeInvalidRequest, InvalidRequestFail("x", nil).Code)
	assert.Equal(t, CodeSignInFail, SignInFail("x", nil).Code)
}

func TestUser_DataHidesPassword(t *testing.T) {
	u := User{UserID: 7, Name: "alice", Email: "a@x.com", Password: "$2a$10$hash"}
	assert.Equal(t, UserData{Email: "a@x.com", Name: "alice"}, u.Data())
	assert.Equal(t, "users", u.TableName())

	body, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "hash")
	assert.NotContains(t, string(body), "7")
}

func TestToken_Data(t *testing.T) {
	tok := Token{Claims: TokenClaims{UserID: 1, Email: "a@x.com", Name: "alice"}, SignedString: "a.b.c"}
	assert.Equal(t, "a.b.c", tok.String())
	assert.Equal(t, UserData{Email: "a@x.com", Name: "alice"}, tok.Data())
}
