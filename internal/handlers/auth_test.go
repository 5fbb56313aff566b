package handlers

import (
	"net/http"

	"github.com/kishoreadhith-v/clubs-api/internal/dto"
	apierrors "github.com/kishoreadhith-v/clubs-api/internal/errors"
)

func signupPayload(rollno string) map[string]any {
	return map[string]any{
		"rollno":     rollno,
		"name":       "Asha",
		"phone":      "9876543210",
		"department": "CS",
		"year":       2,
		"password":   "supersecret",
	}
}

func (suite *HandlerTestSuite) TestSignup_Success() {
	w := suite.do(http.MethodPost, "/api/auth/signup", signupPayload("21CS001"), "")
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response dto.UserDTO
	suite.decode(w, &response)
	suite.Equal("21CS001", response.RollNo)
	suite.Equal("CS", response.Department)
	suite.Len(response.ID, 24)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *HandlerTestSuite) TestSignup_Conflict() {
	suite.Require().Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/auth/signup", signupPayload("21CS001"), "").Code)

	w := suite.do(http.MethodPost, "/api/auth/signup", signupPayload("21CS001"), "")
	suite.Equal(http.StatusConflict, w.Code)

	var response apierrors.APIError
	suite.decode(w, &response)
	suite.Equal(apierrors.ErrCodeConflict, response.Code)
}

func (suite *HandlerTestSuite) TestSignup_InvalidRequest() {
	payload := signupPayload("21CS001")
	delete(payload, "department")

	w := suite.do(http.MethodPost, "/api/auth/signup", payload, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	var response apierrors.APIError
	suite.decode(w, &response)
	suite.Equal(apierrors.ErrCodeInvalidInput, response.Code)
	suite.Equal(map[string]any{"Department": "is required"}, response.Details)
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	suite.createTestUser("21CS001", "CS", 2)

	w := suite.do(http.MethodPost, "/api/auth/login", map[string]string{
		"rollno":   "21CS001",
		"password": "supersecret",
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.AuthResponse
	suite.decode(w, &response)
	suite.Equal("21CS001", response.User.RollNo)

	rollno, err := suite.tokens.Verify(response.Token)
	suite.Require().NoError(err)
	suite.Equal("21CS001", rollno)

	me := suite.do(http.MethodGet, "/api/auth/me", nil, response.Token)
	suite.Equal(http.StatusOK, me.Code)
}

func (suite *HandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.createTestUser("21CS001", "CS", 2)

	wrongPassword := suite.do(http.MethodPost, "/api/auth/login", map[string]string{
		"rollno":   "21CS001",
		"password": "nope-nope",
	}, "")
	unknownUser := suite.do(http.MethodPost, "/api/auth/login", map[string]string{
		"rollno":   "21CS404",
		"password": "supersecret",
	}, "")

	suite.Equal(http.StatusUnauthorized, wrongPassword.Code)
	suite.Equal(http.StatusUnauthorized, unknownUser.Code)
	suite.JSONEq(wrongPassword.Body.String(), unknownUser.Body.String())
}

func (suite *HandlerTestSuite) TestGetCurrentUser_UnknownUser() {
	token, err := suite.tokens.Issue("ghost")
	suite.Require().NoError(err)

	w := suite.do(http.MethodGet, "/api/auth/me", nil, token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetCurrentUser_NoToken() {
	w := suite.do(http.MethodGet, "/api/auth/me", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestGetCurrentUser_NotAuthenticatedContext() {
	c, w := suite.createAuthContext(http.MethodGet, "/api/auth/me", nil, "")

	suite.authHandler.GetCurrentUser(c)

	suite.Equal(http.StatusUnauthorized, w.Code)
}
