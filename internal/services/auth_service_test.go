package services

func (suite *ServiceTestSuite) TestSignup_DistinctRollNumbers() {
	a := suite.createTestUser("21CS001", "CS", 2)
	b := suite.createTestUser("21CS002", "CS", 2)

	suite.NotEqual(a.ID, b.ID)
	suite.NotEqual("supersecret", a.PasswordHash)

	found, err := suite.identity.Resolve(suite.ctx, "21CS002")
	suite.Require().NoError(err)
	suite.Equal(b.ID, found.ID)
	suite.Equal("User 21CS002", found.Name)
}

func (suite *ServiceTestSuite) TestSignup_DuplicateRollNo() {
	original := suite.createTestUser("21CS001", "CS", 2)

	_, err := suite.auth.Signup(suite.ctx, SignupInput{
		RollNo:     "21CS001",
		Name:       "Impostor",
		Department: "EE",
		Year:       4,
		Password:   "anotherpass",
	})
	suite.ErrorIs(err, ErrRollNoTaken)

	stored, err := suite.identity.Resolve(suite.ctx, "21CS001")
	suite.Require().NoError(err)
	suite.Equal(original.ID, stored.ID)
	suite.Equal("User 21CS001", stored.Name)
	suite.Equal("CS", stored.Department)
	suite.Equal(original.PasswordHash, stored.PasswordHash)
}

func (suite *ServiceTestSuite) TestSignup_Validation() {
	_, err := suite.auth.Signup(suite.ctx, SignupInput{RollNo: "   ", Password: "supersecret"})
	suite.ErrorIs(err, ErrRollNoRequired)

	_, err = suite.auth.Signup(suite.ctx, SignupInput{RollNo: "21CS001", Password: "abc"})
	suite.ErrorIs(err, ErrPasswordTooShort)
}

func (suite *ServiceTestSuite) TestLogin_Success() {
	suite.createTestUser("21CS001", "CS", 2)

	user, token, err := suite.auth.Login(suite.ctx, LoginInput{RollNo: "21CS001", Password: "supersecret"})
	suite.Require().NoError(err)
	suite.Equal("21CS001", user.RollNo)

	rollno, err := suite.tokens.Verify(token)
	suite.Require().NoError(err)
	suite.Equal("21CS001", rollno)
}

func (suite *ServiceTestSuite) TestLogin_InvalidCredentials() {
	suite.createTestUser("21CS001", "CS", 2)

	_, _, wrongPassword := suite.auth.Login(suite.ctx, LoginInput{RollNo: "21CS001", Password: "wrongpass"})
	_, _, unknownUser := suite.auth.Login(suite.ctx, LoginInput{RollNo: "21CS999", Password: "supersecret"})

	suite.ErrorIs(wrongPassword, ErrInvalidCredentials)
	suite.ErrorIs(unknownUser, ErrInvalidCredentials)
	suite.Equal(wrongPassword.Error(), unknownUser.Error())
}

func (suite *ServiceTestSuite) TestGetCurrentUser_NotFound() {
	_, err := suite.auth.GetCurrentUser(suite.ctx, "ghost")
	suite.ErrorIs(err, ErrUserNotFound)
}
