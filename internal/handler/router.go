package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches the full HTTP surface to the router. Kept here
// so the integration tests exercise exactly the routes the server runs.
func RegisterRoutes(r *gin.Engine, auth *AuthHandler, users *UserHandler, questions *QuestionHandler, answers *AnswerHandler) {
	r.POST("/user/signup", auth.SignUp)
	r.POST("/user/signin", auth.SignIn)
	r.POST("/user/signout", auth.SignOut)
	r.GET("/userprofile/:userId", users.GetProfile)

	r.POST("/question/create", questions.Create)
	r.GET("/question/all", questions.GetAll)
	r.GET("/question/all/:userId", questions.GetAllByUser)
	r.PUT("/question/edit/:questionId", questions.Edit)
	r.DELETE("/question/delete/:questionId", questions.Delete)
	r.POST("/question/:questionId/answer/create", answers.Create)

	r.PUT("/answer/edit/:answerId", answers.Edit)
	r.DELETE("/answer/delete/:answerId", answers.Delete)
	r.GET("/answer/all/:questionId", answers.ListForQuestion)
}
